package hash

import "github.com/patrikgergely/bbwrl/internal/cards"

// Mode discriminates cache entries that share a hand shape but differ in
// meaning (e.g. the first dealer-draw under peek vs. subsequent draws).
type Mode uint8

const (
	ModeSplit Mode = iota
	ModeDouble
	ModeHit
	ModeStandFirst
	ModeStandRest
	ModeBlackjack
)

// Hasher packs a solver state into a Key via positional decimal packing, as
// specified by spec.md §4.C: mode occupies the low digit, then each shoe
// count (two decimal digits, ranks 1..13 in order), then player_total, then
// dealer_total, then aces — each field bounded to its declared digit width,
// which is what makes the packing a bijection. The hasher holds no state of
// its own; it exists as a type mainly to give the operation a name and a
// home next to Key and Mode.
type Hasher struct{}

// Key packs shoe, pt, dt, aces and mode into the 128-bit memoization key.
// It must be recomputed whenever any input component changes, in
// particular after every transient shoe Decrement/Restore.
func (Hasher) Key(shoe cards.Shoe, playerTotal, dealerTotal, aces int, mode Mode) Key {
	var k Key
	k = k.mulAdd(10, uint64(aces))
	k = k.mulAdd(100, uint64(dealerTotal))
	k = k.mulAdd(100, uint64(playerTotal))
	for c := cards.MinRank; c <= cards.MaxRank; c++ {
		k = k.mulAdd(100, uint64(shoe[c]))
	}
	k = k.mulAdd(10, uint64(mode))
	return k
}
