package cards

import "fmt"

// Shoe holds the count of each rank remaining to be drawn. Index 0 is
// unused; indices 1..13 hold the per-rank counts.
type Shoe [14]int

// StandardShoe builds a shoe of decks standard 52-card decks: four of each
// rank per deck.
func StandardShoe(decks int) Shoe {
	if decks <= 0 {
		panic("cards: decks must be positive")
	}
	var s Shoe
	for c := MinRank; c <= MaxRank; c++ {
		s[c] = 4 * decks
	}
	return s
}

// Total returns the number of cards remaining across all ranks.
func (s Shoe) Total() int {
	total := 0
	for c := MinRank; c <= MaxRank; c++ {
		total += s[c]
	}
	return total
}

// Decrement removes one card of rank c from the shoe in place. Panics if
// the shoe holds no such card — callers must check availability first via
// the count, matching the precondition-violation policy of §7.
func (s *Shoe) Decrement(c Card) {
	if s[c] <= 0 {
		panic(fmt.Sprintf("cards: shoe has no card %d left to remove", c))
	}
	s[c]--
}

// Restore adds one card of rank c back to the shoe in place, undoing a
// prior Decrement. Every transient Decrement in the solver is paired with
// exactly one Restore before the owning call returns.
func (s *Shoe) Restore(c Card) {
	s[c]++
}

// DrawWeights returns, for every rank 1..13, the weight used when drawing a
// card under an optional value ban, plus the sum of those weights. Ranks
// whose blackjack Value equals bannedValue get weight zero — this
// implements the dealer-peek exclusion of spec.md §4.D (banned_value=11
// when the dealer shows a ten, banned_value=10 when the dealer shows an
// ace). bannedValue=0 means no ban.
func (s Shoe) DrawWeights(bannedValue int) (weights [14]int, total int) {
	for c := MinRank; c <= MaxRank; c++ {
		if bannedValue != 0 && Value(c) == bannedValue {
			continue
		}
		weights[c] = s[c]
		total += weights[c]
	}
	return weights, total
}

// Probability returns card_probability(card, bannedValue): the chance of
// drawing rank card next, after excluding any rank whose value matches
// bannedValue and renormalising. Returns 0 if the shoe (after the ban) is
// empty, so a depleted shoe silently contributes nothing to the caller's
// accumulation (spec.md §4.D "Failure semantics").
func (s Shoe) Probability(card Card, bannedValue int) float64 {
	weights, total := s.DrawWeights(bannedValue)
	if total == 0 {
		return 0
	}
	return float64(weights[card]) / float64(total)
}
