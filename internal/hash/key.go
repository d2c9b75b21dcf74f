// Package hash implements the solver's bijective state hasher: packing
// (shoe, player state, dealer state, mode) into a 128-bit memoization key.
package hash

import "math/bits"

// Key is the 128-bit memoization key produced by Hasher.Key. It is the sole
// key type for the solver's cache.
type Key struct {
	Hi, Lo uint64
}

// mulAdd computes k*m + a as a 128-bit value, in place. Overflow beyond 128
// bits is dropped; Hasher.Key never drives the accumulator that far given
// the digit budget enforced by rules.Config.Validate (shoe size < 25
// decks keeps every packed field within its declared number of decimal
// digits).
func (k Key) mulAdd(m, a uint64) Key {
	loHi, loLo := bits.Mul64(k.Lo, m)
	hiHi, hiLo := bits.Mul64(k.Hi, m)
	_ = hiHi // higher than 128 bits; unreachable given the digit budget above

	newLo, carry := bits.Add64(loLo, a, 0)
	newHi, _ := bits.Add64(hiLo, loHi, carry)
	return Key{Hi: newHi, Lo: newLo}
}
