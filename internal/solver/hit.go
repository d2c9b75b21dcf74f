package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// Hit returns the distribution of outcomes assuming the player hits once
// from (pt, pa) against a dealer showing dt, then plays optimally
// thereafter. shoe is borrowed: every transient Decrement this call makes
// is restored before it returns.
func (s *Solver) Hit(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	if pt > 21 && pa > 0 {
		pt, pa = demoteSoftAces(pt, pa)
	}
	if pt > 21 {
		return payout.Lose
	}

	key := s.hasher.Key(*shoe, pt, dt, pa, hash.ModeHit)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	var acc payout.Distribution
	weights, total := shoe.DrawWeights(0)
	if total > 0 {
		for c := cards.MinRank; c <= cards.MaxRank; c++ {
			w := weights[c]
			if w == 0 {
				continue
			}
			p := float64(w) / float64(total)
			shoe.Decrement(c)
			next := s.HitOrStand(shoe, pt+cards.Value(c), pa+boolToInt(cards.IsAce(c)), dt)
			acc.AddScaled(next, p)
			shoe.Restore(c)
		}
	}

	s.cache[key] = acc
	return acc
}
