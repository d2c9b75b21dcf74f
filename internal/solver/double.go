package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// Double returns the distribution of doubling down: one forced card, then
// a forced stand, with the final payout doubled.
func (s *Solver) Double(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	key := s.hasher.Key(*shoe, pt, dt, pa, hash.ModeDouble)
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

			newPt, _ := demoteSoftAces(pt+cards.Value(c), pa+boolToInt(cards.IsAce(c)))
			next := s.Stand(shoe, newPt, UpCardAces(dt), dt, true)
			acc.AddScaled(next, p)

			shoe.Restore(c)
		}
	}

	result := payout.DoublePayout(acc)
	s.cache[key] = result
	return result
}
