package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// subHand plays a single split sub-hand starting from (pt, pa) against a
// dealer showing dt, choosing between HitOrStand and HitStandOrDouble
// according to whether doubling after a split is permitted.
func (s *Solver) subHand(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	if s.cfg.DoubleAfterSplit {
		return s.HitStandOrDouble(shoe, pt, pa, dt)
	}
	return s.HitOrStand(shoe, pt, pa, dt)
}

// SplitGeneral returns the distribution of splitting a pair of equal,
// non-ten, non-ace cards worth cardValue each, against a dealer showing dt.
// The two sub-hands are identically distributed and independent given the
// post-deal shoe; self-convolving one sub-hand's distribution is an
// approximation of their joint payout (see package payout's SelfConvolve).
func (s *Solver) SplitGeneral(shoe *cards.Shoe, cardValue, dt int) payout.Distribution {
	key := s.hasher.Key(*shoe, cardValue, dt, 0, hash.ModeSplit)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	var sub payout.Distribution
	weights, total := shoe.DrawWeights(0)
	if total > 0 {
		for c := cards.MinRank; c <= cards.MaxRank; c++ {
			w := weights[c]
			if w == 0 {
				continue
			}
			p := float64(w) / float64(total)
			shoe.Decrement(c)
			next := s.subHand(shoe, cardValue+cards.Value(c), boolToInt(cards.IsAce(c)), dt)
			sub.AddScaled(next, p)
			shoe.Restore(c)
		}
	}

	result := payout.SelfConvolve(sub)
	s.cache[key] = result
	return result
}

// SplitTens returns the distribution of splitting a pair of ten-valued
// cards against a dealer showing dt. A drawn ace completes the sub-hand as
// a blackjack rather than a plain 21 — it never enters subHand.
func (s *Solver) SplitTens(shoe *cards.Shoe, dt int) payout.Distribution {
	key := s.hasher.Key(*shoe, 20, dt, 0, hash.ModeSplit)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	var sub payout.Distribution
	weights, total := shoe.DrawWeights(0)
	if total > 0 {
		for c := cards.MinRank; c <= cards.MaxRank; c++ {
			w := weights[c]
			if w == 0 {
				continue
			}
			p := float64(w) / float64(total)
			shoe.Decrement(c)
			if cards.IsAce(c) {
				sub.AddScaled(payout.Blackjack, p)
			} else {
				next := s.subHand(shoe, 10+cards.Value(c), 0, dt)
				sub.AddScaled(next, p)
			}
			shoe.Restore(c)
		}
	}

	result := payout.SelfConvolve(sub)
	s.cache[key] = result
	return result
}

// SplitAces returns the distribution of splitting a pair of aces against a
// dealer showing dt, honoring HitAfterSplitAces and
// BlackjackWithSplitAces.
func (s *Solver) SplitAces(shoe *cards.Shoe, dt int) payout.Distribution {
	key := s.hasher.Key(*shoe, 11, dt, 1, hash.ModeSplit)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	var sub payout.Distribution
	weights, total := shoe.DrawWeights(0)
	if total > 0 {
		for c := cards.MinRank; c <= cards.MaxRank; c++ {
			w := weights[c]
			if w == 0 {
				continue
			}
			p := float64(w) / float64(total)
			shoe.Decrement(c)

			var next payout.Distribution
			if cards.Value(c) == 10 {
				if s.cfg.BlackjackWithSplitAces {
					next = payout.Blackjack
				} else {
					next = s.Stand(shoe, 21, UpCardAces(dt), dt, true)
				}
			} else if s.cfg.HitAfterSplitAces {
				next = s.subHand(shoe, 11+cards.Value(c), 1+boolToInt(cards.IsAce(c)), dt)
			} else {
				standPt, _ := demoteSoftAces(11+cards.Value(c), 1+boolToInt(cards.IsAce(c)))
				next = s.Stand(shoe, standPt, UpCardAces(dt), dt, true)
			}
			sub.AddScaled(next, p)

			shoe.Restore(c)
		}
	}

	result := payout.SelfConvolve(sub)
	s.cache[key] = result
	return result
}

// Split dispatches to the appropriate split variant for a two-card hand
// (pt, pa) against a dealer showing dt. pt must be even — a hand offered
// for splitting always consists of two equal-value cards, so an odd pt is
// a caller error.
func (s *Solver) Split(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	if pt%2 != 0 {
		panic("solver: Split called with an odd player total")
	}
	switch {
	case pa > 0:
		return s.SplitAces(shoe, dt)
	case pt == 20:
		return s.SplitTens(shoe, dt)
	default:
		return s.SplitGeneral(shoe, pt/2, dt)
	}
}
