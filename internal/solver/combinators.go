package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// HitOrStand returns the better of Hit and Stand from (pt, pa) against a
// dealer showing dt. This is the player's ordinary decision point once
// doubling and splitting are no longer on the table (a hand already has
// more than two cards, or the rules forbid the action here).
func (s *Solver) HitOrStand(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	pt, pa = demoteSoftAces(pt, pa)
	stand := s.Stand(shoe, pt, UpCardAces(dt), dt, true)
	if pt >= 21 {
		return stand
	}
	hit := s.Hit(shoe, pt, pa, dt)
	return s.choose(stand, hit)
}

// HitStandOrDouble returns the best of Hit, Stand and Double from a
// two-card hand (pt, pa) against a dealer showing dt. Double is always
// considered; a caller that has already ruled doubling out (e.g. because the hand
// originated from a split and DoubleAfterSplit is false) should call
// HitOrStand directly instead.
func (s *Solver) HitStandOrDouble(shoe *cards.Shoe, pt, pa, dt int) payout.Distribution {
	pt, pa = demoteSoftAces(pt, pa)
	if pt == 21 {
		return s.Blackjack(shoe, dt)
	}
	best := s.HitOrStand(shoe, pt, pa, dt)
	double := s.Double(shoe, pt, pa, dt)
	return s.choose(best, double)
}
