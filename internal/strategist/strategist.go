// Package strategist implements the optimal-action layer over the
// reward-distribution solver: three boolean queries that each compute two
// distributions on the solver's shared cache and compare their expected
// utility.
package strategist

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/solver"
)

// Strategist answers should-I-hit/double/split queries for a two-card
// player hand by delegating to a *solver.Solver. It holds no state of its
// own beyond the solver reference, so a Strategist is as reentrant (or
// not) as the solver it wraps.
type Strategist struct {
	solver *solver.Solver
}

// New wraps s in a Strategist.
func New(s *solver.Solver) *Strategist {
	return &Strategist{solver: s}
}

// ShouldHit reports whether hitting from (pt, pa) against a dealer showing
// dt has higher expected utility than standing.
func (st *Strategist) ShouldHit(shoe *cards.Shoe, pt, pa, dt int) bool {
	hit := st.solver.Hit(shoe, pt, pa, dt)
	stand := st.solver.Stand(shoe, pt, solver.UpCardAces(dt), dt, true)
	return st.solver.Value(hit) > st.solver.Value(stand)
}

// ShouldDouble reports whether doubling on the initial two-card hand
// (pt, pa) has higher expected utility than the best of hit/stand.
func (st *Strategist) ShouldDouble(shoe *cards.Shoe, pt, pa, dt int) bool {
	double := st.solver.Double(shoe, pt, pa, dt)
	alt := st.solver.HitOrStand(shoe, pt, pa, dt)
	return st.solver.Value(double) > st.solver.Value(alt)
}

// ShouldSplit reports whether splitting the initial two-card hand (pt, pa)
// has higher expected utility than the best of hit/stand/double.
func (st *Strategist) ShouldSplit(shoe *cards.Shoe, pt, pa, dt int) bool {
	split := st.solver.Split(shoe, pt, pa, dt)
	alt := st.solver.HitStandOrDouble(shoe, pt, pa, dt)
	return st.solver.Value(split) > st.solver.Value(alt)
}

// Splittable reports whether a two-card hand made of ranks c1 and c2 is
// eligible for splitting under the solver's rule configuration: identical
// ranks always qualify, and equal blackjack values also qualify when
// SplitUneven is set (e.g. jack paired with king).
func (st *Strategist) Splittable(c1, c2 cards.Card) bool {
	if c1 == c2 {
		return true
	}
	return st.solver.Config().SplitUneven && cards.Value(c1) == cards.Value(c2)
}
