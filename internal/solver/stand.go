package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// Stand returns the distribution of outcomes assuming the player stands on
// pt while the dealer draws to completion from (da, dt). firstCall marks
// the dealer's first hidden-card draw, which is where the peek rule
// excludes a card value that would have already ended the round.
//
// pt arrives already ace-normalized by the caller (HitOrStand normalizes
// before calling Stand; Double and SplitAces normalize the post-draw
// total themselves). If pt is still above 21 here it is a genuine bust with no
// ace left to demote — spec.md §3's canonical-form invariant makes that
// an immediate loss, independent of how the dealer's hand resolves.
func (s *Solver) Stand(shoe *cards.Shoe, pt, da, dt int, firstCall bool) payout.Distribution {
	if pt > 21 {
		return payout.Lose
	}

	for dt > 21 && da > 0 {
		dt -= 10
		da--
		firstCall = false
	}
	if dt > 21 {
		return payout.Win
	}

	dealerStands := dt > 17 || (dt == 17 && (da == 0 || !s.cfg.HitSoft17))
	if dealerStands {
		switch {
		case pt == dt:
			return payout.Tie
		case dt > pt:
			return payout.Lose
		default:
			return payout.Win
		}
	}

	mode := hash.ModeStandRest
	if firstCall {
		mode = hash.ModeStandFirst
	}
	key := s.hasher.Key(*shoe, pt, dt, da, mode)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	banned := 0
	if firstCall {
		switch dt {
		case 10:
			banned = 11
		case 11:
			banned = 10
		}
	}

	var acc payout.Distribution
	weights, total := shoe.DrawWeights(banned)
	if total > 0 {
		for c := cards.MinRank; c <= cards.MaxRank; c++ {
			w := weights[c]
			if w == 0 {
				continue
			}
			p := float64(w) / float64(total)
			shoe.Decrement(c)
			next := s.Stand(shoe, pt, da+boolToInt(cards.IsAce(c)), dt+cards.Value(c), false)
			acc.AddScaled(next, p)
			shoe.Restore(c)
		}
	}

	s.cache[key] = acc
	return acc
}
