// Package bettor implements the Kelly-optimal bet sizer: it integrates the
// reward-distribution solver over every initial three-card deal to build a
// pre-deal payout distribution, then maximizes expected log-wealth over the
// bet size.
package bettor

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/payout"
	"github.com/patrikgergely/bbwrl/internal/solver"
	"github.com/patrikgergely/bbwrl/internal/strategist"
)

// Bettor wraps a *solver.Solver to answer "how much should I bet" before
// any cards are dealt.
type Bettor struct {
	solver     *solver.Solver
	strategist *strategist.Strategist
}

// New wraps s in a Bettor.
func New(s *solver.Solver) *Bettor {
	return &Bettor{solver: s, strategist: strategist.New(s)}
}

// PreDealDistribution computes the aggregate payout distribution over a
// full round dealt from shoe, before the player has seen their cards: the
// probability-weighted mixture of distr_hit_stand_double (or the better of
// it and a split, when the dealt pair qualifies) across every ordered
// three-card deal (player_first, player_second, dealer_shown), with the
// dealer-blackjack probability credited against the shoe as it stood
// before any of the three cards were drawn. The solver's memoization
// cache is released once the sweep completes.
func (b *Bettor) PreDealDistribution(shoe cards.Shoe) payout.Distribution {
	defer b.solver.FreeMem()

	full := shoe
	n := shoe.Total()
	if n < 3 {
		return payout.Empty()
	}

	var agg payout.Distribution
	for c1 := cards.MinRank; c1 <= cards.MaxRank; c1++ {
		if shoe[c1] == 0 {
			continue
		}
		p1 := float64(shoe[c1]) / float64(n)
		shoe.Decrement(c1)

		for c2 := cards.MinRank; c2 <= cards.MaxRank; c2++ {
			if shoe[c2] == 0 {
				continue
			}
			p2 := float64(shoe[c2]) / float64(n-1)
			shoe.Decrement(c2)

			for c3 := cards.MinRank; c3 <= cards.MaxRank; c3++ {
				if shoe[c3] == 0 {
					continue
				}
				p := p1 * p2 * float64(shoe[c3]) / float64(n-2)
				shoe.Decrement(c3)

				pt, pa := normalizeHand(c1, c2)
				dt := cards.Value(c3)

				d := b.solver.HitStandOrDouble(&shoe, pt, pa, dt)
				if b.strategist.Splittable(c1, c2) {
					split := b.solver.Split(&shoe, pt, pa, dt)
					if b.solver.Value(split) > b.solver.Value(d) {
						d = split
					}
				}

				q := dealerBlackjackProbability(full, n, c3)
				agg.AddScaled(d, p*(1-q))
				if pt == 21 {
					agg.AddScaled(payout.Tie, p*q)
				} else {
					agg.AddScaled(payout.Lose, p*q)
				}

				shoe.Restore(c3)
			}
			shoe.Restore(c2)
		}
		shoe.Restore(c1)
	}

	return agg
}

// Bet returns the Kelly-optimal bet size for bankroll chips, given the
// pre-deal distribution for shoe.
func (b *Bettor) Bet(shoe cards.Shoe, chips float64) float64 {
	return BetSize(b.PreDealDistribution(shoe), chips)
}

func normalizeHand(c1, c2 cards.Card) (total, aces int) {
	total = cards.Value(c1) + cards.Value(c2)
	if cards.IsAce(c1) {
		aces++
	}
	if cards.IsAce(c2) {
		aces++
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// dealerBlackjackProbability implements get_dealer_blackjack_probability:
// P(dealer's hole card completes a blackjack | shown card c3), evaluated
// against full, the shoe as it stood before any of the round's three
// cards were drawn.
func dealerBlackjackProbability(full cards.Shoe, n int, c3 cards.Card) float64 {
	switch v := cards.Value(c3); {
	case v < 10:
		return 0
	case v == 11:
		tens := full[10] + full[11] + full[12] + full[13]
		return float64(tens) / float64(n)
	default:
		return float64(full[cards.Ace]) / float64(n)
	}
}
