package solver

import (
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
)

// Blackjack returns the distribution for a player holding a two-card 21
// against a dealer showing dt. When dt < 10 the dealer cannot also hold
// blackjack and the player is paid outright. When dt is 10 or 11, peek has
// already ruled out dealer blackjack for this round to have reached here,
// but the hole card could still complete a push against an un-peeked
// dealer ten/ace — which is exactly the case callers ask this for in the
// pre-deal sweep, so it is credited as a probability-weighted mix of TIE
// and BLACKJACK rather than assumed away.
func (s *Solver) Blackjack(shoe *cards.Shoe, dt int) payout.Distribution {
	if dt < 10 {
		return payout.Blackjack
	}

	key := s.hasher.Key(*shoe, 21, dt, 0, hash.ModeBlackjack)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	total := shoe.Total()
	var p float64
	if total > 0 {
		switch dt {
		case 11:
			tens := shoe[10] + shoe[11] + shoe[12] + shoe[13]
			p = float64(tens) / float64(total)
		case 10:
			p = float64(shoe[cards.Ace]) / float64(total)
		}
	}

	var result payout.Distribution
	result.AddScaled(payout.Tie, p)
	result.AddScaled(payout.Blackjack, 1-p)

	s.cache[key] = result
	return result
}
