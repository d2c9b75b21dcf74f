// Package sweep fans a full-chart decision sweep out across independent
// solver instances, one per worker goroutine, following the pattern
// internal/evaluator's Monte Carlo equity workers use for parallel,
// shared-nothing computation.
package sweep

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/rules"
	"github.com/patrikgergely/bbwrl/internal/solver"
	"github.com/patrikgergely/bbwrl/internal/strategist"
)

// Deal identifies one player-pair/dealer-up-card combination in the swept
// deal space.
type Deal struct {
	Card1, Card2 cards.Card
	// DealerUp is the up-card's blackjack value, 2..11 (11 for an ace).
	DealerUp int
}

// Decision is the sweep's verdict for a single Deal.
type Decision struct {
	Deal
	ShouldHit    bool
	ShouldDouble bool
	ShouldSplit  bool
}

// Table is the aggregated result of a Sweep: one Decision per swept Deal.
type Table []Decision

// Sweep partitions every (Card1, Card2, DealerUp) combination — 13 ranks
// for each player card times 10 dealer up-card values, 13x13x10 deals —
// across workers independent *solver.Solver
// instances and returns the should_hit/double/split verdict for each.
// Each worker owns its solver and strategist exclusively for its
// lifetime; no solver state is ever shared across goroutines, preserving
// the non-reentrancy rule the solver documents.
//
// workers <= 0 defaults to runtime.NumCPU(). Sweep returns the first
// error any worker reports (for example an invalid rule configuration)
// and cancels the remaining workers via ctx.
func Sweep(ctx context.Context, shoe cards.Shoe, cfg rules.Config, workers int) (Table, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	deals := make([]Deal, 0, cards.MaxRank*cards.MaxRank*10)
	for c1 := cards.MinRank; c1 <= cards.MaxRank; c1++ {
		for c2 := cards.MinRank; c2 <= cards.MaxRank; c2++ {
			for dt := 2; dt <= 11; dt++ {
				deals = append(deals, Deal{Card1: c1, Card2: c2, DealerUp: dt})
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make(chan Decision, len(deals))

	chunk := (len(deals) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(deals) {
			break
		}
		end := start + chunk
		if end > len(deals) {
			end = len(deals)
		}
		share := deals[start:end]

		g.Go(func() error {
			s, err := solver.New(cfg, defaultUtility)
			if err != nil {
				return err
			}
			st := strategist.New(s)

			for _, deal := range share {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				upCard := cards.Card(deal.DealerUp)
				if deal.DealerUp == 11 {
					upCard = cards.Ace
				}
				d := shoe
				d.Decrement(deal.Card1)
				d.Decrement(deal.Card2)
				d.Decrement(upCard)

				pt, pa := playerState(deal.Card1, deal.Card2)
				pair := st.Splittable(deal.Card1, deal.Card2)

				decision := Decision{
					Deal:         deal,
					ShouldHit:    st.ShouldHit(&d, pt, pa, deal.DealerUp),
					ShouldDouble: st.ShouldDouble(&d, pt, pa, deal.DealerUp),
					ShouldSplit:  pair && st.ShouldSplit(&d, pt, pa, deal.DealerUp),
				}

				select {
				case results <- decision:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	table := make(Table, 0, len(deals))
	for decision := range results {
		table = append(table, decision)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}

func defaultUtility(w float64) float64 { return w }

func playerState(c1, c2 cards.Card) (total, aces int) {
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
