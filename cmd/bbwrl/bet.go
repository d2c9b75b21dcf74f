package main

import (
	"fmt"

	"github.com/patrikgergely/bbwrl/internal/bettor"
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/solver"
)

// BetCmd computes the Kelly-optimal bet size for a bankroll on a fresh
// shoe, component F of spec.md §4.
type BetCmd struct {
	Chips float64 `help:"bankroll available to bet" required:""`
}

func (c *BetCmd) Run(app *appContext) error {
	if c.Chips <= 0 {
		return fmt.Errorf("bbwrl: chips must be positive, got %v", c.Chips)
	}
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	b := bettor.New(s)
	bet := b.Bet(cards.StandardShoe(app.decks), c.Chips)
	app.log.Debug().Float64("chips", c.Chips).Int("decks", app.decks).Float64("bet", bet).Msg("computed Kelly bet size")
	fmt.Printf("%.2f\n", bet)
	return nil
}
