package main

import (
	"fmt"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/solver"
	"github.com/patrikgergely/bbwrl/internal/strategist"
)

// AdviseCmd groups the strategist's boolean queries and the full
// basic-strategy chart export under one command: the three strategist
// queries (stand is reported as the complement of hit) plus component P of
// SPEC_FULL.md §4.
type AdviseCmd struct {
	Hit    AdviseHitCmd    `cmd:"" help:"should the player hit"`
	Stand  AdviseStandCmd  `cmd:"" help:"should the player stand"`
	Double AdviseDoubleCmd `cmd:"" help:"should the player double down"`
	Split  AdviseSplitCmd  `cmd:"" help:"should the player split"`
	Table  AdviseTableCmd  `cmd:"" help:"print the full basic-strategy chart"`
}

// hand is the three positional cards ("player1 player2 up") shared by the
// advise hit/stand/double/split leaves.
type hand struct {
	Player1 string `arg:"" name:"player1" help:"first player card (A,2-9,10/T,J,Q,K)"`
	Player2 string `arg:"" name:"player2" help:"second player card"`
	Up      string `arg:"" name:"up" help:"dealer's up-card"`
}

// resolve parses the hand's three cards and builds the remaining shoe,
// normalized player total/aces and dealer total the strategist needs.
func (h hand) resolve(decks int) (shoe cards.Shoe, pt, pa, dt int, err error) {
	p1, err := cards.Parse(h.Player1)
	if err != nil {
		return
	}
	p2, err := cards.Parse(h.Player2)
	if err != nil {
		return
	}
	up, err := cards.Parse(h.Up)
	if err != nil {
		return
	}

	shoe = cards.StandardShoe(decks)
	shoe.Decrement(p1)
	shoe.Decrement(p2)
	shoe.Decrement(up)

	pt = cards.Value(p1) + cards.Value(p2)
	if cards.IsAce(p1) {
		pa++
	}
	if cards.IsAce(p2) {
		pa++
	}
	for pt > 21 && pa > 0 {
		pt -= 10
		pa--
	}
	dt = cards.Value(up)
	return shoe, pt, pa, dt, nil
}

type AdviseHitCmd struct {
	hand
}

func (c *AdviseHitCmd) Run(app *appContext) error {
	shoe, pt, pa, dt, err := c.hand.resolve(app.decks)
	if err != nil {
		return err
	}
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	defer s.FreeMem()
	fmt.Println(strategist.New(s).ShouldHit(&shoe, pt, pa, dt))
	return nil
}

type AdviseStandCmd struct {
	hand
}

// Run prints the complement of ShouldHit: between hit and stand alone,
// standing is correct exactly when hitting is not.
func (c *AdviseStandCmd) Run(app *appContext) error {
	shoe, pt, pa, dt, err := c.hand.resolve(app.decks)
	if err != nil {
		return err
	}
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	defer s.FreeMem()
	fmt.Println(!strategist.New(s).ShouldHit(&shoe, pt, pa, dt))
	return nil
}

type AdviseDoubleCmd struct {
	hand
}

func (c *AdviseDoubleCmd) Run(app *appContext) error {
	shoe, pt, pa, dt, err := c.hand.resolve(app.decks)
	if err != nil {
		return err
	}
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	defer s.FreeMem()
	fmt.Println(strategist.New(s).ShouldDouble(&shoe, pt, pa, dt))
	return nil
}

type AdviseSplitCmd struct {
	hand
}

func (c *AdviseSplitCmd) Run(app *appContext) error {
	shoe, pt, pa, dt, err := c.hand.resolve(app.decks)
	if err != nil {
		return err
	}
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	defer s.FreeMem()
	st := strategist.New(s)

	p1, _ := cards.Parse(c.Player1)
	p2, _ := cards.Parse(c.Player2)
	if !st.Splittable(p1, p2) {
		fmt.Println(false)
		return nil
	}
	fmt.Println(st.ShouldSplit(&shoe, pt, pa, dt))
	return nil
}

type AdviseTableCmd struct{}

// Run prints the full basic-strategy chart (component P) for a fresh shoe
// of app.decks decks under app.cfg.
func (c *AdviseTableCmd) Run(app *appContext) error {
	s, err := solver.New(app.cfg, linearUtility)
	if err != nil {
		return err
	}
	defer s.FreeMem()

	rows := strategist.New(s).Chart(cards.StandardShoe(app.decks))
	printChart(rows)
	return nil
}

func linearUtility(w float64) float64 { return w }
