package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/patrikgergely/bbwrl/internal/tui"
)

// PlayCmd launches the interactive terminal advisor (component K), which
// lets a human enter hands by hand and see the live recommended action and
// bet size.
type PlayCmd struct {
	Chips float64 `help:"starting bankroll" default:"100"`
}

func (c *PlayCmd) Run(app *appContext) error {
	model, err := tui.New(app.cfg, app.decks, c.Chips)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
