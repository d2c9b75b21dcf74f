// Package tui implements the interactive blackjack advisor: a terminal UI
// that lets a human play a shoe by hand, entering the dealer's up-card and
// their own two-card hand, and see the live recommended action and bet
// size. Grounded on internal/tui/tui.go's bubbletea Model/Update/View
// shape in the teacher repo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/patrikgergely/bbwrl/internal/bettor"
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/rules"
	"github.com/patrikgergely/bbwrl/internal/solver"
	"github.com/patrikgergely/bbwrl/internal/strategist"
)

// Model is the bubbletea model backing the advisor. It owns exactly one
// *solver.Solver for its lifetime, matching the engine's non-reentrancy
// contract (spec.md §5) — there is never more than one goroutine driving
// a bubbletea program's Update loop at a time.
type Model struct {
	solver     *solver.Solver
	strategist *strategist.Strategist
	bettor     *bettor.Bettor
	cfg        rules.Config
	decks      int
	chips      float64

	input   textinput.Model
	history viewport.Model
	log     []string

	quitting    bool
	width       int
	height      int
	initialized bool
}

// New builds an advisor Model for the given rule configuration, shoe size
// (in decks) and starting bankroll.
func New(cfg rules.Config, decks int, chips float64) (*Model, error) {
	s, err := solver.New(cfg, func(w float64) float64 { return w })
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "player1 player2 up, e.g. K 6 9"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = "> "

	vp := viewport.New(60, 10)
	vp.SetContent("")

	return &Model{
		solver:     s,
		strategist: strategist.New(s),
		bettor:     bettor.New(s),
		cfg:        cfg,
		decks:      decks,
		chips:      chips,
		input:      ti,
		history:    vp,
	}, nil
}

// Init satisfies tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.history.Width = msg.Width - 4
		m.history.Height = msg.Height - 8
		m.initialized = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				m.process(line)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// process parses one input line and appends the resulting recommendation
// (or error) to the advisor's scrollback.
func (m *Model) process(line string) {
	d, err := parseDeal(line)
	if err != nil {
		m.log = append(m.log, errorStyle.Render(fmt.Sprintf("%q: %v", line, err)))
		m.refreshHistory()
		return
	}

	shoe := cards.StandardShoe(m.decks)
	shoe.Decrement(d.player1)
	shoe.Decrement(d.player2)
	shoe.Decrement(d.up)

	pt, pa := handTotal(d.player1, d.player2)
	dt := cards.Value(d.up)
	splittable := m.strategist.Splittable(d.player1, d.player2)

	rec := m.strategist.Recommend(&shoe, pt, pa, dt, splittable)
	bet := m.bettor.Bet(cards.StandardShoe(m.decks), m.chips)
	m.solver.FreeMem()

	m.log = append(m.log, handInfoStyle.Render(line)+"  "+
		actionStyle.Render(rec.String())+
		successStyle.Render(fmt.Sprintf("  bet %.2f", bet)))
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	m.history.SetContent(strings.Join(m.log, "\n"))
	m.history.GotoBottom()
}

// View satisfies tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" bbwrl advisor ") + "\n\n")
	b.WriteString(infoStyle.Render("enter a hand as \"player1 player2 up\", e.g. \"K 6 9\"; ctrl+c to quit") + "\n\n")
	b.WriteString(paneStyle.Render(m.history.View()) + "\n\n")
	b.WriteString(m.input.View())
	return b.String()
}

func handTotal(c1, c2 cards.Card) (total, aces int) {
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
