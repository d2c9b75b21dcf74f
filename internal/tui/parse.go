package tui

import (
	"fmt"
	"strings"

	"github.com/patrikgergely/bbwrl/internal/cards"
)

// deal is one parsed "player1 player2 up" line from the advisor's input
// field.
type deal struct {
	player1, player2, up cards.Card
}

// parseDeal parses a whitespace-separated "player1 player2 up" line, e.g.
// "K 6 9" for a hard 16 against a dealer's 9.
func parseDeal(line string) (deal, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return deal{}, fmt.Errorf("expected 3 cards (player1 player2 up), got %d", len(fields))
	}
	p1, err := cards.Parse(fields[0])
	if err != nil {
		return deal{}, err
	}
	p2, err := cards.Parse(fields[1])
	if err != nil {
		return deal{}, err
	}
	up, err := cards.Parse(fields[2])
	if err != nil {
		return deal{}, err
	}
	return deal{player1: p1, player2: p2, up: up}, nil
}
