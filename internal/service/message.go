package service

import "github.com/patrikgergely/bbwrl/internal/cards"

// Request is the single envelope every solver-service client sends: Op
// selects which engine entry point to run. The shoe is always
// reconstructed server-side as a fresh Decks-deck shoe with Player and
// DealerUp removed — the wire protocol never asks a client to track
// per-rank counts itself.
type Request struct {
	Op       string       `json:"op"`
	Decks    int          `json:"decks"`
	Player   []cards.Card `json:"player"`
	DealerUp cards.Card   `json:"dealerUp"`
	Chips    float64      `json:"chips,omitempty"`
}

// Response is the single envelope every solver-service client receives.
type Response struct {
	Op           string  `json:"op"`
	ShouldHit    bool    `json:"shouldHit,omitempty"`
	ShouldDouble bool    `json:"shouldDouble,omitempty"`
	ShouldSplit  bool    `json:"shouldSplit,omitempty"`
	Bet          float64 `json:"bet,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// shoe reconstructs the remaining shoe for a request: a fresh req.Decks-deck
// shoe with the player's hand and the dealer's up-card removed.
func (req Request) shoe() cards.Shoe {
	shoe := cards.StandardShoe(req.Decks)
	for _, c := range req.Player {
		shoe.Decrement(c)
	}
	shoe.Decrement(req.DealerUp)
	return shoe
}

// playerState normalizes the request's two-card hand into (total, aces).
func (req Request) playerState() (total, aces int) {
	total = cards.Value(req.Player[0]) + cards.Value(req.Player[1])
	if cards.IsAce(req.Player[0]) {
		aces++
	}
	if cards.IsAce(req.Player[1]) {
		aces++
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}
