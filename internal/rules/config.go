// Package rules holds the process-wide, immutable rule-variation record
// consumed by the solver, strategist and bettor.
package rules

import (
	"errors"
	"fmt"
)

// Config is the process-wide immutable record of rule-variation flags.
// A single Config is constructed once and passed by reference into every
// solver; the engine never mutates it.
type Config struct {
	// HitSoft17 reports whether the dealer hits on soft 17.
	HitSoft17 bool

	// DealerPeeks reports whether the dealer peeks for blackjack before
	// players act. Must be true — see spec.md §9.
	DealerPeeks bool

	// DoubleAfterSplit reports whether the player may double on
	// post-split hands.
	DoubleAfterSplit bool

	// HitAfterSplitAces reports whether the player may draw additional
	// cards after splitting aces.
	HitAfterSplitAces bool

	// BlackjackWithSplitAces reports whether a ten drawn on a split ace
	// counts as blackjack payout rather than plain 21.
	BlackjackWithSplitAces bool

	// SplitUneven reports whether any two equal-VALUE cards may be
	// split, not just identical ranks (e.g. jack+king). The name is
	// inherited from the source this engine was distilled from — it is
	// misleading (see spec.md §9) but the semantics are preserved.
	SplitUneven bool

	// BlackjackPayout is the payout multiplier for a natural blackjack.
	// Must equal 1.5.
	BlackjackPayout float64

	// ShoeSize is the number of 52-card decks in the shoe. Must be below
	// 25, so each per-rank count fits in two decimal digits for the
	// state hasher's positional packing.
	ShoeSize int
}

// VegasStrip returns the Vegas Strip rule variation, recovered from
// original_source/bbwrl/environments/rule_variation.py: the default this
// engine was trained and tested against.
func VegasStrip() Config {
	return Config{
		HitSoft17:              false,
		DealerPeeks:            true,
		DoubleAfterSplit:       true,
		HitAfterSplitAces:      false,
		BlackjackWithSplitAces: false,
		SplitUneven:            true,
		BlackjackPayout:        1.5,
		ShoeSize:               4,
	}
}

// Validate checks the configuration against the solver's supported
// envelope. It is called once, at solver construction; a failure is fatal
// and surfaced to the caller rather than discovered deep in recursion.
func (c Config) Validate() error {
	if c.BlackjackPayout != 1.5 {
		return fmt.Errorf("rules: blackjack payout must be 1.5, got %v", c.BlackjackPayout)
	}
	if c.ShoeSize <= 0 {
		return errors.New("rules: shoe size must be positive")
	}
	if c.ShoeSize >= 25 {
		return fmt.Errorf("rules: shoe size must be < 25 decks, got %d", c.ShoeSize)
	}
	if !c.DealerPeeks {
		return errors.New("rules: dealer peek is required (DealerPeeks must be true)")
	}
	return nil
}
