// Package solver implements the recursive, memoized reward-distribution
// solver: given a shoe, a dealer up-card and a player hand, it computes the
// full payout distribution for every legal action under a rule
// configuration.
//
// A *Solver is not safe for concurrent use: its memoization cache and the
// shoe it is handed are a non-reentrant scratch area (see spec.md §5).
// Independent goroutines must each own their own Solver — see
// internal/sweep for the fan-out pattern this engine expects callers to
// use for parallelism.
package solver

import (
	"github.com/patrikgergely/bbwrl/internal/hash"
	"github.com/patrikgergely/bbwrl/internal/payout"
	"github.com/patrikgergely/bbwrl/internal/rules"
)

// Solver owns a memoization cache of payout distributions keyed by state
// hash, a utility table, and the rule configuration it was built with.
type Solver struct {
	cfg     rules.Config
	hasher  hash.Hasher
	cache   map[hash.Key]payout.Distribution
	utility [payout.Buckets]float64
}

// New constructs a Solver for the given rule configuration and utility
// function. utility is invoked exactly 17 times, at construction, on the
// fixed payout grid {-4.0, ..., +4.0}; the engine never calls back into it
// again. Returns an error if cfg fails validation (see rules.Config.Validate).
func New(cfg rules.Config, utility func(float64) float64) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{
		cfg:     cfg,
		cache:   make(map[hash.Key]payout.Distribution),
		utility: payout.UtilityTable(utility),
	}, nil
}

// FreeMem drops every cached distribution. Any Distribution a caller
// retained by reference from a prior call must not be used after this —
// the solver exclusively owns its cache's contents (spec.md §3).
func (s *Solver) FreeMem() {
	s.cache = make(map[hash.Key]payout.Distribution)
}

// Config returns the rule configuration this solver was constructed with.
func (s *Solver) Config() rules.Config {
	return s.cfg
}

// choose implements the "max-utility" comparison of spec.md §4.D: the
// distribution with the larger dot product against the utility table
// wins; ties keep a (the first operand, conventionally "stand").
func (s *Solver) choose(a, b payout.Distribution) payout.Distribution {
	if a.Dot(s.utility) >= b.Dot(s.utility) {
		return a
	}
	return b
}

// Value returns the utility-weighted expected value of d under this
// solver's utility table — the quantity the strategist and choose compare.
func (s *Solver) Value(d payout.Distribution) float64 {
	return d.Dot(s.utility)
}

// UpCardAces returns the dealer's starting soft-ace count implied by a
// shown total dt: exactly one if the up-card was an ace (dt==11), zero
// otherwise. dt itself is never a card, so this is not cards.IsAce — it
// reconstructs the fact cards.IsAce would have reported about the up-card
// from the total it produced.
func UpCardAces(dt int) int {
	if dt == 11 {
		return 1
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// demoteSoftAces repeatedly demotes a soft ace (total -= 10, aces -= 1)
// while the total busts and a soft ace remains, implementing the canonical
// hand-normalization rule of spec.md §3.
func demoteSoftAces(total, aces int) (int, int) {
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}
