package bettor

import (
	"testing"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/payout"
	"github.com/patrikgergely/bbwrl/internal/rules"
	"github.com/patrikgergely/bbwrl/internal/solver"
)

func linearUtility(w float64) float64 { return w }

func TestPreDealDistributionMassWithinOne(t *testing.T) {
	s, err := solver.New(rules.VegasStrip(), linearUtility)
	if err != nil {
		t.Fatalf("solver.New: %v", err)
	}
	b := New(s)

	d := b.PreDealDistribution(cards.StandardShoe(1))
	if sum := d.Sum(); sum < 0.99 || sum > 1.01 {
		t.Fatalf("pre-deal distribution mass = %v, want ~1", sum)
	}
}

func TestBetSizeNeutralShoeNearLowerBound(t *testing.T) {
	s, err := solver.New(rules.VegasStrip(), linearUtility)
	if err != nil {
		t.Fatalf("solver.New: %v", err)
	}
	b := New(s)

	bet := b.Bet(cards.StandardShoe(6), 100)
	if bet < 1 || bet > 5 {
		t.Fatalf("bet on a neutral shoe = %v, want near the lower bound (1)", bet)
	}
}

func TestBetSizeStaysWithinBankrollBounds(t *testing.T) {
	var d payout.Distribution
	d.AddScaled(payout.Win, 0.5)
	d.AddScaled(payout.Lose, 0.5)

	x := BetSize(d, 50)
	if x < 1 || x > 50 {
		t.Fatalf("bet size %v outside [1, 50]", x)
	}
}

func TestBetSizeFavorableDistributionBetsMore(t *testing.T) {
	var favorable payout.Distribution
	favorable.AddScaled(payout.Win, 0.6)
	favorable.AddScaled(payout.Lose, 0.4)

	var neutral payout.Distribution
	neutral.AddScaled(payout.Win, 0.5)
	neutral.AddScaled(payout.Lose, 0.5)

	if BetSize(favorable, 100) <= BetSize(neutral, 100) {
		t.Fatal("a favorable edge should not bet less than a neutral one")
	}
}
