package sweep

import (
	"context"
	"testing"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/rules"
)

func TestSweepCoversFullDealSpace(t *testing.T) {
	table, err := Sweep(context.Background(), cards.StandardShoe(6), rules.VegasStrip(), 4)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	want := cards.MaxRank * cards.MaxRank * 10
	if len(table) != want {
		t.Fatalf("table has %d decisions, want %d", len(table), want)
	}
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	bad := rules.VegasStrip()
	bad.BlackjackPayout = 1.0

	if _, err := Sweep(context.Background(), cards.StandardShoe(6), bad, 2); err == nil {
		t.Fatal("expected Sweep to surface the rule configuration error")
	}
}

func TestSweepDefaultsWorkerCount(t *testing.T) {
	table, err := Sweep(context.Background(), cards.StandardShoe(6), rules.VegasStrip(), 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("expected a non-empty table with default worker count")
	}
}
