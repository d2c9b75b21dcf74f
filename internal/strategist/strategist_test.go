package strategist

import (
	"testing"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/rules"
	"github.com/patrikgergely/bbwrl/internal/solver"
)

func linearUtility(w float64) float64 { return w }

func newTestStrategist(t *testing.T) *Strategist {
	t.Helper()
	s, err := solver.New(rules.VegasStrip(), linearUtility)
	if err != nil {
		t.Fatalf("solver.New: %v", err)
	}
	return New(s)
}

func TestShouldSplitEights(t *testing.T) {
	st := newTestStrategist(t)
	shoe := cards.StandardShoe(6)
	shoe.Decrement(8)
	shoe.Decrement(8)
	shoe.Decrement(10)

	if !st.ShouldSplit(&shoe, 16, 0, 10) {
		t.Fatal("expected a pair of 8s against a dealer 10 to split")
	}
}

func TestShouldHitHardTwelveAgainstTen(t *testing.T) {
	st := newTestStrategist(t)
	shoe := cards.StandardShoe(6)
	shoe.Decrement(10)
	shoe.Decrement(2)
	shoe.Decrement(10)

	if !st.ShouldHit(&shoe, 12, 0, 10) {
		t.Fatal("expected hard 12 against a dealer 10 to hit")
	}
}

func TestShouldNotHitHardTwenty(t *testing.T) {
	st := newTestStrategist(t)
	shoe := cards.StandardShoe(6)
	shoe.Decrement(10)
	shoe.Decrement(10)
	shoe.Decrement(6)

	if st.ShouldHit(&shoe, 20, 0, 6) {
		t.Fatal("expected hard 20 against a dealer 6 to stand")
	}
}

func TestSplittableHonorsSplitUneven(t *testing.T) {
	cfg := rules.VegasStrip()
	cfg.SplitUneven = true
	s, err := solver.New(cfg, linearUtility)
	if err != nil {
		t.Fatalf("solver.New: %v", err)
	}
	st := New(s)

	if !st.Splittable(10, 12) {
		t.Fatal("expected a ten/queen pair to be splittable under SplitUneven")
	}

	cfg.SplitUneven = false
	s2, err := solver.New(cfg, linearUtility)
	if err != nil {
		t.Fatalf("solver.New: %v", err)
	}
	st2 := New(s2)
	if st2.Splittable(10, 12) {
		t.Fatal("expected a ten/queen pair to not be splittable without SplitUneven")
	}
	if !st2.Splittable(10, 10) {
		t.Fatal("identical ranks must always be splittable")
	}
}

func TestChartCoversEveryRowAndDealerUp(t *testing.T) {
	st := newTestStrategist(t)
	rows := st.Chart(cards.StandardShoe(6))

	wantRows := (20 - 5 + 1) + 8 + 1 + 8 + 1
	if len(rows) != wantRows {
		t.Fatalf("chart has %d rows, want %d", len(rows), wantRows)
	}
	for _, row := range rows {
		if len(row.Actions) != 10 {
			t.Fatalf("row %q has %d dealer columns, want 10", row.Label, len(row.Actions))
		}
	}
}
