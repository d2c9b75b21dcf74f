package solver

import (
	"math"
	"testing"

	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/payout"
	"github.com/patrikgergely/bbwrl/internal/rules"
)

func linearUtility(w float64) float64 { return w }

func newTestSolver(t *testing.T, cfg rules.Config) *Solver {
	t.Helper()
	s, err := New(cfg, linearUtility)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestHitStandMassNeverExceedsOne(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	shoe.Decrement(10)
	shoe.Decrement(6)
	shoe.Decrement(9)

	d := s.HitOrStand(&shoe, 16, 0, 9)
	if sum := d.Sum(); sum > 1.0+1e-9 {
		t.Fatalf("distribution mass %v exceeds 1", sum)
	}
}

func TestDoubleRangeWithinBounds(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	shoe.Decrement(5)
	shoe.Decrement(6)
	shoe.Decrement(10)

	d := s.Double(&shoe, 11, 0, 10)
	for i, p := range d {
		if p == 0 {
			continue
		}
		w := payout.BucketPayout(i)
		if w < -2.0 || w > 2.0 {
			t.Fatalf("double payout %v outside [-2,2] at bucket %d", w, i)
		}
	}
}

func TestSplitConvolutionMassAndMean(t *testing.T) {
	cfg := rules.VegasStrip()
	cfg.DoubleAfterSplit = false
	s := newTestSolver(t, cfg)

	shoe := cards.StandardShoe(4)
	shoe.Decrement(8)
	shoe.Decrement(8)
	shoe.Decrement(6)

	split := s.SplitGeneral(&shoe, 8, 6)
	if sum := split.Sum(); sum > 1.0+1e-9 {
		t.Fatalf("split mass %v exceeds 1", sum)
	}

	shoe2 := cards.StandardShoe(4)
	shoe2.Decrement(8)
	shoe2.Decrement(8)
	shoe2.Decrement(6)
	var sub payout.Distribution
	weights, total := shoe2.DrawWeights(0)
	for c := cards.MinRank; c <= cards.MaxRank; c++ {
		w := weights[c]
		if w == 0 {
			continue
		}
		p := float64(w) / float64(total)
		shoe2.Decrement(c)
		next := s.subHand(&shoe2, 8+cards.Value(c), boolToInt(cards.IsAce(c)), 6)
		sub.AddScaled(next, p)
		shoe2.Restore(c)
	}

	wantMean := 2 * sub.Dot(identityUtility())
	gotMean := split.Dot(identityUtility())
	if math.Abs(wantMean-gotMean) > 1e-9 {
		t.Fatalf("E[split]=%v, want 2*E[sub]=%v", gotMean, wantMean)
	}
}

func identityUtility() [payout.Buckets]float64 {
	return payout.UtilityTable(linearUtility)
}

func TestMemoizationIdempotent(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	shoe.Decrement(10)
	shoe.Decrement(10)
	shoe.Decrement(10)

	first := s.HitOrStand(&shoe, 12, 0, 10)
	second := s.HitOrStand(&shoe, 12, 0, 10)
	if first != second {
		t.Fatalf("memoized result changed between calls: %v != %v", first, second)
	}
}

func TestShoeRestoredAfterCalls(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	before := shoe

	s.HitOrStand(&shoe, 14, 0, 7)
	if shoe != before {
		t.Fatalf("shoe mutated: before=%v after=%v", before, shoe)
	}
}

func TestDoubleAfterSplitMonotonicity(t *testing.T) {
	without := rules.VegasStrip()
	without.DoubleAfterSplit = false
	with := rules.VegasStrip()
	with.DoubleAfterSplit = true

	sWithout := newTestSolver(t, without)
	sWith := newTestSolver(t, with)

	shoeA := cards.StandardShoe(6)
	shoeA.Decrement(8)
	shoeA.Decrement(8)
	dWithout := sWithout.SplitGeneral(&shoeA, 8, 6)

	shoeB := cards.StandardShoe(6)
	shoeB.Decrement(8)
	shoeB.Decrement(8)
	dWith := sWith.SplitGeneral(&shoeB, 8, 6)

	if sWith.Value(dWith) < sWithout.Value(dWithout)-1e-9 {
		t.Fatalf("enabling double-after-split decreased EV: with=%v without=%v",
			sWith.Value(dWith), sWithout.Value(dWithout))
	}
}

func TestHard20VsTenSingleDeckPrefersStand(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	shoe.Decrement(10)
	shoe.Decrement(10)
	shoe.Decrement(10)

	d := s.HitStandOrDouble(&shoe, 20, 0, 10)
	ev := s.Value(d)
	if ev < 0.55 {
		t.Fatalf("hard 20 vs 10 expected value too low: %v", ev)
	}

	shoeSplit := cards.StandardShoe(1)
	shoeSplit.Decrement(10)
	shoeSplit.Decrement(10)
	shoeSplit.Decrement(10)
	split := s.SplitTens(&shoeSplit, 10)
	if s.Value(split) >= ev {
		t.Fatalf("splitting tens should not beat standing on hard 20: split=%v stand=%v",
			s.Value(split), ev)
	}
}

func TestPairOfEightsVsTenShouldSplit(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())

	shoeStand := cards.StandardShoe(6)
	shoeStand.Decrement(8)
	shoeStand.Decrement(8)
	shoeStand.Decrement(10)
	stand := s.HitStandOrDouble(&shoeStand, 16, 0, 10)

	shoeSplit := cards.StandardShoe(6)
	shoeSplit.Decrement(8)
	shoeSplit.Decrement(8)
	shoeSplit.Decrement(10)
	split := s.Split(&shoeSplit, 16, 0, 10)

	if s.Value(split) <= s.Value(stand) {
		t.Fatalf("splitting 8s against a 10 should beat standing/hitting: split=%v other=%v",
			s.Value(split), s.Value(stand))
	}
}

func TestSplitAcesDominatesHitStandDouble(t *testing.T) {
	cfg := rules.VegasStrip()
	s := newTestSolver(t, cfg)

	for dt := 2; dt <= 11; dt++ {
		shoeA := cards.StandardShoe(6)
		shoeA.Decrement(cards.Ace)
		shoeA.Decrement(cards.Ace)
		split := s.SplitAces(&shoeA, dt)

		shoeB := cards.StandardShoe(6)
		shoeB.Decrement(cards.Ace)
		shoeB.Decrement(cards.Ace)
		hitStand := s.HitStandOrDouble(&shoeB, 12, 1, dt)

		if s.Value(split) <= s.Value(hitStand) {
			t.Fatalf("dt=%d: split aces should dominate hit/stand/double: split=%v other=%v",
				dt, s.Value(split), s.Value(hitStand))
		}
	}
}

func TestBlackjackVsDealerAceSupportIsTieOrBlackjack(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	shoe.Decrement(cards.Ace)

	d := s.Blackjack(&shoe, 11)

	tieBucket := payout.BucketForPayout(0.0)
	bjBucket := payout.BucketForPayout(1.5)
	for i, p := range d {
		if i != tieBucket && i != bjBucket && p != 0 {
			t.Fatalf("unexpected mass %v at bucket %d (payout %v)", p, i, payout.BucketPayout(i))
		}
	}
	if sum := d[tieBucket] + d[bjBucket]; math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("tie+blackjack mass = %v, want 1", sum)
	}
}

func TestSplitOddTotalPanics(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected Split to panic on an odd player total")
		}
	}()
	s.Split(&shoe, 15, 0, 10)
}

func TestFreeMemClearsCache(t *testing.T) {
	s := newTestSolver(t, rules.VegasStrip())
	shoe := cards.StandardShoe(1)
	s.HitOrStand(&shoe, 14, 0, 7)
	if len(s.cache) == 0 {
		t.Fatal("expected cache to be populated")
	}
	s.FreeMem()
	if len(s.cache) != 0 {
		t.Fatal("expected FreeMem to clear the cache")
	}
}
