package payout

import "testing"

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestConstantPlacesMassAtBucket(t *testing.T) {
	d := Constant(1.5)
	for i, v := range d {
		want := 0.0
		if BucketPayout(i) == 1.5 {
			want = 1.0
		}
		if !almostEqual(v, want) {
			t.Fatalf("bucket %d = %v, want %v", i, v, want)
		}
	}
}

func TestConstantSingletons(t *testing.T) {
	if Win[BucketForPayout(1.0)] != 1 {
		t.Error("Win should place mass at +1.0")
	}
	if Lose[BucketForPayout(-1.0)] != 1 {
		t.Error("Lose should place mass at -1.0")
	}
	if Tie[BucketForPayout(0.0)] != 1 {
		t.Error("Tie should place mass at 0.0")
	}
	if Blackjack[BucketForPayout(1.5)] != 1 {
		t.Error("Blackjack should place mass at +1.5")
	}
}

func TestAddScaled(t *testing.T) {
	dst := Empty()
	dst.AddScaled(Win, 0.5)
	dst.AddScaled(Lose, 0.5)
	if !almostEqual(dst.Sum(), 1.0) {
		t.Fatalf("expected total mass 1, got %v", dst.Sum())
	}
}

func TestDoublePayoutRangeAndMass(t *testing.T) {
	d := Empty()
	d[BucketForPayout(1.0)] = 0.5
	d[BucketForPayout(-0.5)] = 0.5
	doubled := DoublePayout(d)
	if !almostEqual(doubled.Sum(), 1.0) {
		t.Fatalf("expected mass preserved, got %v", doubled.Sum())
	}
	if !almostEqual(doubled[BucketForPayout(2.0)], 0.5) {
		t.Errorf("expected 0.5 mass at payout 2.0, got %v", doubled[BucketForPayout(2.0)])
	}
	if !almostEqual(doubled[BucketForPayout(-1.0)], 0.5) {
		t.Errorf("expected 0.5 mass at payout -1.0, got %v", doubled[BucketForPayout(-1.0)])
	}
	// Every bucket outside the doubled mass must be zero.
	for i, v := range doubled {
		if i != BucketForPayout(2.0) && i != BucketForPayout(-1.0) && v != 0 {
			t.Errorf("bucket %d should be zero, got %v", i, v)
		}
	}
}

func TestSelfConvolveMatchesSumOfTwoDraws(t *testing.T) {
	// A fair coin flip between +1 and -1: summing two draws gives
	// +2 (p=0.25), 0 (p=0.5), -2 (p=0.25).
	d := Empty()
	d[BucketForPayout(1.0)] = 0.5
	d[BucketForPayout(-1.0)] = 0.5

	conv := SelfConvolve(d)
	if !almostEqual(conv[BucketForPayout(2.0)], 0.25) {
		t.Errorf("P(+2) = %v, want 0.25", conv[BucketForPayout(2.0)])
	}
	if !almostEqual(conv[BucketForPayout(0.0)], 0.5) {
		t.Errorf("P(0) = %v, want 0.5", conv[BucketForPayout(0.0)])
	}
	if !almostEqual(conv[BucketForPayout(-2.0)], 0.25) {
		t.Errorf("P(-2) = %v, want 0.25", conv[BucketForPayout(-2.0)])
	}
	if !almostEqual(conv.Sum(), 1.0) {
		t.Fatalf("expected total mass 1, got %v", conv.Sum())
	}
}

func TestSelfConvolveClampsOutOfRangeMass(t *testing.T) {
	// Two independent +3 draws would sum to +6, outside [-4,+4]; that mass
	// is dropped rather than wrapped, so total mass can fall below 1.
	d := Empty()
	d[BucketForPayout(3.0)] = 1.0
	conv := SelfConvolve(d)
	if conv.Sum() != 0 {
		t.Fatalf("expected all mass clamped away, got sum %v", conv.Sum())
	}
}

func TestUtilityTableIdentity(t *testing.T) {
	table := UtilityTable(func(w float64) float64 { return w })
	for i, v := range table {
		if !almostEqual(v, BucketPayout(i)) {
			t.Errorf("utility[%d] = %v, want %v", i, v, BucketPayout(i))
		}
	}
}

func TestDot(t *testing.T) {
	table := UtilityTable(func(w float64) float64 { return w })
	if !almostEqual(Win.Dot(table), 1.0) {
		t.Errorf("Win utility = %v, want 1.0", Win.Dot(table))
	}
	if !almostEqual(Lose.Dot(table), -1.0) {
		t.Errorf("Lose utility = %v, want -1.0", Lose.Dot(table))
	}
}
