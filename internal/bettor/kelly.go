package bettor

import (
	"math"

	"github.com/patrikgergely/bbwrl/internal/payout"
)

// BetSize returns the Kelly-optimal bet size for bankroll c and aggregate
// payout distribution d: the x in [1, c] maximizing expected log-wealth
// E[log(1+c+w*x)] = sum_i d_i * log(1+c+w_i*x).
//
// The maximizer is found by bracketing sign changes of the derivative
// g'(x) = sum_i d_i*w_i/(1+c+w_i*x) on a fine grid over [1,c], bisecting
// each bracket to machine precision, then comparing the objective at
// every stationary point found plus both endpoints. Candidates where the
// objective is undefined (wealth would go non-positive at some bucket
// with nonzero mass) are discarded. No third-party one-dimensional root
// finder appears anywhere in the retrieved corpus, so this works directly
// off math.Log.
func BetSize(d payout.Distribution, c float64) float64 {
	lo, hi := 1.0, c
	if hi < lo {
		hi = lo
	}

	candidates := []float64{lo, hi}

	const gridPoints = 4000
	step := (hi - lo) / gridPoints
	if step > 0 {
		prevX := lo
		prevG, prevOK := derivative(d, c, prevX)
		for i := 1; i <= gridPoints; i++ {
			x := lo + step*float64(i)
			g, ok := derivative(d, c, x)
			if ok && prevOK && prevG != 0 && (prevG < 0) != (g < 0) {
				candidates = append(candidates, bisect(d, c, prevX, x))
			}
			prevX, prevG, prevOK = x, g, ok
		}
	}

	best := lo
	bestVal := math.Inf(-1)
	found := false
	for _, x := range candidates {
		val, ok := objective(d, c, x)
		if !ok {
			continue
		}
		if !found || val > bestVal {
			best, bestVal, found = x, val, true
		}
	}
	if !found {
		return 1
	}
	return best
}

// objective evaluates E[log(1+c+w*x)], returning ok=false if the wealth
// at any bucket with nonzero mass would be non-positive.
func objective(d payout.Distribution, c, x float64) (value float64, ok bool) {
	for i, p := range d {
		if p == 0 {
			continue
		}
		w := payout.BucketPayout(i)
		wealth := 1 + c + w*x
		if wealth <= 0 {
			return 0, false
		}
		value += p * math.Log(wealth)
	}
	return value, true
}

// derivative evaluates g'(x) = sum d_i*w_i/(1+c+w_i*x).
func derivative(d payout.Distribution, c, x float64) (value float64, ok bool) {
	for i, p := range d {
		if p == 0 {
			continue
		}
		w := payout.BucketPayout(i)
		wealth := 1 + c + w*x
		if wealth <= 0 {
			return 0, false
		}
		value += p * w / wealth
	}
	return value, true
}

func bisect(d payout.Distribution, c, lo, hi float64) float64 {
	gLo, ok := derivative(d, c, lo)
	if !ok {
		return lo
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		gMid, ok := derivative(d, c, mid)
		if !ok {
			return mid
		}
		if (gMid < 0) == (gLo < 0) {
			lo, gLo = mid, gMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
