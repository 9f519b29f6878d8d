package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Classical textbook case: S=K=100, r=0.05 (continuous), sigma=0.2, T=1.
// Reference values for regression: call=10.450583572185565, put=5.573526022256971.
func TestBlackScholesReferenceValues(t *testing.T) {
	S, K, T, r, sigma := 100.0, 100.0, 1.0, 0.05, 0.2

	call := BlackScholes(true, S, K, T, r, sigma)
	put := BlackScholes(false, S, K, T, r, sigma)

	assert.InDelta(t, 10.450583572185565, call, 1e-9)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

// Put-Call Parity: C - P = S - K*e^{-rT}
func TestBlackScholesPutCallParity(t *testing.T) {
	cases := []struct {
		name             string
		S, K, T, r, sigma float64
	}{
		{"atm one year", 100, 100, 1, 0.05, 0.2},
		{"itm call short dated", 110, 95, 30.0 / 365, 0.03, 0.25},
		{"otm call high vol", 80, 120, 2, 0.01, 0.6},
		{"negative rate", 100, 100, 0.5, -0.005, 0.15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call := BlackScholes(true, tc.S, tc.K, tc.T, tc.r, tc.sigma)
			put := BlackScholes(false, tc.S, tc.K, tc.T, tc.r, tc.sigma)

			lhs := call - put
			rhs := tc.S - tc.K*math.Exp(-tc.r*tc.T)
			assert.InDelta(t, rhs, lhs, 1e-9)
		})
	}
}

func TestBlackScholesMonotonicity(t *testing.T) {
	K, T, r, sigma := 100.0, 1.0, 0.05, 0.2

	t.Run("call non-decreasing in spot", func(t *testing.T) {
		prev := BlackScholes(true, 50, K, T, r, sigma)
		for S := 55.0; S <= 150; S += 5 {
			cur := BlackScholes(true, S, K, T, r, sigma)
			assert.GreaterOrEqual(t, cur, prev, "S=%v", S)
			prev = cur
		}
	})

	t.Run("put non-increasing in spot", func(t *testing.T) {
		prev := BlackScholes(false, 50, K, T, r, sigma)
		for S := 55.0; S <= 150; S += 5 {
			cur := BlackScholes(false, S, K, T, r, sigma)
			assert.LessOrEqual(t, cur, prev, "S=%v", S)
			prev = cur
		}
	})

	t.Run("call non-decreasing in volatility", func(t *testing.T) {
		prev := BlackScholes(true, 100, K, T, r, 0.05)
		for v := 0.10; v <= 1.0; v += 0.05 {
			cur := BlackScholes(true, 100, K, T, r, v)
			assert.GreaterOrEqual(t, cur, prev, "sigma=%v", v)
			prev = cur
		}
	})
}

// The formula degenerates at T=0 and sigma=0; the function clamps to
// intrinsic value there instead of returning NaN.
func TestBlackScholesIntrinsicClamp(t *testing.T) {
	t.Run("expired call", func(t *testing.T) {
		assert.Equal(t, 0.0, BlackScholes(true, 90, 100, 0, 0.05, 0.2))
	})

	t.Run("expired put", func(t *testing.T) {
		assert.Equal(t, 10.0, BlackScholes(false, 90, 100, 0, 0.05, 0.2))
	})

	t.Run("zero volatility call", func(t *testing.T) {
		assert.Equal(t, 30.0, BlackScholes(true, 130, 100, 1, 0.05, 0))
	})

	t.Run("never NaN at the boundary", func(t *testing.T) {
		assert.False(t, math.IsNaN(BlackScholes(true, 100, 100, 0, 0.05, 0)))
	})
}
