// Package pricing implements closed-form Black-Scholes valuation of European
// vanilla options.
//
// The package has two layers:
//   - BlackScholes, a stateless pricing function over raw inputs
//   - Contract, a validated immutable parameter set whose Price method feeds
//     its normalized fields into BlackScholes
//
// Everything here is pure arithmetic: no I/O, no shared mutable state.
// Contracts are safe to price concurrently.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal distribution; its CDF is the Φ of the
// Black-Scholes formula.
var stdNormal = distuv.UnitNormal

// BlackScholes calculates the price of a European option using the
// Black-Scholes model.
//
// Parameters:
//   - isCall: true for call option, false for put option
//   - S: spot price of the underlying asset
//   - K: strike price of the option
//   - T: time to expiry in years
//   - r: continuously compounded risk-free rate (annual)
//   - sigma: volatility of the underlying asset (annual, as a decimal)
//
// Returns the theoretical price of the option. If time to expiry or
// volatility is zero or negative the formula degenerates (d1 and d2 divide by
// a vanishing term), so the function clamps to the option's intrinsic value
// instead of producing NaN. Contracts built through NewContract never reach
// the clamp since both values are validated strictly positive.
func BlackScholes(
	isCall bool,
	S float64, // spot
	K float64, // strike
	T float64, // time to expiry in years
	r float64, // risk-free rate
	sigma float64, // volatility
) float64 {

	if T <= 0 || sigma <= 0 {
		// intrinsic fallback
		if isCall {
			return math.Max(0, S-K)
		}
		return math.Max(0, K-S)
	}

	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)

	if isCall {
		return S*stdNormal.CDF(d1) - K*math.Exp(-r*T)*stdNormal.CDF(d2)
	}
	return K*math.Exp(-r*T)*stdNormal.CDF(-d2) - S*stdNormal.CDF(-d1)
}

// Price values the contract with the Black-Scholes closed form, using the
// derived years-denominated expiry and continuous rate. Pure and idempotent:
// repeated calls return the identical price.
func (c *Contract) Price() float64 {
	return BlackScholes(
		c.isCall,
		c.params.UnderlyingPrice,
		c.params.Strike,
		c.timeToExpiryYears,
		c.riskFreeContinuous,
		c.params.Volatility,
	)
}
