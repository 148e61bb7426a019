// Package swaption prices Bermudan-style swaptions on a simplified
// fixed-for-floating interest rate swap.
//
// The model is deliberately non-stochastic: the floating-rate path is given
// directly, one observation per period, and both legs discount per-period at
// the fixed rate rather than off a bootstrapped curve. Valuations are pure
// functions of their inputs and safe to run concurrently.
package swaption

import "errors"

var (
	// ErrEmptyRatePath is returned when a valuation is requested over a rate path with no observations.
	ErrEmptyRatePath = errors.New("empty rate path")
	// ErrInvalidFixedRate is returned when the fixed rate is -100% or below, which breaks discounting.
	ErrInvalidFixedRate = errors.New("fixed rate must be greater than -1")
	// ErrNegativeNotional is returned when the notional amount is negative.
	ErrNegativeNotional = errors.New("negative notional")
	// ErrNegativeMaturity is returned when the maturity period count is negative.
	ErrNegativeMaturity = errors.New("negative maturity")
)

// Spread is the fixed margin (in decimal) added to the fixed rate to produce
// the payer's effective fixed-leg coupon.
const Spread = 0.01

// RatePath is an ordered sequence of per-period floating-rate observations
// (in decimal), indexed from the current valuation date forward.
type RatePath []float64

// From returns the remaining path as seen from period t onward.
//
// Passing t at or beyond the end of the path yields an empty path, matching
// a swap whose remaining schedule has run out.
func (p RatePath) From(t int) RatePath {
	if t >= len(p) {
		return RatePath{}
	}
	return p[t:]
}

// Swap captures the economic terms of a fixed-for-floating interest rate swap.
//
// PayRate (payments per year) and Maturity are part of the trade terms but do
// not enter the valuation: discounting is per-period at the fixed rate, and
// the cashflow count is always taken from the observed rate path, not from
// Maturity. Both fields are kept so the call contract stays self-documenting.
type Swap struct {
	FixedRate float64 // fixed leg coupon, decimal (0.03 == 3%)
	Notional  float64
	PayRate   float64 // payments per year; reserved, unused in discounting
	Maturity  int     // periods to maturity; reserved, NPV uses len(path)
}

// Validate rejects swap terms that would produce meaningless arithmetic.
func (s Swap) Validate() error {
	if s.FixedRate <= -1 {
		return ErrInvalidFixedRate
	}
	if s.Notional < 0 {
		return ErrNegativeNotional
	}
	if s.Maturity < 0 {
		return ErrNegativeMaturity
	}
	return nil
}

// PV contains present values for each leg and the net sum.
//
// TotalPV is signed: positive means the fixed-receiver leg exceeds the
// floating-payer leg.
type PV struct {
	FixedLegPV    float64
	FloatingLegPV float64
	TotalPV       float64
}

// Swaption is an option on a Swap with a strike rate that floors the
// exercise payoff at zero.
type Swaption struct {
	Swap
	Strike float64 // strike rate, decimal
}

// Exercise is the outcome of a Bermudan exercise scan.
//
// When Exercised is false, Value is 0 and Time is meaningless: the option
// expired worthless.
type Exercise struct {
	Value     float64
	Time      int
	Exercised bool
}
