package swaption

import (
	"fmt"
	"math"
)

// NPV calculates the net present value of the swap over the observed rate path.
//
// Conventions:
// - one cashflow per path observation; the loop bound is len(path), not s.Maturity
// - both legs discount per-period at the fixed rate (no separate discount curve)
// - the fixed leg pays FixedRate + Spread
//
// The result is pvFixed - pvFloating, a signed scalar.
func (s Swap) NPV(path RatePath) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("NPV: %w", err)
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("NPV: %w", ErrEmptyRatePath)
	}
	return s.pvByLeg(path).TotalPV, nil
}

// PVByLeg calculates discounted PVs for each leg and returns the net sum.
func (s Swap) PVByLeg(path RatePath) (PV, error) {
	if err := s.Validate(); err != nil {
		return PV{}, fmt.Errorf("PVByLeg: %w", err)
	}
	if len(path) == 0 {
		return PV{}, fmt.Errorf("PVByLeg: %w", ErrEmptyRatePath)
	}
	return s.pvByLeg(path), nil
}

// pvByLeg is the validation-free valuation core shared by NPV, PVByLeg and the
// swaption payoffs. An empty path reduces to PV{} (zero-length sums).
func (s Swap) pvByLeg(path RatePath) PV {
	fixedLeg := make([]float64, 0, len(path))
	floatingLeg := make([]float64, 0, len(path))

	// Remaining maturity is the observed path length.
	for i := range path {
		df := math.Pow(1+s.FixedRate, float64(i))
		floatingLeg = append(floatingLeg, path[i]*s.Notional/df)
		fixedLeg = append(fixedLeg, (s.FixedRate+Spread)*s.Notional/df)
	}

	pvFixed := sum(fixedLeg)
	pvFloating := sum(floatingLeg)

	return PV{
		FixedLegPV:    pvFixed,
		FloatingLegPV: pvFloating,
		TotalPV:       pvFixed - pvFloating,
	}
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
