package swaption

import (
	"fmt"
	"math"
)

// Payoff calculates the immediate exercise value of the swaption over the
// remaining rate path: max(0, NPV - Notional*Strike).
//
// The floor at zero reflects that an option can never have negative value to
// its holder at the decision point.
func (o Swaption) Payoff(path RatePath) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, fmt.Errorf("Payoff: %w", err)
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("Payoff: %w", ErrEmptyRatePath)
	}
	return o.payoff(path), nil
}

// payoff is the validation-free core used by the Bermudan scan, where a
// shortened remaining path may legitimately be empty.
func (o Swaption) payoff(path RatePath) float64 {
	return math.Max(0, o.pvByLeg(path).TotalPV-o.Notional*o.Strike)
}
