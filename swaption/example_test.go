package swaption_test

import (
	"fmt"

	"github.com/meenmo/bermudan/swaption"
)

// Price the demonstration scenario: a 5-period floating-rate path against a
// 3% fixed leg, struck at 4%.
func ExampleBermudanPayoff() {
	floatingRate := swaption.RatePath{0.1, 0.1, 0.11, 0.001, 0.01}

	option := swaption.Swaption{
		Swap: swaption.Swap{
			FixedRate: 0.03,
			Notional:  1,
			PayRate:   1,
			Maturity:  len(floatingRate),
		},
		Strike: 0.04,
	}

	exercise, err := swaption.BermudanPayoff(option, floatingRate)
	if err != nil {
		fmt.Println(err)
		return
	}
	if exercise.Exercised {
		fmt.Printf("exercised at t=%d\n", exercise.Time)
	} else {
		fmt.Println("expired worthless")
	}
	// Output:
	// exercised at t=3
}

// Re-value the underlying swap partway through its life by passing the
// remaining rate path.
func ExampleSwap_NPV() {
	swp := swaption.Swap{FixedRate: 0.05, Notional: 100, PayRate: 1, Maturity: 2}

	npv, err := swp.NPV(swaption.RatePath{0.0, 0.0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("NPV: %.2f\n", npv)
	// Output:
	// NPV: 11.71
}
