package main

import (
	"fmt"
	"log"

	"github.com/meenmo/bermudan/swaption"
)

func main() {
	// To-be-modeled floating rate path, one observation per period.
	floatingRate := swaption.RatePath{0.1, 0.1, 0.11, 0.001, 0.01}

	option := swaption.Swaption{
		Swap: swaption.Swap{
			FixedRate: 0.03,
			Notional:  1,
			PayRate:   1, // at least one payment per year
			Maturity:  len(floatingRate),
		},
		Strike: 0.04,
	}

	exercise, err := swaption.BermudanPayoff(option, floatingRate)
	if err != nil {
		log.Fatal(err)
	}
	if exercise.Exercised {
		fmt.Printf("Present Value: %v\n", exercise.Value)
		fmt.Printf("Time %d\n", exercise.Time)
	}
}
