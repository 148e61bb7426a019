package swaption

import (
	"fmt"

	"go.uber.org/zap"
)

// Evaluator runs Bermudan exercise scans and reports exercise decisions
// through a structured logger.
//
// The zero-value-equivalent NewEvaluator(nil) is silent; evaluators are
// stateless and safe for concurrent use.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator returns an evaluator logging decisions to logger.
// A nil logger disables logging.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// BermudanPayoff scans the exercise dates t = 0 .. Maturity-1 in order,
// re-valuing the swaption at each date over the remaining rate path, and
// exercises at the first date with a strictly positive payoff.
//
// Policy is earliest-exercise-wins: the holder exercises as soon as the
// payoff is profitable, not at the globally optimal date. Callers needing
// optimal stopping must not rely on this scan.
//
// If no date is profitable, the option expires worthless and the returned
// Exercise has Value 0 and Exercised false.
func (e *Evaluator) BermudanPayoff(o Swaption, path RatePath) (Exercise, error) {
	if err := o.Validate(); err != nil {
		return Exercise{}, fmt.Errorf("BermudanPayoff: %w", err)
	}
	if len(path) == 0 {
		return Exercise{}, fmt.Errorf("BermudanPayoff: %w", ErrEmptyRatePath)
	}

	for t := 0; t < o.Maturity; t++ {
		remaining := path.From(t)
		value := o.payoff(remaining)

		e.logger.Debug("evaluated exercise date",
			zap.Int("time", t),
			zap.Float64("value", value),
			zap.Int("remaining_periods", len(remaining)),
		)

		if value > 0 {
			e.logger.Info("swaption exercised",
				zap.Int("time", t),
				zap.Float64("present_value", value),
			)
			return Exercise{Value: value, Time: t, Exercised: true}, nil
		}
	}

	e.logger.Info("swaption expired worthless",
		zap.Int("maturity", o.Maturity),
	)
	return Exercise{}, nil
}

// BermudanPayoff runs the exercise scan without logging.
func BermudanPayoff(o Swaption, path RatePath) (Exercise, error) {
	return NewEvaluator(nil).BermudanPayoff(o, path)
}
