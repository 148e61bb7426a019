package swaption_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/meenmo/bermudan/swaption"
)

func demoOption(maturity int) swaption.Swaption {
	return swaption.Swaption{
		Swap: swaption.Swap{
			FixedRate: 0.03,
			Notional:  1,
			PayRate:   1,
			Maturity:  maturity,
		},
		Strike: 0.04,
	}
}

func TestBermudanPayoff_DemoScenario(t *testing.T) {
	t.Parallel()

	path := swaption.RatePath{0.1, 0.1, 0.11, 0.001, 0.01}
	option := demoOption(len(path))

	exercise, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)

	// The first three dates are unprofitable for the fixed receiver; the scan
	// exercises at t=3, where only the two low observations remain:
	// payoff = 0.04*(1 + 1/1.03) - (0.001 + 0.01/1.03) - 0.04.
	require.True(t, exercise.Exercised)
	require.Equal(t, 3, exercise.Time)

	want := 0.04*(1+1/1.03) - (0.001 + 0.01/1.03) - 0.04
	require.InDelta(t, want, exercise.Value, 1e-12)
	require.InDelta(t, 0.0281262135922330, exercise.Value, 1e-12)
}

func TestBermudanPayoff_EarliestExerciseWins(t *testing.T) {
	t.Parallel()

	// t=0 is unprofitable; t=1 and t=3 are both profitable, and t=3 would pay
	// more. The scan must take t=1, not the maximum.
	path := swaption.RatePath{0.5, 0.03, 0.03, -0.2, -0.2}
	option := demoOption(len(path))

	exercise, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)
	require.True(t, exercise.Exercised)
	require.Equal(t, 1, exercise.Time)

	payoffAt1, err := option.Payoff(path.From(1))
	require.NoError(t, err)
	payoffAt3, err := option.Payoff(path.From(3))
	require.NoError(t, err)

	require.Positive(t, payoffAt1)
	require.Positive(t, payoffAt3)
	require.Greater(t, payoffAt3, payoffAt1, "fixture must make the later date more valuable")
	require.Equal(t, payoffAt1, exercise.Value)
}

func TestBermudanPayoff_ExpiresWorthless(t *testing.T) {
	t.Parallel()

	// Floating stays above the effective fixed coupon at every date.
	path := swaption.RatePath{0.05, 0.05, 0.05}
	option := demoOption(len(path))

	exercise, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)
	assert.False(t, exercise.Exercised)
	assert.Zero(t, exercise.Value)
}

func TestBermudanPayoff_MaturityBeyondPath(t *testing.T) {
	t.Parallel()

	// Dates past the end of the path see an empty remaining schedule and
	// value to zero; the scan must pass them over without error.
	path := swaption.RatePath{0.5, 0.5}
	option := demoOption(10)

	exercise, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)
	require.False(t, exercise.Exercised)
}

func TestBermudanPayoff_InvalidInputs(t *testing.T) {
	t.Parallel()

	option := demoOption(5)

	_, err := swaption.BermudanPayoff(option, swaption.RatePath{})
	require.ErrorIs(t, err, swaption.ErrEmptyRatePath)

	option.Maturity = -1
	_, err = swaption.BermudanPayoff(option, swaption.RatePath{0.01})
	require.ErrorIs(t, err, swaption.ErrNegativeMaturity)
}

func TestBermudanPayoff_Idempotent(t *testing.T) {
	t.Parallel()

	path := swaption.RatePath{0.1, 0.1, 0.11, 0.001, 0.01}
	option := demoOption(len(path))

	first, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)
	second, err := swaption.BermudanPayoff(option, path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEvaluator_LogsExerciseDecision(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	eval := swaption.NewEvaluator(zap.New(core))

	path := swaption.RatePath{0.1, 0.1, 0.11, 0.001, 0.01}
	exercise, err := eval.BermudanPayoff(demoOption(len(path)), path)
	require.NoError(t, err)
	require.True(t, exercise.Exercised)

	exercised := logs.FilterMessage("swaption exercised").All()
	require.Len(t, exercised, 1)
	fields := exercised[0].ContextMap()
	assert.EqualValues(t, 3, fields["time"])
	assert.InDelta(t, exercise.Value, fields["present_value"], 1e-15)

	// One debug entry per evaluated date, up to and including the exercise date.
	assert.Len(t, logs.FilterMessage("evaluated exercise date").All(), 4)
}
