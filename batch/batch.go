// Package batch prices many independent swaption scenarios concurrently.
//
// Each Bermudan evaluation is pure and side-effect-free, so scenarios run in
// parallel without synchronization; results come back in input order.
package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/bermudan/swaption"
)

// Scenario is a named swaption plus the rate path it is priced against.
type Scenario struct {
	Name     string
	Swaption swaption.Swaption
	Path     swaption.RatePath
}

// Result pairs a scenario name with its exercise outcome.
type Result struct {
	Name     string
	Exercise swaption.Exercise
}

// Pricer evaluates scenario batches with a bounded number of workers.
type Pricer struct {
	workers int
	eval    *swaption.Evaluator
	logger  *zap.Logger
}

// New returns a batch pricer running at most workers evaluations at once.
// workers < 1 is treated as 1. A nil logger disables logging.
func New(workers int, logger *zap.Logger) *Pricer {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pricer{
		workers: workers,
		eval:    swaption.NewEvaluator(logger),
		logger:  logger,
	}
}

// Price evaluates every scenario and returns results in input order.
//
// The first scenario error cancels the remaining work and is returned wrapped
// with the scenario name. Cancellation of ctx aborts the batch.
func (p *Pricer) Price(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	results := make([]Result, len(scenarios))
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ex, err := p.eval.BermudanPayoff(sc.Swaption, sc.Path)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = Result{Name: sc.Name, Exercise: ex}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Debug("batch priced",
		zap.Int("scenarios", len(scenarios)),
		zap.Int("workers", p.workers),
	)
	return results, nil
}
