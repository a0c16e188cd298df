package engine

import (
	"context"
	"sync"

	"github.com/blanchemarion/biological-relativity/internal/config"
)

// SweepResult pairs a scenario name with its recomputation.
type SweepResult struct {
	Scenario string
	Result   *Result
}

// Sweep projects every named scenario concurrently, each against its own
// engine so the runs cannot supersede one another. Results come back in
// the order of the scenarios slice.
func Sweep(ctx context.Context, cfg *config.Config, scenarios []string, horizon int) ([]SweepResult, error) {
	results := make([]SweepResult, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i, name := range scenarios {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			s := config.GetScenario(name)
			if s == nil {
				errs[idx] = &UnknownScenarioError{Name: name}
				return
			}

			eng, err := New(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			res, err := eng.Recompute(s.Vector(), horizon)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = SweepResult{Scenario: name, Result: res}
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return "unknown scenario: " + e.Name
}
