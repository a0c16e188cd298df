package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/blanchemarion/biological-relativity/internal/config"
	"github.com/blanchemarion/biological-relativity/internal/intervene"
)

func TestSweepAllScenarios(t *testing.T) {
	cfg := config.DefaultConfig()
	names := config.ListScenarios()

	results, err := Sweep(context.Background(), cfg, names, 12)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}
	for i, r := range results {
		if r.Scenario != names[i] {
			t.Errorf("result %d out of order: %s", i, r.Scenario)
		}
		if r.Result == nil || r.Result.Intervention.Len() == 0 {
			t.Errorf("scenario %s produced no trajectory", names[i])
		}
	}
}

func TestSweepMatchesDirectRecompute(t *testing.T) {
	cfg := config.DefaultConfig()
	name := "intensive_medical"

	results, err := Sweep(context.Background(), cfg, []string{name}, 6)
	if err != nil {
		t.Fatal(err)
	}

	eng, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := eng.Recompute(config.GetScenario(name).Vector(), 6)
	if err != nil {
		t.Fatal(err)
	}

	if results[0].Result.Seed != direct.Seed {
		t.Error("sweep must be deterministic against a direct recompute")
	}
	if results[0].Result.InterventionMetrics != direct.InterventionMetrics {
		t.Error("sweep metrics diverge from direct recompute")
	}
}

func TestSweepUnknownScenario(t *testing.T) {
	_, err := Sweep(context.Background(), config.DefaultConfig(), []string{"nope"}, 6)
	var unknown *UnknownScenarioError
	if !errors.As(err, &unknown) || unknown.Name != "nope" {
		t.Fatalf("expected UnknownScenarioError, got %v", err)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, config.DefaultConfig(), config.ListScenarios(), 6)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSweepStrongerScenarioSlower(t *testing.T) {
	cfg := config.DefaultConfig()
	results, err := Sweep(context.Background(), cfg,
		[]string{"minimal_lifestyle", "intensive_medical"}, 12)
	if err != nil {
		t.Fatal(err)
	}

	minimal := results[0].Result.Factors.Velocity
	intensive := results[1].Result.Factors.Velocity
	if intensive >= minimal {
		t.Errorf("intensive scenario factor %f must be below minimal %f", intensive, minimal)
	}
	if intensive < intervene.MinVelocityFactor {
		t.Errorf("factor %f below the composition floor", intensive)
	}
}
