// Package engine orchestrates trajectory generation. It owns the three
// cache slots (historical anchors, status-quo projection per horizon,
// healthy reference per horizon), recomputes the intervention projection
// on every request, and bundles paths and metrics into one atomic Result.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/blanchemarion/biological-relativity/internal/config"
	"github.com/blanchemarion/biological-relativity/internal/intervene"
	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/metrics"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

// ErrStaleResult marks a recomputation that finished after a newer one
// had already started. Callers drop the result instead of displaying it.
var ErrStaleResult = errors.New("superseded by a newer recomputation")

// Horizons are the supported projection windows in months.
var Horizons = []int{3, 6, 12}

// SnapHorizon maps an arbitrary month count onto the nearest supported
// horizon, breaking ties toward the shorter window.
func SnapHorizon(months int) int {
	best := Horizons[0]
	for _, h := range Horizons[1:] {
		if abs(months-h) < abs(months-best) {
			best = h
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// healthyCalmness smooths the healthy reference walk to the level a
// strong sustained intervention would produce.
const healthyCalmness = 2.5

// Result is the complete output of one recomputation. All fields are
// populated before the result is installed; partial results never
// escape the engine.
type Result struct {
	Historical   *trajectory.Path
	StatusQuo    *trajectory.Path
	Intervention *trajectory.Path
	Healthy      *trajectory.Path

	StatusQuoMetrics    metrics.Summary
	InterventionMetrics metrics.Summary
	HealthyMetrics      metrics.Summary
	Delta               metrics.Delta

	Deviation          float64
	TimeDilation       float64
	BiologicalAgeDelta float64

	Vector  intervene.Vector
	Factors intervene.Factors
	Seed    trajectory.Seed
	Horizon int
}

// Engine derives all trajectories for one patient profile.
type Engine struct {
	surface      *manifold.Torus
	start        trajectory.SurfaceCoordinate
	healthyStart trajectory.SurfaceCoordinate
	weeks        int
	scales       metrics.Scales
	profile      *config.Profile
	histUnc      uncertainty.Model

	statusGen trajectory.Generator
	intervGen trajectory.Generator

	mu         sync.Mutex
	generation uint64
	historical *trajectory.Path
	statusQuo  map[int]*trajectory.Path
	healthy    map[int]*trajectory.Path
	last       *Result
}

// New builds an engine from a config. The config's profile selects the
// patient starting point; the healthy reference always starts from the
// young_healthy attractor region.
func New(cfg *config.Config) (*Engine, error) {
	profile := config.GetProfile(cfg.Profile)
	if profile == nil {
		return nil, fmt.Errorf("unknown profile %q", cfg.Profile)
	}
	healthy := config.GetProfile("young_healthy")
	if healthy == nil {
		return nil, errors.New("young_healthy profile missing")
	}

	surface := cfg.Torus()
	sampling := cfg.TrajectorySampling()

	var statusGen, intervGen trajectory.Generator
	switch cfg.Strategy {
	case "", config.StrategySpline:
		sg := trajectory.NewSplineGenerator(surface, cfg.StatusQuoUncertainty())
		sg.Sampling = sampling
		ig := trajectory.NewSplineGenerator(surface, cfg.InterventionUncertainty())
		ig.Sampling = sampling
		statusGen, intervGen = sg, ig
	case config.StrategyKinematic:
		sg := trajectory.NewKinematicGenerator(surface, cfg.StatusQuoUncertainty(), profile.RiskProfile())
		sg.Sampling = sampling
		ig := trajectory.NewKinematicGenerator(surface, cfg.InterventionUncertainty(), profile.RiskProfile())
		ig.Sampling = sampling
		statusGen, intervGen = sg, ig
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}

	return &Engine{
		surface:      surface,
		start:        profile.Start(),
		healthyStart: healthy.Start(),
		weeks:        cfg.Sampling.HistoricalWeeks,
		scales:       cfg.Scales(),
		profile:      profile,
		histUnc:      cfg.StatusQuoUncertainty(),
		statusGen:    statusGen,
		intervGen:    intervGen,
		statusQuo:    make(map[int]*trajectory.Path),
		healthy:      make(map[int]*trajectory.Path),
	}, nil
}

// Profile returns the patient profile the engine was built for.
func (e *Engine) Profile() *config.Profile { return e.profile }

// Surface returns the manifold trajectories are embedded in.
func (e *Engine) Surface() *manifold.Torus { return e.surface }

// Last returns the most recently installed result, or nil before the
// first successful recomputation.
func (e *Engine) Last() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Recompute derives the full trajectory bundle for one intervention
// vector and horizon. Cached slots are reused when their key matches;
// the intervention path is always regenerated. If a newer recomputation
// starts before this one installs its result, the stale result is
// discarded and ErrStaleResult returned.
func (e *Engine) Recompute(vec intervene.Vector, horizonMonths int) (*Result, error) {
	horizon := SnapHorizon(horizonMonths)

	e.mu.Lock()
	e.generation++
	generation := e.generation
	e.mu.Unlock()

	return e.recompute(generation, vec, horizon)
}

// recompute derives and installs a result for one claimed generation.
// The result is discarded when a newer generation was claimed while it
// was being computed.
func (e *Engine) recompute(generation uint64, vec intervene.Vector, horizon int) (*Result, error) {
	e.mu.Lock()
	hist := e.historical
	status := e.statusQuo[horizon]
	healthy := e.healthy[horizon]
	e.mu.Unlock()

	var err error
	if hist == nil {
		hist, err = trajectory.HistoricalAnchors(e.surface, e.histUnc,
			e.start, e.weeks, trajectory.SeedHistorical)
		if err != nil {
			return nil, fmt.Errorf("historical anchors: %w", err)
		}
	}
	if status == nil {
		status, err = e.statusGen.Generate(trajectory.Params{
			Start:    e.start,
			Months:   horizon,
			Seed:     trajectory.SeedStatusQuo,
			Calmness: 1.0,
		})
		if err != nil {
			return nil, fmt.Errorf("status quo path: %w", err)
		}
	}
	if healthy == nil {
		healthy, err = e.statusGen.Generate(trajectory.Params{
			Start:    e.healthyStart,
			Months:   horizon,
			Seed:     trajectory.SeedHealthy,
			Calmness: healthyCalmness,
		})
		if err != nil {
			return nil, fmt.Errorf("healthy reference path: %w", err)
		}
	}

	factors := intervene.Compose(vec)
	seed := trajectory.InterventionSeed(vec.Hash())
	interv, err := e.intervGen.Generate(trajectory.Params{
		Start:    e.start,
		Months:   horizon,
		Seed:     seed,
		Calmness: factors.Calmness(),
	})
	if err != nil {
		return nil, fmt.Errorf("intervention path: %w", err)
	}

	statusSum := metrics.Compute(status, e.scales)
	intervSum := metrics.Compute(interv, e.scales)
	healthySum := metrics.Compute(healthy, e.scales)

	res := &Result{
		Historical:          hist,
		StatusQuo:           status,
		Intervention:        interv,
		Healthy:             healthy,
		StatusQuoMetrics:    statusSum,
		InterventionMetrics: intervSum,
		HealthyMetrics:      healthySum,
		Delta:               metrics.Deltas(intervSum, statusSum),
		Deviation:           metrics.Deviation(intervSum, healthySum),
		TimeDilation:        metrics.TimeDilation(intervSum, statusSum),
		BiologicalAgeDelta:  metrics.BiologicalAgeDelta(interv, healthy),
		Vector:              vec.Clamped(),
		Factors:             factors,
		Seed:                seed,
		Horizon:             horizon,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if generation != e.generation {
		return nil, ErrStaleResult
	}
	if e.historical == nil {
		e.historical = hist
	}
	e.statusQuo[horizon] = status
	e.healthy[horizon] = healthy
	e.last = res
	return res, nil
}
