package trajectory

import (
	"fmt"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
)

// SurfaceCoordinate is a pair of angular parameters on the manifold,
// each periodic over [0, 2pi).
type SurfaceCoordinate struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Wrap reduces both angles into [0, 2pi).
func (c SurfaceCoordinate) Wrap() SurfaceCoordinate {
	return SurfaceCoordinate{U: manifold.Wrap(c.U), V: manifold.Wrap(c.V)}
}

// Path is an ordered, time-indexed point sequence on the manifold with
// one confidence radius per point. Historical points carry time <= 0,
// projected points time > 0, in months. Paths are replaced wholesale,
// never mutated, once returned.
type Path struct {
	Coords []SurfaceCoordinate `json:"coords"`
	Points []manifold.Point3D  `json:"points"`
	Radii  []float64           `json:"radii"`
	Times  []float64           `json:"times"`
}

func (p *Path) Len() int { return len(p.Points) }

// Validate checks the path invariants: non-empty, aligned sequences,
// monotonic time, non-negative radii non-decreasing over the projection.
func (p *Path) Validate() error {
	n := p.Len()
	if n == 0 {
		return fmt.Errorf("empty path: %w", ErrPathGeneration)
	}
	if len(p.Coords) != n || len(p.Radii) != n || len(p.Times) != n {
		return fmt.Errorf("misaligned path sequences: %w", ErrPathGeneration)
	}
	for i := 1; i < n; i++ {
		if p.Times[i] < p.Times[i-1] {
			return fmt.Errorf("time not monotonic at index %d: %w", i, ErrPathGeneration)
		}
	}
	for i, r := range p.Radii {
		if r < 0 {
			return fmt.Errorf("negative radius at index %d: %w", i, ErrPathGeneration)
		}
		if i > 0 && p.Times[i] > 0 && p.Times[i-1] > 0 && r < p.Radii[i-1] {
			return fmt.Errorf("projected radius shrank at index %d: %w", i, ErrPathGeneration)
		}
	}
	return nil
}

// MeanSegmentLength averages the Euclidean distance between consecutive
// points; zero for paths with fewer than two points.
func (p *Path) MeanSegmentLength() float64 {
	if p.Len() < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < p.Len(); i++ {
		total += p.Points[i].Dist(p.Points[i-1])
	}
	return total / float64(p.Len()-1)
}

// Projected returns the portion of the path with time >= 0, including
// the present-day point so segment math has an origin.
func (p *Path) Projected() *Path {
	start := 0
	for start < p.Len() && p.Times[start] < 0 {
		start++
	}
	return &Path{
		Coords: p.Coords[start:],
		Points: p.Points[start:],
		Radii:  p.Radii[start:],
		Times:  p.Times[start:],
	}
}

// Params selects what a generator produces: the starting coordinate, the
// projection horizon, the seed driving the control-point walk, and the
// calmness factor shrinking the walk's steps.
type Params struct {
	Start    SurfaceCoordinate
	Months   int
	Seed     Seed
	Calmness float64
}

// Generator is a path-generation strategy. The spline-on-manifold
// strategy is canonical; the kinematic strategy reproduces the older
// closed-form output.
type Generator interface {
	Generate(p Params) (*Path, error)
}

// Sampling sets the dense-resampling resolution. The sample count for a
// horizon of m months is BaseSamples + PerMonth*m.
type Sampling struct {
	BaseSamples int
	PerMonth    int
	MinControl  int
}

func DefaultSampling() Sampling {
	return Sampling{BaseSamples: 30, PerMonth: 10, MinControl: 5}
}

// SampleCount returns the dense sample count for a horizon.
func (s Sampling) SampleCount(months int) int {
	return s.BaseSamples + s.PerMonth*months
}

// ControlCount returns the number of walk control points for a horizon.
func (s Sampling) ControlCount(months int) int {
	k := months + 2
	if k < s.MinControl {
		k = s.MinControl
	}
	return k
}
