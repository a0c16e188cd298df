package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

// SplineGenerator is the canonical strategy: a seeded control-point walk
// smoothed by natural cubic interpolation and densely resampled on the
// manifold.
type SplineGenerator struct {
	Surface     *manifold.Torus
	Uncertainty uncertainty.Model
	Sampling    Sampling
}

func NewSplineGenerator(surface *manifold.Torus, unc uncertainty.Model) *SplineGenerator {
	return &SplineGenerator{
		Surface:     surface,
		Uncertainty: unc,
		Sampling:    DefaultSampling(),
	}
}

// Generate synthesizes control points from the seeded walk, then hands
// them to FromControlPoints.
func (g *SplineGenerator) Generate(p Params) (*Path, error) {
	if p.Months <= 0 {
		return nil, &PathError{Seed: p.Seed, Months: p.Months,
			Wrapped: fmt.Errorf("non-positive horizon: %w", ErrPathGeneration)}
	}

	k := g.Sampling.ControlCount(p.Months)
	knots := controlWalk(p.Start, k, p.Seed.Source(), p.Calmness)

	path, err := g.FromControlPoints(knots, p.Months)
	if err != nil {
		return nil, &PathError{Seed: p.Seed, Months: p.Months, Wrapped: err}
	}
	return path, nil
}

// FromControlPoints interpolates an ordered knot sequence and resamples
// it at the horizon's dense sample count. Knots are expected in
// unwrapped coordinates; the result is wrapped before mapping so the
// path stays continuous across the periodic seams.
func (g *SplineGenerator) FromControlPoints(knots []SurfaceCoordinate, months int) (*Path, error) {
	k := len(knots)
	if k < 4 {
		return nil, fmt.Errorf("%d control points: %w", k, ErrDegenerateControl)
	}
	for i := 1; i < k; i++ {
		du := knots[i].U - knots[i-1].U
		dv := knots[i].V - knots[i-1].V
		if du*du+dv*dv < stepFloor*stepFloor {
			return nil, fmt.Errorf("duplicate control points at %d: %w", i, ErrDegenerateControl)
		}
	}

	samples := g.Sampling.SampleCount(months)
	if samples < k {
		return nil, fmt.Errorf("%d samples for %d control points: %w", samples, k, ErrInsufficientSamples)
	}

	ts := make([]float64, k)
	us := make([]float64, k)
	vs := make([]float64, k)
	for i, c := range knots {
		ts[i] = float64(i) / float64(k-1)
		us[i] = c.U
		vs[i] = c.V
	}

	var splineU, splineV interp.NaturalCubic
	if err := splineU.Fit(ts, us); err != nil {
		return nil, fmt.Errorf("fit u spline: %w", ErrPathGeneration)
	}
	if err := splineV.Fit(ts, vs); err != nil {
		return nil, fmt.Errorf("fit v spline: %w", ErrPathGeneration)
	}

	path := &Path{
		Coords: make([]SurfaceCoordinate, samples),
		Points: make([]manifold.Point3D, samples),
		Radii:  make([]float64, samples),
		Times:  make([]float64, samples),
	}

	for i := 0; i < samples; i++ {
		tf := float64(i) / float64(samples-1)
		c := SurfaceCoordinate{U: splineU.Predict(tf), V: splineV.Predict(tf)}.Wrap()

		path.Coords[i] = c
		path.Points[i] = g.Surface.Map(c.U, c.V)
		path.Times[i] = float64(months) * tf
		path.Radii[i] = g.Uncertainty.RadiusAt(path.Times[i])
	}

	return path, nil
}
