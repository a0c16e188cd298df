package trajectory

import (
	"fmt"
	"math"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

// RiskProfile holds the closed-form kinematic constants of a patient
// class in surface coordinates: initial velocity, acceleration, and the
// stochastic variation amplitude.
type RiskProfile struct {
	Name  string
	VelU  float64
	VelV  float64
	AccU  float64
	AccV  float64
	Noise float64
}

// HighRiskProfile is the default for the legacy strategy.
func HighRiskProfile() RiskProfile {
	return RiskProfile{Name: "high_risk", VelU: 0.30, VelV: 0.25, AccU: 0.012, AccV: 0.010, Noise: 0.12}
}

// KinematicGenerator is the legacy strategy: position evolves by the
// closed form p0 + v*t + a*t^2/2 in surface coordinates, with seeded
// noise growing along the projection. Kept for backward-compatible
// output next to the canonical spline strategy.
type KinematicGenerator struct {
	Surface     *manifold.Torus
	Uncertainty uncertainty.Model
	Sampling    Sampling
	Profile     RiskProfile
}

func NewKinematicGenerator(surface *manifold.Torus, unc uncertainty.Model, profile RiskProfile) *KinematicGenerator {
	return &KinematicGenerator{
		Surface:     surface,
		Uncertainty: unc,
		Sampling:    DefaultSampling(),
		Profile:     profile,
	}
}

// Generate maps the calmness factor back to the kinematic multipliers:
// velocity scales by 1/calmness, acceleration by its 1.5 power.
func (g *KinematicGenerator) Generate(p Params) (*Path, error) {
	if p.Months <= 0 {
		return nil, &PathError{Seed: p.Seed, Months: p.Months,
			Wrapped: fmt.Errorf("non-positive horizon: %w", ErrPathGeneration)}
	}

	vf := 1.0
	if p.Calmness > 0 {
		vf = 1.0 / p.Calmness
	}
	af := math.Pow(vf, 1.5)

	samples := g.Sampling.SampleCount(p.Months)
	rng := p.Seed.Source()

	path := &Path{
		Coords: make([]SurfaceCoordinate, samples),
		Points: make([]manifold.Point3D, samples),
		Radii:  make([]float64, samples),
		Times:  make([]float64, samples),
	}

	vu := g.Profile.VelU * vf
	vv := g.Profile.VelV * vf
	au := g.Profile.AccU * af
	av := g.Profile.AccV * af

	for i := 0; i < samples; i++ {
		tf := float64(i) / float64(samples-1)
		tm := float64(p.Months) * tf

		// Noise ramps from zero so the projection stays anchored at the
		// present-day measurement.
		ramp := g.Profile.Noise * 0.3 * tf
		u := p.Start.U + vu*tm + 0.5*au*tm*tm + rng.NormFloat64()*ramp
		v := p.Start.V + vv*tm + 0.5*av*tm*tm + rng.NormFloat64()*ramp

		c := SurfaceCoordinate{U: u, V: v}.Wrap()
		path.Coords[i] = c
		path.Points[i] = g.Surface.Map(c.U, c.V)
		path.Times[i] = tm
		path.Radii[i] = g.Uncertainty.RadiusAt(tm)
	}

	return path, nil
}
