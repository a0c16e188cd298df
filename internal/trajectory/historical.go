package trajectory

import (
	"fmt"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

// weekMonths is the time coordinate spacing of weekly measurements.
const weekMonths = 0.25

// Historical walk step bounds: small, sign-varying drift representing
// measurement-to-measurement change.
const (
	histMinStepU = -0.12
	histMaxStepU = 0.18
	histMinStepV = -0.10
	histMaxStepV = 0.12
)

// HistoricalAnchors produces the fixed past-measurement points ending at
// the present (time zero). They depend on neither intervention nor
// horizon, so callers compute them once per session.
func HistoricalAnchors(surface *manifold.Torus, unc uncertainty.Model, start SurfaceCoordinate, weeks int, seed Seed) (*Path, error) {
	if weeks < 1 {
		return nil, &PathError{Seed: seed, Months: 0,
			Wrapped: fmt.Errorf("%d weekly measurements: %w", weeks, ErrPathGeneration)}
	}

	rng := seed.Source()

	path := &Path{
		Coords: make([]SurfaceCoordinate, weeks),
		Points: make([]manifold.Point3D, weeks),
		Radii:  make([]float64, weeks),
		Times:  make([]float64, weeks),
	}

	c := start
	for i := 0; i < weeks; i++ {
		if i > 0 {
			du := histMinStepU + rng.Float64()*(histMaxStepU-histMinStepU)
			dv := histMinStepV + rng.Float64()*(histMaxStepV-histMinStepV)
			c = SurfaceCoordinate{U: c.U + du, V: c.V + dv}
		}
		wrapped := c.Wrap()
		tm := -float64(weeks-1-i) * weekMonths

		path.Coords[i] = wrapped
		path.Points[i] = surface.Map(wrapped.U, wrapped.V)
		path.Times[i] = tm
		path.Radii[i] = unc.RadiusAt(tm)
	}

	return path, nil
}
