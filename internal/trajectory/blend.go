package trajectory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
)

// nearestDelta is the signed angular difference from one angle to
// another along the shorter arc, in (-pi, pi].
func nearestDelta(from, to float64) float64 {
	d := math.Mod(to-from, manifold.TwoPi)
	if d > math.Pi {
		d -= manifold.TwoPi
	}
	if d <= -math.Pi {
		d += manifold.TwoPi
	}
	return d
}

// Blend pulls the candidate path toward a reference in surface
// coordinates: alpha 0 returns the candidate unchanged, alpha 1 the
// reference. Each coordinate moves along the shorter arc, so a pair
// straddling a periodic seam blends across it rather than the long way
// round. If the sample counts differ, the reference is resampled to
// match. Radii and times come from the candidate.
func Blend(surface *manifold.Torus, candidate, reference *Path, alpha float64) (*Path, error) {
	if candidate.Len() == 0 || reference.Len() == 0 {
		return nil, fmt.Errorf("blend of empty path: %w", ErrPathGeneration)
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	refU, refV, err := matchedCoords(reference, candidate.Len())
	if err != nil {
		return nil, err
	}

	n := candidate.Len()
	out := &Path{
		Coords: make([]SurfaceCoordinate, n),
		Points: make([]manifold.Point3D, n),
		Radii:  make([]float64, n),
		Times:  make([]float64, n),
	}

	for i := 0; i < n; i++ {
		c := SurfaceCoordinate{
			U: candidate.Coords[i].U + alpha*nearestDelta(candidate.Coords[i].U, refU[i]),
			V: candidate.Coords[i].V + alpha*nearestDelta(candidate.Coords[i].V, refV[i]),
		}.Wrap()

		out.Coords[i] = c
		out.Points[i] = surface.Map(c.U, c.V)
		out.Radii[i] = candidate.Radii[i]
		out.Times[i] = candidate.Times[i]
	}

	return out, nil
}

// matchedCoords resamples a path's surface coordinates to n samples.
func matchedCoords(p *Path, n int) ([]float64, []float64, error) {
	if p.Len() == n {
		us := make([]float64, n)
		vs := make([]float64, n)
		for i, c := range p.Coords {
			us[i] = c.U
			vs[i] = c.V
		}
		return us, vs, nil
	}
	if p.Len() < 4 {
		return nil, nil, fmt.Errorf("reference too short to resample: %w", ErrDegenerateControl)
	}

	// Unwrap the sequence before fitting so the spline stays continuous
	// across the periodic seams.
	ts := make([]float64, p.Len())
	us := make([]float64, p.Len())
	vs := make([]float64, p.Len())
	us[0] = p.Coords[0].U
	vs[0] = p.Coords[0].V
	for i := 1; i < p.Len(); i++ {
		ts[i] = float64(i) / float64(p.Len()-1)
		us[i] = us[i-1] + nearestDelta(us[i-1], p.Coords[i].U)
		vs[i] = vs[i-1] + nearestDelta(vs[i-1], p.Coords[i].V)
	}

	var splineU, splineV interp.NaturalCubic
	if err := splineU.Fit(ts, us); err != nil {
		return nil, nil, fmt.Errorf("fit reference u: %w", ErrPathGeneration)
	}
	if err := splineV.Fit(ts, vs); err != nil {
		return nil, nil, fmt.Errorf("fit reference v: %w", ErrPathGeneration)
	}

	outU := make([]float64, n)
	outV := make([]float64, n)
	for i := 0; i < n; i++ {
		tf := float64(i) / float64(n-1)
		outU[i] = splineU.Predict(tf)
		outV[i] = splineV.Predict(tf)
	}
	return outU, outV, nil
}

// Band offsets a path by width in the v coordinate on both sides,
// producing the upper and lower edges of a reference corridor for the
// renderer.
func Band(surface *manifold.Torus, p *Path, width float64) (upper, lower *Path) {
	upper = offsetV(surface, p, width)
	lower = offsetV(surface, p, -width)
	return upper, lower
}

func offsetV(surface *manifold.Torus, p *Path, dv float64) *Path {
	n := p.Len()
	out := &Path{
		Coords: make([]SurfaceCoordinate, n),
		Points: make([]manifold.Point3D, n),
		Radii:  make([]float64, n),
		Times:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		c := SurfaceCoordinate{U: p.Coords[i].U, V: p.Coords[i].V + dv}.Wrap()
		out.Coords[i] = c
		out.Points[i] = surface.Map(c.U, c.V)
		out.Radii[i] = p.Radii[i]
		out.Times[i] = p.Times[i]
	}
	return out
}
