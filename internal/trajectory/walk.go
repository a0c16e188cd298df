package trajectory

import "math/rand"

// Walk step bounds in surface coordinates, per control point. The values
// are tuned for visual effect, not calibrated against any biological
// reference.
const (
	walkMaxStepU = 0.22
	walkMaxStepV = 0.18
	walkMinStepU = 0.05
	walkMinStepV = 0.03

	// minStepScale bounds how far interventions can shrink the walk.
	minStepScale = 0.3

	// stepFloor prevents two consecutive control points from coinciding,
	// which would degenerate a spline segment.
	stepFloor = 1e-3
)

// stepScale converts the calmness factor to a step multiplier in
// [minStepScale, 1]: calmer paths take smaller steps.
func stepScale(calmness float64) float64 {
	if calmness <= 0 {
		return 1.0
	}
	s := 1.0 / calmness
	if s < minStepScale {
		return minStepScale
	}
	if s > 1.0 {
		return 1.0
	}
	return s
}

// controlWalk synthesizes k control points starting at start. The walk
// runs in unwrapped coordinates so the downstream spline stays continuous
// across the periodic seams; wrapping happens only when mapping to the
// surface. Steps are strictly positive, modelling the drift toward the
// unhealthy region.
func controlWalk(start SurfaceCoordinate, k int, rng *rand.Rand, calmness float64) []SurfaceCoordinate {
	scale := stepScale(calmness)

	pts := make([]SurfaceCoordinate, 0, k)
	pts = append(pts, start)

	for i := 1; i < k; i++ {
		du := (walkMinStepU + rng.Float64()*(walkMaxStepU-walkMinStepU)) * scale
		dv := (walkMinStepV + rng.Float64()*(walkMaxStepV-walkMinStepV)) * scale
		if du < stepFloor {
			du = stepFloor
		}
		if dv < stepFloor {
			dv = stepFloor
		}
		prev := pts[i-1]
		pts = append(pts, SurfaceCoordinate{U: prev.U + du, V: prev.V + dv})
	}

	return pts
}
