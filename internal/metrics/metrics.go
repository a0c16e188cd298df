// Package metrics reduces trajectories to the scalar readouts shown by
// the display layer: velocity, acceleration, uncertainty, and the signed
// deltas between a candidate path and its reference.
package metrics

import (
	"math"

	"github.com/blanchemarion/biological-relativity/internal/trajectory"
)

// Scales are the fixed display multipliers applied to the raw means.
// Chosen for visual effect; they carry no biological meaning.
type Scales struct {
	Velocity     float64
	Acceleration float64
	Uncertainty  float64
}

func DefaultScales() Scales {
	return Scales{Velocity: 100, Acceleration: 1000, Uncertainty: 50}
}

// Summary carries the three display scalars for one path. All values
// are means of magnitudes and therefore non-negative.
type Summary struct {
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
	Uncertainty  float64 `json:"uncertainty"`
}

// Compute reduces the projected portion of a path. Historical points are
// skipped; the present-day point anchors the first segment.
func Compute(path *trajectory.Path, scales Scales) Summary {
	seg := &SegmentLength{}
	curv := &Curvature{}
	rad := &MeanRadius{}
	observers := []Observer{seg, curv, rad}

	for _, o := range observers {
		o.Reset()
	}

	proj := path.Projected()
	for i := 0; i < proj.Len(); i++ {
		for _, o := range observers {
			o.Observe(proj.Points[i], proj.Radii[i], proj.Times[i])
		}
	}

	return Summary{
		Velocity:     seg.Value() * scales.Velocity,
		Acceleration: curv.Value() * scales.Acceleration,
		Uncertainty:  rad.Value() * scales.Uncertainty,
	}
}

// Delta holds reference-minus-candidate differences, signed so that a
// positive value reads as an improvement, plus the same differences as
// percentages of the reference for display.
type Delta struct {
	Velocity        float64 `json:"velocity"`
	Acceleration    float64 `json:"acceleration"`
	Uncertainty     float64 `json:"uncertainty"`
	VelocityPct     float64 `json:"velocity_pct"`
	AccelerationPct float64 `json:"acceleration_pct"`
	UncertaintyPct  float64 `json:"uncertainty_pct"`
}

// Deltas compares a candidate summary against its reference.
func Deltas(candidate, reference Summary) Delta {
	return Delta{
		Velocity:        reference.Velocity - candidate.Velocity,
		Acceleration:    reference.Acceleration - candidate.Acceleration,
		Uncertainty:     reference.Uncertainty - candidate.Uncertainty,
		VelocityPct:     pct(reference.Velocity-candidate.Velocity, reference.Velocity),
		AccelerationPct: pct(reference.Acceleration-candidate.Acceleration, reference.Acceleration),
		UncertaintyPct:  pct(reference.Uncertainty-candidate.Uncertainty, reference.Uncertainty),
	}
}

func pct(diff, base float64) float64 {
	if base == 0 {
		return 0
	}
	return diff / base * 100
}

// Deviation reports how far a candidate velocity sits from the healthy
// reference, as a percentage of the healthy value.
func Deviation(candidate, healthy Summary) float64 {
	if healthy.Velocity == 0 {
		return 0
	}
	return math.Abs(candidate.Velocity-healthy.Velocity) / healthy.Velocity * 100
}

// TimeDilation is the candidate velocity as a percentage of the
// reference: below 100 means aging has slowed relative to status quo.
func TimeDilation(candidate, reference Summary) float64 {
	if reference.Velocity == 0 {
		return 0
	}
	return candidate.Velocity / reference.Velocity * 100
}

// yearsPerUnit converts embedding-space distance to biological years.
// A calibration constant of the display model, nothing more.
const yearsPerUnit = 5.0

// BiologicalAgeDelta estimates the biological age gap between a patient
// path and the healthy reference: the distance from the patient's
// present-day point to the nearest healthy point, in years.
func BiologicalAgeDelta(patient, healthy *trajectory.Path) float64 {
	if patient.Len() == 0 || healthy.Len() == 0 {
		return 0
	}

	// Present-day point: the sample with time closest to zero.
	current := 0
	for i, tm := range patient.Times {
		if math.Abs(tm) < math.Abs(patient.Times[current]) {
			current = i
		}
	}
	pos := patient.Points[current]

	minDist := math.Inf(1)
	for _, p := range healthy.Points {
		if d := pos.Dist(p); d < minDist {
			minDist = d
		}
	}
	return minDist * yearsPerUnit
}
