package intervene

import "math"

// MinVelocityFactor floors the combined factor: interventions slow aging,
// they cannot reverse it.
const MinVelocityFactor = 0.2

// Factors are the two kinematic multipliers derived from a vector. Both
// are 1.0 when no intervention is active and strictly positive always.
type Factors struct {
	Velocity     float64
	Acceleration float64
}

// Calmness is the knob the path generator converts to random-walk step
// size: stronger composite interventions shrink path fluctuation.
func (f Factors) Calmness() float64 {
	return 1.0 / f.Velocity
}

// Compose maps a vector to its kinematic factors. Each intervention at
// normalized magnitude m contributes 1 - m*(1-MaxEffect), and the
// contributions multiply. Acceleration responds super-linearly so that
// combined protocols calm curvature faster than raw speed.
func Compose(v Vector) Factors {
	c := v.Clamped()

	velocity := 1.0
	for _, d := range Definitions {
		m := c[d.Kind] / d.Max
		velocity *= 1.0 - m*(1.0-d.MaxEffect)
	}
	if velocity < MinVelocityFactor {
		velocity = MinVelocityFactor
	}

	return Factors{
		Velocity:     velocity,
		Acceleration: math.Pow(velocity, 1.5),
	}
}
