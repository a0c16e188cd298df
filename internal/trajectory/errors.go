package trajectory

import (
	"errors"
	"fmt"
)

// Domain errors for path generation.
var (
	// ErrInsufficientSamples indicates a sample count below the number of
	// control points.
	ErrInsufficientSamples = errors.New("trajectory: sample count below control point count")

	// ErrDegenerateControl indicates duplicate consecutive control points
	// or too few of them to interpolate.
	ErrDegenerateControl = errors.New("trajectory: degenerate control sequence")

	// ErrPathGeneration indicates the generator could not produce a valid
	// path from its inputs.
	ErrPathGeneration = errors.New("trajectory: path generation failed")
)

// PathError wraps a generation failure with the inputs that caused it.
type PathError struct {
	Seed    Seed
	Months  int
	Wrapped error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("seed %d, %d months: %v", e.Seed, e.Months, e.Wrapped)
}

func (e *PathError) Unwrap() error {
	return e.Wrapped
}
