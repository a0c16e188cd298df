// Package trajectory generates time-indexed paths on the aging manifold.
//
// Two strategies implement [Generator]:
//
//   - [SplineGenerator]: a seeded random walk places sparse control
//     points in surface coordinates, a natural cubic spline smooths them,
//     and the curve is densely resampled onto the manifold. Canonical.
//   - [KinematicGenerator]: the older closed-form model, position
//     evolving as p0 + v*t + a*t^2/2 per coordinate.
//
// Randomness is never ambient: every path is a pure function of a [Seed],
// and intervention seeds derive from the vector hash via
// [InterventionSeed], so identical protocols reproduce identical paths.
package trajectory
