// Package manifold defines the parametric surface on which all aging
// trajectories are constrained to lie.
//
// The surface is a torus with two angular coordinates: u sweeps the large
// loop (age progression), v sweeps the tube (tissue state). [Torus.Map]
// converts surface coordinates to embedding space, and [Torus.BuildMesh]
// produces a triangle mesh for the external renderer. Neither is used for
// anything stateful; both are pure functions of the two radii.
package manifold
