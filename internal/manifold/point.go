package manifold

import "math"

// Point3D is a position in manifold-embedding space. Values are never
// mutated after construction.
type Point3D struct {
	X, Y, Z float64
}

func (p Point3D) Add(o Point3D) Point3D   { return Point3D{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point3D) Sub(o Point3D) Point3D   { return Point3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3D) Scale(s float64) Point3D { return Point3D{p.X * s, p.Y * s, p.Z * s} }
func (p Point3D) Norm() float64           { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Point3D) Dist(o Point3D) float64  { return p.Sub(o).Norm() }
func (p Point3D) Dot(o Point3D) float64   { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }
