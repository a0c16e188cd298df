package manifold

import (
	"fmt"
	"math"
)

// TwoPi is the period of both angular coordinates.
const TwoPi = 2 * math.Pi

// Torus is the fixed periodic surface all trajectories live on. Major is
// the distance from the center to the tube center, Minor the tube radius.
type Torus struct {
	Major float64
	Minor float64
}

func NewTorus() *Torus {
	return &Torus{
		Major: 3.0,
		Minor: 1.15,
	}
}

// Map converts angular coordinates (u, v) to a point in embedding space.
// Both coordinates are periodic over [0, 2pi); the mapping is pure.
func (t *Torus) Map(u, v float64) Point3D {
	ring := t.Major + t.Minor*math.Cos(v)
	return Point3D{
		X: ring * math.Cos(u),
		Y: ring * math.Sin(u),
		Z: t.Minor * math.Sin(v),
	}
}

// Normal returns the outward unit normal of the tube at (u, v).
func (t *Torus) Normal(u, v float64) Point3D {
	return Point3D{
		X: math.Cos(v) * math.Cos(u),
		Y: math.Cos(v) * math.Sin(u),
		Z: math.Sin(v),
	}
}

// Wrap reduces an angle into [0, 2pi).
func Wrap(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// Mesh is a discretized surface for the external renderer. Indices holds
// triangle vertex indices, two triangles per quad.
type Mesh struct {
	Positions []Point3D `json:"positions"`
	Normals   []Point3D `json:"normals"`
	Indices   []uint32  `json:"indices"`
}

func (m *Mesh) NumVertices() int  { return len(m.Positions) }
func (m *Mesh) NumTriangles() int { return len(m.Indices) / 3 }

// BuildMesh samples the surface at nu segments around the large loop and
// nv around the small loop. Both seams wrap, so no vertex is duplicated.
func (t *Torus) BuildMesh(nu, nv int) *Mesh {
	m := &Mesh{
		Positions: make([]Point3D, 0, nu*nv),
		Normals:   make([]Point3D, 0, nu*nv),
		Indices:   make([]uint32, 0, nu*nv*6),
	}

	for i := 0; i < nv; i++ {
		v := TwoPi * float64(i) / float64(nv)
		for j := 0; j < nu; j++ {
			u := TwoPi * float64(j) / float64(nu)
			m.Positions = append(m.Positions, t.Map(u, v))
			m.Normals = append(m.Normals, t.Normal(u, v))
		}
	}

	for i := 0; i < nv; i++ {
		for j := 0; j < nu; j++ {
			v0 := uint32(i*nu + j)
			v1 := uint32(i*nu + (j+1)%nu)
			v2 := uint32(((i+1)%nv)*nu + (j+1)%nu)
			v3 := uint32(((i+1)%nv)*nu + j)

			m.Indices = append(m.Indices, v0, v1, v2)
			m.Indices = append(m.Indices, v0, v2, v3)
		}
	}

	return m
}

func (t *Torus) GetParams() map[string]float64 {
	return map[string]float64{
		"major": t.Major,
		"minor": t.Minor,
	}
}

func (t *Torus) SetParam(name string, value float64) error {
	switch name {
	case "major":
		t.Major = value
	case "minor":
		t.Minor = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
