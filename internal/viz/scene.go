package viz

import (
	"math"
	"sort"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
)

// Camera projects world coordinates onto the dot grid with a simple
// perspective divide after rotation around the x and y axes.
type Camera struct {
	RotX, RotY float64
	Distance   float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{RotX: 0.6, RotY: 0.8, Distance: 12, Zoom: 1.0}
}

func (c *Camera) rotate(p manifold.Point3D) manifold.Point3D {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// project returns dot coordinates, depth, and whether the point sits in
// front of the camera. Points outside the dot grid still project; the
// canvas clips them dot by dot.
func (c *Camera) project(p manifold.Point3D, dw, dh int) (int, int, float64, bool) {
	r := c.rotate(p).Scale(c.Zoom)
	if r.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - r.Z)
	unit := float64(min(dw, dh)) / 10.0
	x := int(r.X*scale*unit) + dw/2
	y := int(-r.Y*scale*unit) + dh/2
	return x, y, r.Z, true
}

type edge struct {
	a, b  manifold.Point3D
	depth float64
}

// Scene collects wireframe edges before rendering back to front.
type Scene struct {
	edges []edge
}

func NewScene() *Scene { return &Scene{} }

// AddSurface traces coordinate lines over the torus at the given grid
// resolution. A sparse grid keeps the surface legible under the paths.
func (s *Scene) AddSurface(t *manifold.Torus, nu, nv int) {
	for i := 0; i < nu; i++ {
		u := float64(i) / float64(nu) * manifold.TwoPi
		un := float64(i+1) / float64(nu) * manifold.TwoPi
		for j := 0; j < nv; j++ {
			v := float64(j) / float64(nv) * manifold.TwoPi
			vn := float64(j+1) / float64(nv) * manifold.TwoPi
			s.addEdge(t.Map(u, v), t.Map(un, v))
			s.addEdge(t.Map(u, v), t.Map(u, vn))
		}
	}
}

// AddPath traces a trajectory as connected segments.
func (s *Scene) AddPath(p *trajectory.Path) {
	for i := 1; i < p.Len(); i++ {
		s.addEdge(p.Points[i-1], p.Points[i])
	}
}

func (s *Scene) addEdge(a, b manifold.Point3D) {
	s.edges = append(s.edges, edge{a: a, b: b})
}

// Render projects every edge and draws back to front.
func (s *Scene) Render(c *Canvas, cam *Camera) {
	dw, dh := c.DotWidth(), c.DotHeight()

	type projected struct {
		x0, y0, x1, y1 int
		depth          float64
	}
	lines := make([]projected, 0, len(s.edges))

	// An edge with an endpoint behind the camera has no meaningful
	// projection for that end, so it is clipped whole.
	for _, e := range s.edges {
		x0, y0, d0, v0 := cam.project(e.a, dw, dh)
		x1, y1, d1, v1 := cam.project(e.b, dw, dh)
		if v0 && v1 {
			lines = append(lines, projected{x0, y0, x1, y1, (d0 + d1) / 2})
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].depth < lines[j].depth })
	for _, l := range lines {
		c.Line(l.x0, l.y0, l.x1, l.y1)
	}
}
