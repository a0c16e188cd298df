package metrics

import (
	"github.com/blanchemarion/biological-relativity/internal/manifold"
)

// epsilon floors segment lengths before normalizing directions so a
// zero-length segment never divides by zero.
const epsilon = 1e-12

// Observer accumulates a scalar over a point stream. Observers are fed
// the projected portion of a path in order.
type Observer interface {
	Name() string
	Observe(p manifold.Point3D, radius, t float64)
	Value() float64
	Reset()
}

// SegmentLength averages the Euclidean distance between consecutive
// points: the aging velocity proxy.
type SegmentLength struct {
	prev    manifold.Point3D
	started bool
	total   float64
	samples int
}

func (s *SegmentLength) Name() string { return "velocity" }

func (s *SegmentLength) Observe(p manifold.Point3D, radius, t float64) {
	if s.started {
		s.total += p.Dist(s.prev)
		s.samples++
	}
	s.prev = p
	s.started = true
}

func (s *SegmentLength) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.total / float64(s.samples)
}

func (s *SegmentLength) Reset() {
	s.started = false
	s.total = 0
	s.samples = 0
}

// Curvature averages the change in consecutive segment directions: the
// aging acceleration proxy.
type Curvature struct {
	prev    manifold.Point3D
	prevDir manifold.Point3D
	points  int
	total   float64
	samples int
}

func (c *Curvature) Name() string { return "acceleration" }

func (c *Curvature) Observe(p manifold.Point3D, radius, t float64) {
	if c.points > 0 {
		delta := p.Sub(c.prev)
		norm := delta.Norm()
		if norm < epsilon {
			norm = epsilon
		}
		dir := delta.Scale(1 / norm)
		if c.points > 1 {
			c.total += dir.Sub(c.prevDir).Norm()
			c.samples++
		}
		c.prevDir = dir
	}
	c.prev = p
	c.points++
}

func (c *Curvature) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Curvature) Reset() {
	c.points = 0
	c.total = 0
	c.samples = 0
}

// MeanRadius averages the confidence radius: the uncertainty readout.
type MeanRadius struct {
	total   float64
	samples int
}

func (m *MeanRadius) Name() string { return "uncertainty" }

func (m *MeanRadius) Observe(p manifold.Point3D, radius, t float64) {
	m.total += radius
	m.samples++
}

func (m *MeanRadius) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanRadius) Reset() {
	m.total = 0
	m.samples = 0
}
