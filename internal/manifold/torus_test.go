package manifold

import (
	"math"
	"testing"
)

func TestMapPeriodicContinuity(t *testing.T) {
	torus := NewTorus()

	samples := []struct{ u, v float64 }{
		{0, 0},
		{1.5, 0.8},
		{math.Pi, math.Pi / 2},
		{5.9, 3.1},
		{0.01, 6.27},
	}

	for _, s := range samples {
		base := torus.Map(s.u, s.v)
		wrapU := torus.Map(s.u+TwoPi, s.v)
		wrapV := torus.Map(s.u, s.v+TwoPi)

		if base.Dist(wrapU) > 1e-9 {
			t.Errorf("u+2pi not continuous at (%.2f, %.2f): dist %g", s.u, s.v, base.Dist(wrapU))
		}
		if base.Dist(wrapV) > 1e-9 {
			t.Errorf("v+2pi not continuous at (%.2f, %.2f): dist %g", s.u, s.v, base.Dist(wrapV))
		}
	}
}

func TestMapKnownPoints(t *testing.T) {
	torus := NewTorus()

	// u=0, v=0 sits on the outer equator.
	p := torus.Map(0, 0)
	if math.Abs(p.X-(torus.Major+torus.Minor)) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("unexpected point at origin: %+v", p)
	}

	// v=pi/2 is the top of the tube.
	p = torus.Map(0, math.Pi/2)
	if math.Abs(p.Z-torus.Minor) > 1e-12 {
		t.Errorf("expected z=%f at tube top, got %f", torus.Minor, p.Z)
	}
}

func TestMapStaysOnSurface(t *testing.T) {
	torus := NewTorus()

	for i := 0; i < 50; i++ {
		u := TwoPi * float64(i) / 50
		v := TwoPi * float64(i*7%50) / 50
		p := torus.Map(u, v)

		// Distance from the tube center circle must equal the minor radius.
		ringDist := math.Hypot(math.Hypot(p.X, p.Y)-torus.Major, p.Z)
		if math.Abs(ringDist-torus.Minor) > 1e-9 {
			t.Errorf("point (%.2f, %.2f) off surface: tube distance %f", u, v, ringDist)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{TwoPi + 1, 1},
		{-1, TwoPi - 1},
		{-TwoPi, 0},
	}

	for _, tt := range tests {
		if got := Wrap(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestBuildMesh(t *testing.T) {
	torus := NewTorus()
	mesh := torus.BuildMesh(16, 8)

	if mesh.NumVertices() != 16*8 {
		t.Errorf("expected %d vertices, got %d", 16*8, mesh.NumVertices())
	}
	if mesh.NumTriangles() != 16*8*2 {
		t.Errorf("expected %d triangles, got %d", 16*8*2, mesh.NumTriangles())
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		t.Error("normal count must match vertex count")
	}

	for _, idx := range mesh.Indices {
		if int(idx) >= mesh.NumVertices() {
			t.Fatalf("index %d out of range", idx)
		}
	}

	for i, n := range mesh.Normals {
		if math.Abs(n.Norm()-1.0) > 1e-9 {
			t.Errorf("normal %d not unit length: %f", i, n.Norm())
		}
	}
}

func TestSetParam(t *testing.T) {
	torus := NewTorus()

	if err := torus.SetParam("major", 5.0); err != nil {
		t.Fatalf("set major: %v", err)
	}
	if torus.Major != 5.0 {
		t.Errorf("expected major 5.0, got %f", torus.Major)
	}

	if err := torus.SetParam("bogus", 1.0); err == nil {
		t.Error("expected error for unknown param")
	}
}
