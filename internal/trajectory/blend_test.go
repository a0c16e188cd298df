package trajectory

import (
	"math"
	"testing"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
)

func TestBlendAlphaZeroIsIdentity(t *testing.T) {
	g := newTestGenerator()
	cand, _ := g.Generate(Params{Start: testStart, Months: 6, Seed: 11, Calmness: 1.0})
	ref, _ := g.Generate(Params{Start: SurfaceCoordinate{0, 0}, Months: 6, Seed: SeedHealthy, Calmness: 1.0})

	out, err := Blend(g.Surface, cand, ref, 0)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	for i := range out.Points {
		if out.Points[i].Dist(cand.Points[i]) > 1e-9 {
			t.Fatalf("alpha=0 changed point %d", i)
		}
	}
}

func TestBlendAlphaOneMatchesReference(t *testing.T) {
	g := newTestGenerator()
	cand, _ := g.Generate(Params{Start: testStart, Months: 6, Seed: 11, Calmness: 1.0})
	ref, _ := g.Generate(Params{Start: SurfaceCoordinate{0, 0}, Months: 6, Seed: SeedHealthy, Calmness: 1.0})

	out, err := Blend(g.Surface, cand, ref, 1)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	for i := range out.Points {
		if out.Points[i].Dist(ref.Points[i]) > 1e-9 {
			t.Fatalf("alpha=1 should reproduce the reference at point %d", i)
		}
	}
}

func TestBlendResamplesMismatchedLengths(t *testing.T) {
	g := newTestGenerator()
	cand, _ := g.Generate(Params{Start: testStart, Months: 12, Seed: 11, Calmness: 1.0})
	ref, _ := g.Generate(Params{Start: SurfaceCoordinate{0, 0}, Months: 3, Seed: SeedHealthy, Calmness: 1.0})

	out, err := Blend(g.Surface, cand, ref, 0.35)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	if out.Len() != cand.Len() {
		t.Errorf("expected %d samples, got %d", cand.Len(), out.Len())
	}
	if err := out.Validate(); err != nil {
		t.Errorf("invalid blended path: %v", err)
	}
}

func TestBlendCrossesSeam(t *testing.T) {
	g := newTestGenerator()
	torus := g.Surface

	// Constant paths sitting just on either side of the u seam.
	mk := func(u float64) *Path {
		n := 4
		p := &Path{
			Coords: make([]SurfaceCoordinate, n),
			Points: make([]manifold.Point3D, n),
			Radii:  make([]float64, n),
			Times:  make([]float64, n),
		}
		for i := 0; i < n; i++ {
			c := SurfaceCoordinate{U: u, V: 0.5}.Wrap()
			p.Coords[i] = c
			p.Points[i] = torus.Map(c.U, c.V)
			p.Radii[i] = 0.1
			p.Times[i] = float64(i)
		}
		return p
	}
	cand := mk(0.1)
	ref := mk(manifold.TwoPi - 0.1)

	out, err := Blend(torus, cand, ref, 0.5)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}

	// The halfway point along the short arc is the seam itself, not the
	// far side of the torus.
	want := torus.Map(0, 0.5)
	for i, p := range out.Points {
		if p.Dist(want) > 1e-9 {
			t.Fatalf("point %d blended the long way round the seam: %+v", i, p)
		}
	}
}

func TestBand(t *testing.T) {
	g := newTestGenerator()
	ref, _ := g.Generate(Params{Start: SurfaceCoordinate{0, 0}, Months: 6, Seed: SeedHealthy, Calmness: 1.0})

	upper, lower := Band(g.Surface, ref, 0.15)
	if upper.Len() != ref.Len() || lower.Len() != ref.Len() {
		t.Fatal("band edges must match the reference sample count")
	}

	for i := range ref.Coords {
		wantUp := manifold.Wrap(ref.Coords[i].V + 0.15)
		if math.Abs(upper.Coords[i].V-wantUp) > 1e-12 {
			t.Fatalf("upper edge v mismatch at %d", i)
		}
	}
}
