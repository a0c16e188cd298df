package viz

import (
	"strings"
	"testing"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

func TestCanvasSetWithinBounds(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	c.Set(19, 19)
	c.Set(-1, 3)
	c.Set(3, 100)

	out := c.String()
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 5 {
		t.Fatal("expected 5 rows")
	}
	if !strings.ContainsRune(out, 0x2801) {
		t.Error("top-left dot not set")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Line(0, 0, c.DotWidth()-1, c.DotHeight()-1)

	set := 0
	for _, r := range c.String() {
		if r > 0x2800 && r <= 0x28FF {
			set++
		}
	}
	if set < 10 {
		t.Errorf("diagonal should light up many cells, got %d", set)
	}
}

func TestSceneRenderTorus(t *testing.T) {
	torus := manifold.NewTorus()
	scene := NewScene()
	scene.AddSurface(torus, 12, 6)

	gen := trajectory.NewSplineGenerator(torus, uncertainty.Default())
	path, err := gen.Generate(trajectory.Params{
		Start: trajectory.SurfaceCoordinate{U: 1.5, V: 0.8}, Months: 6,
		Seed: trajectory.SeedStatusQuo, Calmness: 1.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	scene.AddPath(path)

	c := NewCanvas(60, 20)
	scene.Render(c, NewCamera())

	blank := NewCanvas(60, 20).String()
	if c.String() == blank {
		t.Error("render produced an empty canvas")
	}
}

func TestSceneClipsEdgesBehindCamera(t *testing.T) {
	// An identity-rotation camera puts anything with z past Distance
	// behind the lens. An edge with one such endpoint must be dropped,
	// not drawn toward the projection origin.
	cam := &Camera{RotX: 0, RotY: 0, Distance: 12, Zoom: 1.0}

	scene := NewScene()
	scene.addEdge(manifold.Point3D{X: 1, Y: 1, Z: 20}, manifold.Point3D{X: 1, Y: 1, Z: 0})

	c := NewCanvas(40, 12)
	scene.Render(c, cam)

	if c.String() != NewCanvas(40, 12).String() {
		t.Error("edge with an endpoint behind the camera must be clipped")
	}
}
