package trajectory

import (
	"errors"
	"testing"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

func newTestKinematic() *KinematicGenerator {
	return NewKinematicGenerator(manifold.NewTorus(), uncertainty.Default(), HighRiskProfile())
}

func TestKinematicDeterminism(t *testing.T) {
	g := newTestKinematic()
	p := Params{Start: testStart, Months: 12, Seed: 8, Calmness: 1.0}

	a, err := g.Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, _ := g.Generate(p)

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between runs", i)
		}
	}
}

func TestKinematicSampleCountAndTimes(t *testing.T) {
	g := newTestKinematic()
	path, err := g.Generate(Params{Start: testStart, Months: 6, Seed: 8, Calmness: 1.0})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if path.Len() != 30+10*6 {
		t.Errorf("expected %d samples, got %d", 30+10*6, path.Len())
	}
	if err := path.Validate(); err != nil {
		t.Errorf("invalid path: %v", err)
	}
}

func TestKinematicCalmnessSlowsDrift(t *testing.T) {
	g := newTestKinematic()
	g.Profile.Noise = 0 // isolate the deterministic drift

	fast, _ := g.Generate(Params{Start: testStart, Months: 12, Seed: 8, Calmness: 1.0})
	slow, _ := g.Generate(Params{Start: testStart, Months: 12, Seed: 8, Calmness: 2.0})

	if slow.MeanSegmentLength() >= fast.MeanSegmentLength() {
		t.Errorf("calmer kinematics %f should move less than baseline %f",
			slow.MeanSegmentLength(), fast.MeanSegmentLength())
	}
}

func TestKinematicInvalidHorizon(t *testing.T) {
	g := newTestKinematic()
	_, err := g.Generate(Params{Start: testStart, Months: -1, Seed: 8, Calmness: 1.0})
	if !errors.Is(err, ErrPathGeneration) {
		t.Errorf("expected ErrPathGeneration, got %v", err)
	}
}
