package intervene

import (
	"math"
	"testing"
)

func TestComposeIdentity(t *testing.T) {
	f := Compose(Vector{})

	if f.Velocity != 1.0 {
		t.Errorf("expected velocity factor exactly 1.0, got %v", f.Velocity)
	}
	if f.Acceleration != 1.0 {
		t.Errorf("expected acceleration factor exactly 1.0, got %v", f.Acceleration)
	}
	if f.Calmness() != 1.0 {
		t.Errorf("expected calmness exactly 1.0, got %v", f.Calmness())
	}
}

func TestComposeSingleIntervention(t *testing.T) {
	// Alcohol at full magnitude contributes its MaxEffect directly.
	d, ok := Lookup(Alcohol)
	if !ok {
		t.Fatal("alcohol not defined")
	}

	f := Compose(Vector{Alcohol: d.Max})
	if math.Abs(f.Velocity-d.MaxEffect) > 1e-12 {
		t.Errorf("expected velocity %f at max magnitude, got %f", d.MaxEffect, f.Velocity)
	}

	// Half magnitude interpolates linearly toward MaxEffect.
	f = Compose(Vector{Alcohol: d.Max / 2})
	want := 1.0 - 0.5*(1.0-d.MaxEffect)
	if math.Abs(f.Velocity-want) > 1e-12 {
		t.Errorf("expected velocity %f at half magnitude, got %f", want, f.Velocity)
	}
}

func TestComposeMonotonicStrengthening(t *testing.T) {
	combined := Compose(Vector{Alcohol: 80, Sleep: 2, Exercise: 20})
	single := Compose(Vector{Alcohol: 50})

	if combined.Velocity >= single.Velocity {
		t.Errorf("combined protocol %f should be strictly below alcohol-only %f",
			combined.Velocity, single.Velocity)
	}
	if combined.Velocity >= 1.0 {
		t.Errorf("active interventions must give velocity factor < 1, got %f", combined.Velocity)
	}
}

func TestComposeAccelerationSuperLinear(t *testing.T) {
	f := Compose(Vector{Alcohol: 100, Metabolic: 2000})

	want := math.Pow(f.Velocity, 1.5)
	if math.Abs(f.Acceleration-want) > 1e-12 {
		t.Errorf("expected acceleration %f, got %f", want, f.Acceleration)
	}
	if f.Acceleration >= f.Velocity {
		t.Error("for factors below 1, acceleration must drop faster than velocity")
	}
}

func TestComposeFloor(t *testing.T) {
	v := Vector{}
	for _, d := range Definitions {
		v[d.Kind] = d.Max
	}

	f := Compose(v)
	if f.Velocity < MinVelocityFactor {
		t.Errorf("velocity factor %f below floor %f", f.Velocity, MinVelocityFactor)
	}
	if f.Velocity <= 0 || f.Acceleration <= 0 {
		t.Error("factors must stay strictly positive")
	}
}

func TestComposeHarmfulSleep(t *testing.T) {
	// Cutting sleep is the one intervention that can run backwards; the
	// factor rises above 1 and the path gets noisier, not calmer.
	f := Compose(Vector{Sleep: -2})
	if f.Velocity <= 1.0 {
		t.Errorf("expected velocity factor above 1 for sleep loss, got %f", f.Velocity)
	}
	if f.Calmness() >= 1.0 {
		t.Errorf("expected calmness below 1 for sleep loss, got %f", f.Calmness())
	}
}

func TestClamped(t *testing.T) {
	v := Vector{
		Sleep:    10,   // above max 4
		Alcohol:  -5,   // below min 0
		Caffeine: 200,  // in range
		"bogus":  1234, // unknown kind
	}

	c := v.Clamped()
	if c[Sleep] != 4.0 {
		t.Errorf("expected sleep clamped to 4, got %f", c[Sleep])
	}
	if c[Alcohol] != 0 {
		t.Errorf("expected alcohol clamped to 0, got %f", c[Alcohol])
	}
	if c[Caffeine] != 200 {
		t.Errorf("expected caffeine unchanged, got %f", c[Caffeine])
	}
	if _, ok := c["bogus"]; ok {
		t.Error("unknown kinds must be dropped")
	}
}

func TestHashStable(t *testing.T) {
	a := Vector{Alcohol: 80, Sleep: 2}
	b := Vector{Sleep: 2, Alcohol: 80}

	if a.Hash() != b.Hash() {
		t.Error("identical vectors must hash identically regardless of map order")
	}

	c := Vector{Alcohol: 80.5, Sleep: 2}
	if a.Hash() == c.Hash() {
		t.Error("different magnitudes should hash differently")
	}
}

func TestIsZero(t *testing.T) {
	if !(Vector{}).IsZero() {
		t.Error("empty vector is zero")
	}
	if !(Vector{Alcohol: 0, Sleep: 0}).IsZero() {
		t.Error("explicit zeros are zero")
	}
	if (Vector{Caffeine: 50}).IsZero() {
		t.Error("active magnitude is not zero")
	}
}

func TestDescribe(t *testing.T) {
	v := Vector{Alcohol: 80, Sleep: 2}
	out := v.Describe()
	if len(out) != 2 {
		t.Fatalf("expected 2 active interventions, got %d: %v", len(out), out)
	}
}
