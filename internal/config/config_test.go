package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Horizon != 12 {
		t.Errorf("expected default horizon 12, got %d", cfg.Horizon)
	}
	if cfg.Surface.MajorRadius <= cfg.Surface.MinorRadius {
		t.Error("major radius must exceed minor radius")
	}
	if cfg.Sampling.BaseSamples <= 0 || cfg.Sampling.SamplesPerMonth <= 0 {
		t.Error("sampling counts must be positive")
	}
	if GetProfile(cfg.Profile) == nil {
		t.Errorf("default profile %q must exist", cfg.Profile)
	}
	if cfg.Strategy != StrategySpline {
		t.Errorf("expected default strategy %q, got %q", StrategySpline, cfg.Strategy)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biorel.yaml")

	cfg := DefaultConfig()
	cfg.Horizon = 6
	cfg.Display.VelocityScale = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Horizon != 6 {
		t.Errorf("expected horizon 6, got %d", loaded.Horizon)
	}
	if loaded.Display.VelocityScale != 42 {
		t.Errorf("expected velocity scale 42, got %f", loaded.Display.VelocityScale)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("horizon: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Horizon != 3 {
		t.Errorf("expected horizon 3, got %d", cfg.Horizon)
	}
	if cfg.Surface.MajorRadius != DefaultMajorRadius {
		t.Error("unspecified fields must keep defaults")
	}
}

func TestGetProfile(t *testing.T) {
	p := GetProfile("high_risk_liver")
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.CaseLabel == "" {
		t.Error("profile must carry a case label")
	}
	if GetProfile("nonexistent") != nil {
		t.Error("expected nil for unknown profile")
	}
}

func TestListProfilesSorted(t *testing.T) {
	names := ListProfiles()
	if len(names) == 0 {
		t.Fatal("expected profiles")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatal("profile names must be sorted")
		}
	}
}

func TestScenarioVectorClamped(t *testing.T) {
	for _, name := range ListScenarios() {
		s := GetScenario(name)
		v := s.Vector()
		if v.IsZero() {
			t.Errorf("scenario %s must have active interventions", name)
		}
	}
}

func TestConfigConversions(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Torus().Major != cfg.Surface.MajorRadius {
		t.Error("torus conversion lost the major radius")
	}
	if cfg.TrajectorySampling().SampleCount(12) != 30+10*12 {
		t.Error("sampling conversion wrong")
	}
	if cfg.StatusQuoUncertainty().RadiusAt(1) <= cfg.StatusQuoUncertainty().RadiusAt(0) {
		t.Error("status quo uncertainty must grow")
	}
	if cfg.InterventionUncertainty().Base >= cfg.StatusQuoUncertainty().Base {
		t.Error("intervention uncertainty must start below status quo")
	}
}
