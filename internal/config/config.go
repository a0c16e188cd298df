package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blanchemarion/biological-relativity/internal/manifold"
	"github.com/blanchemarion/biological-relativity/internal/metrics"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
	"github.com/blanchemarion/biological-relativity/internal/uncertainty"
)

const (
	DefaultMajorRadius     = 3.0
	DefaultMinorRadius     = 1.15
	DefaultBaseSamples     = 30
	DefaultSamplesPerMonth = 10
	DefaultMinControl      = 5
	DefaultHistoricalWeeks = 3
	DefaultHorizon         = 12
	DefaultBandWidth       = 0.15
)

// Path generation strategies selectable via config or the --strategy
// flag. Spline is canonical; kinematic reproduces the older closed-form
// output using the profile's velocity and acceleration constants.
const (
	StrategySpline    = "spline"
	StrategyKinematic = "kinematic"
)

type Config struct {
	Profile     string            `yaml:"profile"`
	Strategy    string            `yaml:"strategy"`
	Horizon     int               `yaml:"horizon"`
	Surface     SurfaceConfig     `yaml:"surface"`
	Sampling    SamplingConfig    `yaml:"sampling"`
	Uncertainty UncertaintyConfig `yaml:"uncertainty"`
	Display     DisplayConfig     `yaml:"display"`
	Report      ReportConfig      `yaml:"report"`
}

type SurfaceConfig struct {
	MajorRadius float64 `yaml:"major_radius"`
	MinorRadius float64 `yaml:"minor_radius"`
}

type SamplingConfig struct {
	BaseSamples      int `yaml:"base_samples"`
	SamplesPerMonth  int `yaml:"samples_per_month"`
	MinControlPoints int `yaml:"min_control_points"`
	HistoricalWeeks  int `yaml:"historical_weeks"`
}

type UncertaintyConfig struct {
	HistoricalSigma  float64 `yaml:"historical_sigma"`
	StatusQuoBase    float64 `yaml:"status_quo_base"`
	StatusQuoRate    float64 `yaml:"status_quo_rate"`
	InterventionBase float64 `yaml:"intervention_base"`
	InterventionRate float64 `yaml:"intervention_rate"`
}

type DisplayConfig struct {
	VelocityScale     float64 `yaml:"velocity_scale"`
	AccelerationScale float64 `yaml:"acceleration_scale"`
	UncertaintyScale  float64 `yaml:"uncertainty_scale"`
	BandWidth         float64 `yaml:"band_width"`
}

type ReportConfig struct {
	Endpoint       string `yaml:"endpoint"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func DefaultConfig() *Config {
	return &Config{
		Profile:  "high_risk_liver",
		Strategy: StrategySpline,
		Horizon:  DefaultHorizon,
		Surface: SurfaceConfig{
			MajorRadius: DefaultMajorRadius,
			MinorRadius: DefaultMinorRadius,
		},
		Sampling: SamplingConfig{
			BaseSamples:      DefaultBaseSamples,
			SamplesPerMonth:  DefaultSamplesPerMonth,
			MinControlPoints: DefaultMinControl,
			HistoricalWeeks:  DefaultHistoricalWeeks,
		},
		Uncertainty: UncertaintyConfig{
			HistoricalSigma:  0.05,
			StatusQuoBase:    0.10,
			StatusQuoRate:    0.05,
			InterventionBase: 0.08,
			InterventionRate: 0.03,
		},
		Display: DisplayConfig{
			VelocityScale:     100,
			AccelerationScale: 1000,
			UncertaintyScale:  50,
			BandWidth:         DefaultBandWidth,
		},
		Report: ReportConfig{
			APIKeyEnv:      "BIOREL_REPORT_KEY",
			TimeoutSeconds: 10,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Torus() *manifold.Torus {
	return &manifold.Torus{Major: c.Surface.MajorRadius, Minor: c.Surface.MinorRadius}
}

func (c *Config) TrajectorySampling() trajectory.Sampling {
	return trajectory.Sampling{
		BaseSamples: c.Sampling.BaseSamples,
		PerMonth:    c.Sampling.SamplesPerMonth,
		MinControl:  c.Sampling.MinControlPoints,
	}
}

func (c *Config) StatusQuoUncertainty() uncertainty.Model {
	return uncertainty.Model{
		HistoricalSigma: c.Uncertainty.HistoricalSigma,
		Base:            c.Uncertainty.StatusQuoBase,
		Rate:            c.Uncertainty.StatusQuoRate,
	}
}

func (c *Config) InterventionUncertainty() uncertainty.Model {
	return uncertainty.Model{
		HistoricalSigma: c.Uncertainty.HistoricalSigma,
		Base:            c.Uncertainty.InterventionBase,
		Rate:            c.Uncertainty.InterventionRate,
	}
}

func (c *Config) Scales() metrics.Scales {
	return metrics.Scales{
		Velocity:     c.Display.VelocityScale,
		Acceleration: c.Display.AccelerationScale,
		Uncertainty:  c.Display.UncertaintyScale,
	}
}
