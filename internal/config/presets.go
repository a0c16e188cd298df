package config

import (
	"sort"

	"github.com/blanchemarion/biological-relativity/internal/intervene"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
)

// Profile describes a patient case: where on the manifold their
// measurements start and, for the legacy kinematic strategy, how fast
// they are aging.
type Profile struct {
	Name        string   `yaml:"name"`
	Organ       string   `yaml:"organ"`
	Age         int      `yaml:"age"`
	CaseLabel   string   `yaml:"case_label"`
	RiskFactors []string `yaml:"risk_factors"`
	StartU      float64  `yaml:"start_u"`
	StartV      float64  `yaml:"start_v"`
	VelU        float64  `yaml:"vel_u"`
	VelV        float64  `yaml:"vel_v"`
	AccU        float64  `yaml:"acc_u"`
	AccV        float64  `yaml:"acc_v"`
	Noise       float64  `yaml:"noise"`
	Description string   `yaml:"description"`
}

func (p *Profile) Start() trajectory.SurfaceCoordinate {
	return trajectory.SurfaceCoordinate{U: p.StartU, V: p.StartV}
}

func (p *Profile) RiskProfile() trajectory.RiskProfile {
	return trajectory.RiskProfile{
		Name: p.Name, VelU: p.VelU, VelV: p.VelV,
		AccU: p.AccU, AccV: p.AccV, Noise: p.Noise,
	}
}

var Profiles = map[string]*Profile{
	"high_risk_liver": {
		Name: "High Risk Liver Patient", Organ: "Liver", Age: 42,
		CaseLabel: "LVR-2024-047",
		RiskFactors: []string{
			"Chronic alcohol consumption",
			"Caffeine addiction",
			"Sedentary lifestyle",
			"Poor sleep",
		},
		StartU: 1.5, StartV: 0.8,
		VelU: 0.30, VelV: 0.25, AccU: 0.012, AccV: 0.010, Noise: 0.12,
		Description: "Significant liver stress with accelerated aging trajectory",
	},
	"moderate_cardiovascular": {
		Name: "Moderate Cardiovascular Risk", Organ: "Heart", Age: 55,
		CaseLabel: "CRD-2024-112",
		RiskFactors: []string{
			"Mild hypertension",
			"Sedentary lifestyle",
			"Processed diet",
		},
		StartU: 0.5, StartV: 0.8,
		VelU: 0.15, VelV: 0.12, AccU: 0.005, AccV: 0.004, Noise: 0.08,
		Description: "Middle-aged patient with moderate cardiovascular aging",
	},
	"young_healthy": {
		Name: "Young Healthy Individual", Organ: "Liver", Age: 28,
		CaseLabel: "LVR-2024-201",
		RiskFactors: []string{
			"Occasional social drinking",
		},
		StartU: 5.78, StartV: 0.0,
		VelU: 0.08, VelV: 0.05, AccU: 0.001, AccV: 0.001, Noise: 0.05,
		Description: "Normal aging trajectory in the healthy region",
	},
	"elderly_declining": {
		Name: "Elderly Patient - Declining", Organ: "Brain", Age: 72,
		CaseLabel: "BRN-2024-033",
		RiskFactors: []string{
			"Age-related cognitive decline",
			"Multiple comorbidities",
			"Limited physical activity",
		},
		StartU: 3.8, StartV: 4.2,
		VelU: 0.45, VelV: 0.52, AccU: 0.020, AccV: 0.025, Noise: 0.15,
		Description: "Significant aging acceleration",
	},
}

// Scenario is a named intervention protocol.
type Scenario struct {
	Name          string                     `yaml:"name"`
	Description   string                     `yaml:"description"`
	Interventions map[intervene.Kind]float64 `yaml:"interventions"`
	Difficulty    string                     `yaml:"difficulty"`
}

func (s *Scenario) Vector() intervene.Vector {
	v := make(intervene.Vector, len(s.Interventions))
	for k, m := range s.Interventions {
		v[k] = m
	}
	return v.Clamped()
}

var Scenarios = map[string]*Scenario{
	"minimal_lifestyle": {
		Name:        "Minimal Lifestyle Changes",
		Description: "Achievable changes for patients resistant to major interventions",
		Interventions: map[intervene.Kind]float64{
			intervene.Sleep:    1.0,
			intervene.Exercise: 10,
			intervene.Alcohol:  30,
			intervene.Caffeine: 100,
		},
		Difficulty: "low",
	},
	"moderate_comprehensive": {
		Name:        "Moderate Comprehensive Plan",
		Description: "Balanced approach combining lifestyle and supplementation",
		Interventions: map[intervene.Kind]float64{
			intervene.Sleep:       2.0,
			intervene.Exercise:    25,
			intervene.Alcohol:     70,
			intervene.Caffeine:    250,
			intervene.Antioxidant: 1200,
			intervene.Metabolic:   500,
		},
		Difficulty: "medium",
	},
	"intensive_medical": {
		Name:        "Intensive Medical Protocol",
		Description: "Full lifestyle overhaul with maximum pharmacological support",
		Interventions: map[intervene.Kind]float64{
			intervene.Sleep:       3.0,
			intervene.Exercise:    40,
			intervene.Alcohol:     100,
			intervene.Caffeine:    400,
			intervene.Antioxidant: 2000,
			intervene.Metabolic:   1500,
		},
		Difficulty: "high",
	},
}

func GetProfile(name string) *Profile {
	return Profiles[name]
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetScenario(name string) *Scenario {
	return Scenarios[name]
}

func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
