package intervene

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Kind names one of the fixed set of interventions.
type Kind string

const (
	Sleep       Kind = "sleep"
	Exercise    Kind = "exercise"
	Alcohol     Kind = "alcohol"
	Caffeine    Kind = "caffeine"
	Antioxidant Kind = "antioxidant"
	Metabolic   Kind = "metabolic"
)

// Definition declares the valid range of an intervention and its effect
// factor at maximum magnitude. MaxEffect is the factor the intervention
// contributes when fully applied; 1.0 would mean no effect at all.
type Definition struct {
	Kind      Kind
	Label     string
	Unit      string
	Min       float64
	Max       float64
	MaxEffect float64
	Step      float64
}

// Definitions is the fixed, ordered intervention set. Order matters for
// seed hashing, so it never changes at runtime.
var Definitions = []Definition{
	{Sleep, "Sleep Duration Change", "h/night", -2.0, 4.0, 0.76, 0.5},
	{Exercise, "VO2max Improvement", "%", 0, 50, 0.60, 5},
	{Alcohol, "Alcohol Reduction", "%", 0, 100, 0.70, 10},
	{Caffeine, "Caffeine Reduction", "mg/day", 0, 400, 0.88, 50},
	{Antioxidant, "Antioxidant Dose", "mg/day", 0, 2000, 0.80, 200},
	{Metabolic, "Metabolic Agent Dose", "mg/day", 0, 2000, 0.70, 500},
}

// Lookup returns the definition for a kind, or false if the kind is not
// part of the enumerated set.
func Lookup(k Kind) (Definition, bool) {
	for _, d := range Definitions {
		if d.Kind == k {
			return d, true
		}
	}
	return Definition{}, false
}

// Vector is a snapshot of intervention magnitudes. A nil or partial map
// is valid; missing kinds count as zero.
type Vector map[Kind]float64

// Clamped returns a copy with every magnitude forced into its declared
// range and unknown kinds dropped. Out-of-range values only arise from
// programmatic misuse, so they are clamped rather than rejected.
func (v Vector) Clamped() Vector {
	c := make(Vector, len(Definitions))
	for _, d := range Definitions {
		m := v[d.Kind]
		if m < d.Min {
			m = d.Min
		}
		if m > d.Max {
			m = d.Max
		}
		c[d.Kind] = m
	}
	return c
}

// IsZero reports whether no intervention is active.
func (v Vector) IsZero() bool {
	for _, m := range v {
		if m != 0 {
			return false
		}
	}
	return true
}

// Hash folds the clamped magnitudes into a stable 32-bit value. The fold
// order is the declaration order of Definitions and the magnitudes are
// formatted at fixed precision, so identical vectors always hash alike.
func (v Vector) Hash() uint32 {
	c := v.Clamped()
	h := fnv.New32a()
	for _, d := range Definitions {
		fmt.Fprintf(h, "%s=%.2f;", d.Kind, c[d.Kind])
	}
	return h.Sum32()
}

// Describe lists active interventions as human-readable strings, sorted
// by kind for stable output.
func (v Vector) Describe() []string {
	c := v.Clamped()
	out := make([]string, 0, len(c))
	for _, d := range Definitions {
		m := c[d.Kind]
		if m == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %+.1f %s", d.Label, m, d.Unit))
	}
	sort.Strings(out)
	return out
}

func (v Vector) String() string {
	return strings.Join(v.Describe(), ", ")
}
