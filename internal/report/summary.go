// Package report renders a clinical summary of an engine result and
// optionally forwards it to an external narrative service. The service
// is an enrichment only; trajectory output never depends on it.
package report

import (
	"fmt"
	"strings"

	"github.com/blanchemarion/biological-relativity/internal/config"
	"github.com/blanchemarion/biological-relativity/internal/engine"
	"github.com/blanchemarion/biological-relativity/internal/metrics"
)

// Summarize renders a plain-text clinical summary of one recomputation.
// The text doubles as the request body for the narrative service.
func Summarize(profile *config.Profile, res *engine.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Case %s: %s, age %d, organ %s\n",
		profile.CaseLabel, profile.Name, profile.Age, profile.Organ)
	if len(profile.RiskFactors) > 0 {
		fmt.Fprintf(&b, "Risk factors: %s\n", strings.Join(profile.RiskFactors, ", "))
	}
	fmt.Fprintf(&b, "Projection horizon: %d months\n\n", res.Horizon)

	writeMetrics(&b, "Status quo", res.StatusQuoMetrics)
	writeMetrics(&b, "With interventions", res.InterventionMetrics)
	writeMetrics(&b, "Healthy reference", res.HealthyMetrics)

	fmt.Fprintf(&b, "\nProjected improvement vs status quo:\n")
	fmt.Fprintf(&b, "  aging velocity  %+.2f (%+.1f%%)\n", res.Delta.Velocity, res.Delta.VelocityPct)
	fmt.Fprintf(&b, "  acceleration    %+.2f (%+.1f%%)\n", res.Delta.Acceleration, res.Delta.AccelerationPct)
	fmt.Fprintf(&b, "  uncertainty     %+.2f (%+.1f%%)\n", res.Delta.Uncertainty, res.Delta.UncertaintyPct)

	fmt.Fprintf(&b, "\nDeviation from healthy reference: %.1f%%\n", res.Deviation)
	fmt.Fprintf(&b, "Biological time dilation: %.1f%%\n", res.TimeDilation)
	fmt.Fprintf(&b, "Estimated biological age gap: %.1f years\n", res.BiologicalAgeDelta)

	if active := res.Vector.Describe(); len(active) > 0 {
		fmt.Fprintf(&b, "\nActive interventions:\n")
		for _, line := range active {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	} else {
		fmt.Fprintf(&b, "\nNo active interventions.\n")
	}

	return b.String()
}

func writeMetrics(b *strings.Builder, label string, m metrics.Summary) {
	fmt.Fprintf(b, "%-20s velocity %.2f  acceleration %.2f  uncertainty %.2f\n",
		label+":", m.Velocity, m.Acceleration, m.Uncertainty)
}
