package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/blanchemarion/biological-relativity/internal/config"
	"github.com/blanchemarion/biological-relativity/internal/engine"
	"github.com/blanchemarion/biological-relativity/internal/intervene"
	"github.com/blanchemarion/biological-relativity/internal/metrics"
	"github.com/blanchemarion/biological-relativity/internal/report"
	"github.com/blanchemarion/biological-relativity/internal/trajectory"
	"github.com/blanchemarion/biological-relativity/internal/tui"
	"github.com/blanchemarion/biological-relativity/internal/viz"
)

var (
	configFile string
	profile    string
	scenario   string
	horizon    int

	sleep       float64
	exercise    float64
	alcohol     float64
	caffeine    float64
	antioxidant float64
	metabolic   float64

	strategy string

	meshNu  int
	meshNv  int
	outFile string

	viewRotX  float64
	viewRotY  float64
	viewZoom  float64
	blendGoal float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "biorel",
		Short: "aging trajectory projection on a torus manifold",
		Run: func(cmd *cobra.Command, args []string) {
			if err := launchTUI(cmd); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "patient profile")
	rootCmd.PersistentFlags().IntVar(&horizon, "horizon", config.DefaultHorizon, "projection horizon in months (3, 6 or 12)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "project trajectories and print metrics",
		RunE:  runProjection,
	}
	addInterventionFlags(runCmd)
	runCmd.Flags().StringVar(&strategy, "strategy", config.StrategySpline,
		"path generation strategy (spline or kinematic)")

	meshCmd := &cobra.Command{
		Use:   "mesh",
		Short: "export the torus surface mesh as json",
		RunE:  exportMesh,
	}
	meshCmd.Flags().IntVar(&meshNu, "nu", 160, "segments around the major circle")
	meshCmd.Flags().IntVar(&meshNv, "nv", 70, "segments around the tube")
	meshCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list patient profiles",
		RunE:  listProfiles,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list intervention scenarios",
		RunE:  listScenarios,
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "print a clinical summary, narrated when the service is configured",
		RunE:  runReport,
	}
	addInterventionFlags(reportCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive slider panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchTUI(cmd)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the full trajectory bundle as json",
		RunE:  exportJSON,
	}
	addInterventionFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "render the torus and trajectories as a terminal wireframe",
		RunE:  renderView,
	}
	addInterventionFlags(viewCmd)
	viewCmd.Flags().Float64Var(&viewRotX, "rotx", 0.6, "camera rotation around x")
	viewCmd.Flags().Float64Var(&viewRotY, "roty", 0.8, "camera rotation around y")
	viewCmd.Flags().Float64Var(&viewZoom, "zoom", 1.0, "camera zoom")
	viewCmd.Flags().Float64Var(&blendGoal, "blend", 0, "also draw the intervention path blended toward healthy [0, 1]")

	compareCmd := &cobra.Command{
		Use:   "compare [scenario...]",
		Short: "project several scenarios side by side",
		RunE:  compareScenarios,
	}

	rootCmd.AddCommand(runCmd, meshCmd, profilesCmd, scenariosCmd, reportCmd,
		tuiCmd, exportJSONCmd, viewCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addInterventionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scenario, "scenario", "", "start from an intervention scenario")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "sleep change in hours [-2, 4]")
	cmd.Flags().Float64Var(&exercise, "exercise", 0, "exercise improvement in % [0, 50]")
	cmd.Flags().Float64Var(&alcohol, "alcohol", 0, "alcohol reduction in % [0, 100]")
	cmd.Flags().Float64Var(&caffeine, "caffeine", 0, "caffeine reduction in mg/day [0, 400]")
	cmd.Flags().Float64Var(&antioxidant, "antioxidant", 0, "antioxidant dose in mg/day [0, 2000]")
	cmd.Flags().Float64Var(&metabolic, "metabolic", 0, "metabolic agent dose in mg/day [0, 2000]")
}

// loadConfig resolves the effective config: file values override
// defaults, flags override the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = strategy
	}
	return cfg, nil
}

// buildVector resolves the effective intervention vector: scenario
// values first, individual flags override.
func buildVector(cmd *cobra.Command) (intervene.Vector, error) {
	vec := intervene.Vector{}
	if scenario != "" {
		s := config.GetScenario(scenario)
		if s == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListScenarios())
		}
		vec = s.Vector()
	}

	flagValues := map[intervene.Kind]struct {
		name  string
		value float64
	}{
		intervene.Sleep:       {"sleep", sleep},
		intervene.Exercise:    {"exercise", exercise},
		intervene.Alcohol:     {"alcohol", alcohol},
		intervene.Caffeine:    {"caffeine", caffeine},
		intervene.Antioxidant: {"antioxidant", antioxidant},
		intervene.Metabolic:   {"metabolic", metabolic},
	}
	for kind, f := range flagValues {
		if cmd.Flags().Changed(f.name) {
			vec[kind] = f.value
		}
	}
	return vec.Clamped(), nil
}

func compute(cmd *cobra.Command) (*engine.Engine, *engine.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	vec, err := buildVector(cmd)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	res, err := eng.Recompute(vec, cfg.Horizon)
	if err != nil {
		return nil, nil, err
	}
	return eng, res, nil
}

func runProjection(cmd *cobra.Command, args []string) error {
	eng, res, err := compute(cmd)
	if err != nil {
		return err
	}

	p := eng.Profile()
	fmt.Printf("%s  (%s, %s, age %d)\n", p.CaseLabel, p.Name, p.Organ, p.Age)
	fmt.Printf("horizon: %d months   seed: %d   velocity factor: %.3f\n\n",
		res.Horizon, res.Seed, res.Factors.Velocity)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tvelocity\tacceleration\tuncertainty")
	fmt.Fprintf(w, "status quo\t%.2f\t%.2f\t%.2f\n",
		res.StatusQuoMetrics.Velocity, res.StatusQuoMetrics.Acceleration, res.StatusQuoMetrics.Uncertainty)
	fmt.Fprintf(w, "intervention\t%.2f\t%.2f\t%.2f\n",
		res.InterventionMetrics.Velocity, res.InterventionMetrics.Acceleration, res.InterventionMetrics.Uncertainty)
	fmt.Fprintf(w, "healthy\t%.2f\t%.2f\t%.2f\n",
		res.HealthyMetrics.Velocity, res.HealthyMetrics.Acceleration, res.HealthyMetrics.Uncertainty)
	fmt.Fprintf(w, "delta\t%+.2f\t%+.2f\t%+.2f\n",
		res.Delta.Velocity, res.Delta.Acceleration, res.Delta.Uncertainty)
	w.Flush()

	fmt.Printf("\ntime dilation: %.1f%%   deviation from healthy: %.1f%%   bio age gap: %.1f years\n",
		res.TimeDilation, res.Deviation, res.BiologicalAgeDelta)

	if res.Intervention.Len() > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.Intervention.Radii,
			asciigraph.Height(6), asciigraph.Width(60),
			asciigraph.Caption("uncertainty radius over projection")))
	}

	return nil
}

func renderView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, res, err := compute(cmd)
	if err != nil {
		return err
	}

	torus := cfg.Torus()
	scene := viz.NewScene()
	scene.AddSurface(torus, 16, 8)
	scene.AddPath(res.Historical)
	scene.AddPath(res.StatusQuo)
	scene.AddPath(res.Intervention)
	scene.AddPath(res.Healthy)

	upper, lower := trajectory.Band(torus, res.Healthy, cfg.Display.BandWidth)
	scene.AddPath(upper)
	scene.AddPath(lower)

	if blendGoal > 0 {
		blended, err := trajectory.Blend(torus, res.Intervention, res.Healthy, blendGoal)
		if err != nil {
			return err
		}
		scene.AddPath(blended)
	}

	cam := viz.NewCamera()
	cam.RotX = viewRotX
	cam.RotY = viewRotY
	cam.Zoom = viewZoom

	canvas := viz.NewCanvas(100, 32)
	scene.Render(canvas, cam)
	fmt.Print(canvas.String())
	return nil
}

func compareScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = config.ListScenarios()
	}

	results, err := engine.Sweep(context.Background(), cfg, names, cfg.Horizon)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tVEL FACTOR\tVELOCITY\tΔ VEL %\tTIME DILATION\tBIO AGE GAP")
	for _, r := range results {
		res := r.Result
		fmt.Fprintf(w, "%s\t%.3f\t%.2f\t%+.1f\t%.0f%%\t%.1fy\n",
			r.Scenario, res.Factors.Velocity,
			res.InterventionMetrics.Velocity, res.Delta.VelocityPct,
			res.TimeDilation, res.BiologicalAgeDelta)
	}
	return w.Flush()
}

func exportMesh(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if meshNu < 3 || meshNv < 3 {
		return fmt.Errorf("mesh resolution too low: %dx%d", meshNu, meshNv)
	}
	mesh := cfg.Torus().BuildMesh(meshNu, meshNv)

	data, err := json.MarshalIndent(mesh, "", "  ")
	if err != nil {
		return err
	}
	return writeOut(data)
}

func listProfiles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCASE\tORGAN\tAGE\tRISK FACTORS")
	for _, name := range config.ListProfiles() {
		p := config.GetProfile(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			name, p.CaseLabel, p.Organ, p.Age, strings.Join(p.RiskFactors, ", "))
	}
	return w.Flush()
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIFFICULTY\tINTERVENTIONS\tDESCRIPTION")
	for _, name := range config.ListScenarios() {
		s := config.GetScenario(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			name, s.Difficulty, s.Vector().String(), s.Description)
	}
	return w.Flush()
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, res, err := compute(cmd)
	if err != nil {
		return err
	}

	summary := report.Summarize(eng.Profile(), res)

	client := report.NewClient(cfg.Report)
	narrated, err := client.Narrate(context.Background(), summary)
	if err != nil {
		if !errors.Is(err, report.ErrReportUnavailable) {
			return err
		}
		fmt.Println(summary)
		fmt.Fprintf(os.Stderr, "narrative service skipped: %v\n", err)
		return nil
	}

	fmt.Println(narrated)
	return nil
}

func launchTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	return tui.Run(eng, cfg.Horizon)
}

// bundle is the export-json wire shape.
type bundle struct {
	Profile      string             `json:"profile"`
	CaseLabel    string             `json:"case_label"`
	Horizon      int                `json:"horizon"`
	Seed         uint32             `json:"seed"`
	Vector       map[string]float64 `json:"vector"`
	Historical   pathJSON           `json:"historical"`
	StatusQuo    pathJSON           `json:"status_quo"`
	Intervention pathJSON           `json:"intervention"`
	Healthy      pathJSON           `json:"healthy"`
	Metrics      metricsJSON        `json:"metrics"`
}

type pathJSON struct {
	Points [][3]float64 `json:"points"`
	Radii  []float64    `json:"radii"`
	Times  []float64    `json:"times"`
}

type metricsJSON struct {
	StatusQuo          metrics.Summary `json:"status_quo"`
	Intervention       metrics.Summary `json:"intervention"`
	Healthy            metrics.Summary `json:"healthy"`
	Delta              metrics.Delta   `json:"delta"`
	TimeDilation       float64         `json:"time_dilation"`
	Deviation          float64         `json:"deviation"`
	BiologicalAgeDelta float64         `json:"biological_age_delta"`
}

func toPathJSON(p *trajectory.Path) pathJSON {
	out := pathJSON{
		Points: make([][3]float64, p.Len()),
		Radii:  p.Radii,
		Times:  p.Times,
	}
	for i, pt := range p.Points {
		out.Points[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}
	return out
}

func exportJSON(cmd *cobra.Command, args []string) error {
	eng, res, err := compute(cmd)
	if err != nil {
		return err
	}

	vec := make(map[string]float64, len(res.Vector))
	for k, v := range res.Vector {
		vec[string(k)] = v
	}

	out := bundle{
		Profile:      eng.Profile().Name,
		CaseLabel:    eng.Profile().CaseLabel,
		Horizon:      res.Horizon,
		Seed:         uint32(res.Seed),
		Vector:       vec,
		Historical:   toPathJSON(res.Historical),
		StatusQuo:    toPathJSON(res.StatusQuo),
		Intervention: toPathJSON(res.Intervention),
		Healthy:      toPathJSON(res.Healthy),
		Metrics: metricsJSON{
			StatusQuo:          res.StatusQuoMetrics,
			Intervention:       res.InterventionMetrics,
			Healthy:            res.HealthyMetrics,
			Delta:              res.Delta,
			TimeDilation:       res.TimeDilation,
			Deviation:          res.Deviation,
			BiologicalAgeDelta: res.BiologicalAgeDelta,
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return writeOut(data)
}

func writeOut(data []byte) error {
	if outFile == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outFile, append(data, '\n'), 0644)
}
