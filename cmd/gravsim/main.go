package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/particles"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/render"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/store"
	"github.com/san-kum/gravsim/internal/viz"
)

var (
	dataDir      string
	configFile   string
	preset       string
	inputFile    string
	outputDir    string
	dt           float64
	steps        int
	softening    float64
	plotInterval int
	numBodies    int
	seed         int64
	fps          int
	noRender     bool
	genOut       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "N-body gravitational simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "run data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a simulation, rendering density projections",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&outputDir, "output", config.DefaultOutput, "frame output directory")
	runCmd.Flags().IntVar(&plotInterval, "plot-interval", config.DefaultPlotInterval, "steps between rendered frames")
	runCmd.Flags().BoolVar(&noRender, "no-render", false, "skip density projection frames")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")

	viewCmd := &cobra.Command{
		Use:   "view [scenario]",
		Short: "run with the interactive graphical viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	addSimFlags(viewCmd)

	genCmd := &cobra.Command{
		Use:   "gen [scenario]",
		Short: "generate a particle file for a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  generateParticles,
	}
	genCmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies")
	genCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "particles.json", "output file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark integration throughput",
		RunE:  benchSteps,
	}
	benchCmd.Flags().IntVar(&numBodies, "bodies", 1024, "number of bodies")
	benchCmd.Flags().IntVar(&steps, "steps", 100, "steps to time")

	rootCmd.AddCommand(runCmd, liveCmd, viewCmd, genCmd, listCmd, exportCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inputFile, "input", "", "particle JSON file (overrides scenario)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Float64Var(&softening, "softening", config.DefaultSoftening, "softening length (m)")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies (generated scenarios)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
}

// resolveConfig merges preset, config file and flags, flags winning, in
// that order. args carries the optional scenario name.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Scenario = args[0]
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = inputFile
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("bodies") {
		cfg.Bodies = numBodies
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = outputDir
	}
	if f := cmd.Flags().Lookup("plot-interval"); f != nil && f.Changed {
		cfg.PlotInterval = plotInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveBodies(cfg *config.Config) ([]body.Body, error) {
	if cfg.Input != "" {
		bodies, err := particles.Load(cfg.Input)
		if err != nil {
			return nil, err
		}
		fmt.Printf("loaded %d bodies from %s\n", len(bodies), cfg.Input)
		return bodies, nil
	}
	return particles.Generate(cfg.Scenario, cfg.Bodies, cfg.Seed)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	bodies, err := resolveBodies(cfg)
	if err != nil {
		return err
	}

	s := sim.New(bodies)

	drift := metrics.NewEnergyDrift(cfg.Softening)
	s.AddMetric(drift)
	s.AddMetric(metrics.NewMomentumDrift())

	series := metrics.NewEnergySeries(cfg.Softening)
	s.AddObserver(series, cfg.PlotInterval)

	var proj *render.Projection
	if !noRender {
		proj, err = render.NewProjection(cfg.Output, "xy", "xz", "yz")
		if err != nil {
			return err
		}
		s.AddObserver(proj, cfg.PlotInterval)
	}

	progressEvery := cfg.Steps / 100
	if progressEvery < 1 {
		progressEvery = 1
	}
	s.AddObserver(newProgressMeter(cfg.Steps), progressEvery)

	fmt.Printf("simulating %d bodies for %d steps (dt=%.3e s)\n", s.Len(), cfg.Steps, cfg.Dt)
	start := time.Now()

	result, err := s.Run(context.Background(), sim.Config{
		Dt:        cfg.Dt,
		Softening: cfg.Softening,
		Steps:     cfg.Steps,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\ndone in %s, energy drift %.3e\n", time.Since(start).Truncate(time.Millisecond), result.EnergyDrift)

	if proj != nil {
		if err := proj.Err(); err != nil {
			return err
		}
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Scenario:    cfg.Scenario,
		Seed:        cfg.Seed,
		Dt:          cfg.Dt,
		Softening:   cfg.Softening,
		Steps:       result.StepsTaken,
		EnergyDrift: result.EnergyDrift,
		Metrics:     result.Metrics,
	}, s.Snapshot(), series.Steps, series.Values)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := resolveBodies(cfg)
	if err != nil {
		return err
	}
	return viz.Run(bodies, sim.Config{Dt: cfg.Dt, Softening: cfg.Softening, Steps: cfg.Steps}, fps)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := resolveBodies(cfg)
	if err != nil {
		return err
	}
	return gui.Run(bodies, sim.Config{Dt: cfg.Dt, Softening: cfg.Softening, Steps: cfg.Steps})
}

func generateParticles(cmd *cobra.Command, args []string) error {
	scenario := "cluster"
	if len(args) > 0 {
		scenario = args[0]
	}

	bodies, err := particles.Generate(scenario, numBodies, seed)
	if err != nil {
		return err
	}
	if err := particles.Save(genOut, bodies); err != nil {
		return err
	}
	fmt.Printf("wrote %d bodies to %s\n", len(bodies), genOut)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tBODIES\tSTEPS\tDT\tENERGY DRIFT\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2e\t%.3e\t%s\n",
			r.ID, r.Scenario, r.Bodies, r.Steps, r.Dt, r.EnergyDrift,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchSteps(cmd *cobra.Command, args []string) error {
	bodies := particles.Cluster(numBodies, 1)

	physics.Accelerations(bodies, config.DefaultSoftening)

	start := time.Now()
	for i := 0; i < steps; i++ {
		physics.Step(bodies, config.DefaultDt, config.DefaultSoftening)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d bodies, %d steps in %s (%.1f steps/s, %.2f Mpairs/s)\n",
		numBodies, steps, elapsed.Truncate(time.Millisecond),
		float64(steps)/elapsed.Seconds(),
		float64(steps)*float64(numBodies)*float64(numBodies)/elapsed.Seconds()/1e6)
	return nil
}
