package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/solarsim/internal/catalog"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/export"
	"github.com/san-kum/solarsim/internal/gravity"
	"github.com/san-kum/solarsim/internal/integrators"
	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/storage"
	"github.com/san-kum/solarsim/internal/viz"
)

var (
	dataDir    string
	bodies     int
	steps      int
	dt         float64
	method     string
	orbitsFile string
	tsFile     string
	show       bool
	includeCog bool
	gConst     float64
	softening  float64
	configFile string
	preset     string
	// Live view
	frameRate     int
	stepsPerFrame int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solarsim",
		Short: "2D solar system N-body simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".solarsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and render orbit plots",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies (including the Sun)")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of integration steps")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [s]")
	runCmd.Flags().StringVar(&method, "integrator", config.DefaultIntegrator, "integration method (euler|rk4)")
	runCmd.Flags().StringVar(&orbitsFile, "orbits", config.DefaultOrbits, "output file for the orbit plot")
	runCmd.Flags().StringVar(&tsFile, "timeseries", config.DefaultTimeseries, "output file for the time series plot")
	runCmd.Flags().BoolVar(&show, "show", false, "print terminal previews of the plots")
	runCmd.Flags().BoolVar(&includeCog, "cog", false, "track and plot the center of gravity")
	runCmd.Flags().Float64Var(&gConst, "g", gravity.DefaultG, "gravitational constant")
	runCmd.Flags().Float64Var(&softening, "softening", gravity.DefaultSoftening, "softening length [m]")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print full run data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the planetary catalog",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s %d bodies, %d steps, dt=%.0fs, %s\n",
					name, cfg.Bodies, cfg.Steps, cfg.Dt, cfg.Integrator)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators on the same initial conditions",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().IntVar(&bodies, "bodies", 2, "number of bodies")
	compareCmd.Flags().IntVar(&steps, "steps", 8760, "number of integration steps")
	compareCmd.Flags().Float64Var(&dt, "dt", 3600, "timestep [s]")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the simulation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies")
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [s]")
	liveCmd.Flags().StringVar(&method, "integrator", config.DefaultIntegrator, "integration method (euler|rk4)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 4, "integration steps per frame")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, bodiesCmd, presetsCmd, compareCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags; flags win when set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Bodies = p.Bodies
		cfg.Steps = p.Steps
		cfg.Dt = p.Dt
		cfg.Integrator = p.Integrator
		cfg.TrackCentroid = p.TrackCentroid
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("bodies") {
		cfg.Bodies = bodies
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = method
	}
	if cmd.Flags().Changed("cog") {
		cfg.TrackCentroid = includeCog
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gConst
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("orbits") {
		cfg.Orbits = orbitsFile
	}
	if cmd.Flags().Changed("timeseries") {
		cfg.Timeseries = tsFile
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	names, masses, positions, velocities := catalog.Take(cfg.Bodies)
	field := cfg.Field()

	simulator, err := sim.New(field, cfg.Integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("simulating %d bodies, %d steps of %.0fs (%s)...\n",
		len(names), cfg.Steps, cfg.Dt, simulator.Method())
	start := time.Now()

	initialEnergy := field.Energy(positions, velocities, masses)

	runCfg := sim.Config{Steps: cfg.Steps, Dt: cfg.Dt, TrackCentroid: cfg.TrackCentroid}
	result, err := simulator.Run(context.Background(), positions, velocities, masses, runCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	energyDrift := 0.0
	if initialEnergy != 0 {
		finalEnergy := field.Energy(result.FinalPositions, result.FinalVelocities, masses)
		energyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	diagnostics := map[string]float64{
		"energy_drift":     energyDrift,
		"angular_momentum": gravity.AngularMomentum(result.FinalPositions, result.FinalVelocities, masses),
	}

	runID, err := st.Save(names, simulator.Method(), runCfg, result, diagnostics)
	if err != nil {
		return err
	}

	if err := export.WriteOrbits(cfg.Orbits, result.Trajectories, names, 900, 900); err != nil {
		return err
	}
	if err := export.WriteTimeseries(cfg.Timeseries, result.Times, result.Trajectories, names, result.Centroid, 900, 160); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("orbit plot: %s\n", cfg.Orbits)
	fmt.Printf("time series: %s\n", cfg.Timeseries)
	fmt.Printf("energy drift: %.3e\n", diagnostics["energy_drift"])

	if show {
		fmt.Println()
		printTerminalPlots(names, result)
	}

	return nil
}

func printTerminalPlots(names []string, result *sim.Result) {
	canvas := viz.PlotOrbits(result.Trajectories, 80, 24)
	fmt.Println(canvas.String())

	maxPanels := 6
	for i, traj := range result.Trajectories {
		if i >= maxPanels {
			break
		}
		data := make([]float64, len(traj))
		for j, p := range traj {
			data[j] = p.Y
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s y [m]", names[i])),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tSTEPS\tDT\tINTEG\tCOG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0fs\t%s\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Bodies),
			run.Steps,
			run.Dt,
			run.Integrator,
			run.TrackCentroid,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, trajectories, centroid, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}
	if len(trajectories) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %v\n\n", meta.Bodies)

	canvas := viz.PlotOrbits(trajectories, 80, 24)
	fmt.Println(canvas.String())

	maxPanels := 6
	for i, traj := range trajectories {
		if i >= maxPanels {
			break
		}
		data := make([]float64, len(traj))
		for j, p := range traj {
			data[j] = p.Y
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s y [m]", meta.Bodies[i])),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if centroid != nil {
		data := make([]float64, len(centroid))
		for j, p := range centroid {
			data[j] = p.Y
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("center of gravity y [m]"),
		)
		fmt.Println(graph)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, trajectories, centroid, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}

	data := struct {
		ID           string             `json:"id"`
		Bodies       []string           `json:"bodies"`
		Integrator   string             `json:"integrator"`
		Dt           float64            `json:"dt"`
		Times        []float64          `json:"times"`
		Trajectories [][]gravity.Vec2   `json:"trajectories"`
		Centroid     []gravity.Vec2     `json:"centroid,omitempty"`
		Diagnostics  map[string]float64 `json:"diagnostics,omitempty"`
	}{
		ID:           meta.ID,
		Bodies:       meta.Bodies,
		Integrator:   meta.Integrator,
		Dt:           meta.Dt,
		Times:        times,
		Trajectories: trajectories,
		Centroid:     centroid,
		Diagnostics:  meta.Diagnostics,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func listBodies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS [kg]\tORBIT RADIUS [m]\tORBIT SPEED [m/s]")
	for _, b := range catalog.Planets {
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.0f\n", b.Name, b.Mass, b.OrbitRadius, b.OrbitSpeed)
	}
	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	methods := args
	if len(methods) == 0 {
		methods = integrators.Names()
	}

	names, masses, positions, velocities := catalog.Take(bodies)
	field := gravity.NewField()

	// Radius drift of the outermost body against its initial orbit.
	outer := len(names) - 1
	initialRadius := positions[outer].Sub(positions[0]).Norm()
	initialEnergy := field.Energy(positions, velocities, masses)

	fmt.Printf("comparing on %d bodies, %d steps of %.0fs\n\n", len(names), steps, dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tTIME\tRADIUS DRIFT\tENERGY DRIFT")

	for _, m := range methods {
		simulator, err := sim.New(field, m)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := simulator.Run(context.Background(), positions, velocities, masses, sim.Config{Steps: steps, Dt: dt})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		finalRadius := result.FinalPositions[outer].Sub(result.FinalPositions[0]).Norm()
		radiusDrift := math.Abs(finalRadius-initialRadius) / initialRadius

		finalEnergy := field.Energy(result.FinalPositions, result.FinalVelocities, masses)
		energyDrift := math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)

		fmt.Fprintf(w, "%s\t%v\t%.3e\t%.3e\n", m, elapsed, radiusDrift, energyDrift)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	names, masses, positions, velocities := catalog.Take(bodies)

	stepper, err := integrators.New(method)
	if err != nil {
		return err
	}

	return viz.RunLive(gravity.NewField(), stepper, names, masses, positions, velocities, dt, stepsPerFrame, frameRate)
}
