package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/bondiprof/internal/config"
	"github.com/san-kum/bondiprof/internal/cooling"
	"github.com/san-kum/bondiprof/internal/export"
	"github.com/san-kum/bondiprof/internal/profile"
	"github.com/san-kum/bondiprof/internal/storage"
	"github.com/san-kum/bondiprof/internal/tui"
	"github.com/san-kum/bondiprof/internal/units"
	"github.com/san-kum/bondiprof/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	mbhMsun   float64
	vbhKms    float64
	tAmb      float64
	rho0Mp    float64
	gamma     float64
	epsilonPc float64
	cooltable string
	noCooling bool

	rminPc  float64
	rmaxPc  float64
	samples int
	spacing string

	field   string
	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bondiprof",
		Short: "analytic equilibrium gas profiles around a black hole",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bondiprof", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [closure]",
		Short: "evaluate a profile and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	addScenarioFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "chart a saved profile field",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "rho", "field to plot (rho|pressure|temperature|entropy|phi)")

	timesCmd := &cobra.Command{
		Use:   "times [run_id]",
		Short: "chart cooling vs free-fall time for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTimes,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "overlay isothermal and polytropic density profiles",
		RunE:  compareClosure,
	}
	addScenarioFlags(compareCmd)

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "print the code-unit report",
		RunE:  unitsReport,
	}
	addScenarioFlags(unitsCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [closure]",
		Short: "list available presets for a closure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for closure: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's profile table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's profile as an SVG figure",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&field, "field", "rho", "field to draw")
	exportSVGCmd.Flags().StringVar(&outPath, "out", "profile.svg", "output file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive profile explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, "")
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addScenarioFlags(tuiCmd)

	rootCmd.AddCommand(runCmd, plotCmd, timesCmd, compareCmd, unitsCmd,
		presetsCmd, listCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset scenario")
	cmd.Flags().Float64Var(&mbhMsun, "mbh", config.DefaultMBHMsun, "black hole mass (Msun)")
	cmd.Flags().Float64Var(&vbhKms, "vbh", config.DefaultVBHKmS, "black hole velocity (km/s)")
	cmd.Flags().Float64Var(&tAmb, "tamb", config.DefaultTAmb, "ambient temperature (K)")
	cmd.Flags().Float64Var(&rho0Mp, "rho0", config.DefaultRho0Mp, "central density (mp/cm^3)")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "adiabatic index")
	cmd.Flags().Float64Var(&epsilonPc, "epsilon", 0, "softening length (pc, 0 = Bondi radius)")
	cmd.Flags().StringVar(&cooltable, "cooltable", "cooltable.dat", "cooling table path")
	cmd.Flags().BoolVar(&noCooling, "no-cooling", false, "skip cooling-time diagnostics")
	cmd.Flags().Float64Var(&rminPc, "rmin", 0.01, "grid inner radius (pc)")
	cmd.Flags().Float64Var(&rmaxPc, "rmax", 1e3, "grid outer radius (pc)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "grid samples")
	cmd.Flags().StringVar(&spacing, "spacing", "linear", "grid spacing (linear|log)")
}

// buildConfig merges preset, config file and explicit flags, in that order of
// increasing precedence.
func buildConfig(cmd *cobra.Command, closure string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if closure != "" {
		cfg.Closure = closure
	}

	if preset != "" {
		p := config.GetPreset(cfg.Closure, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(cfg.Closure))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if closure != "" {
			loaded.Closure = closure
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mbh") {
		cfg.MBHMsun = mbhMsun
	}
	if flags.Changed("vbh") {
		cfg.VBHKmS = vbhKms
	}
	if flags.Changed("tamb") {
		cfg.TAmb = tAmb
	}
	if flags.Changed("rho0") {
		cfg.Rho0Mp = rho0Mp
	}
	if flags.Changed("gamma") {
		cfg.Gamma = gamma
	}
	if flags.Changed("epsilon") {
		cfg.EpsilonPc = epsilonPc
	}
	if flags.Changed("cooltable") {
		cfg.Cooltable = cooltable
	}
	if flags.Changed("rmin") {
		cfg.Grid.RMinPc = rminPc
	}
	if flags.Changed("rmax") {
		cfg.Grid.RMaxPc = rmaxPc
	}
	if flags.Changed("samples") {
		cfg.Grid.Samples = samples
	}
	if flags.Changed("spacing") {
		cfg.Grid.Spacing = spacing
	}
	return cfg, nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	closure, err := cfg.NewClosure()
	if err != nil {
		return err
	}
	grid, err := cfg.RadiusGrid()
	if err != nil {
		return err
	}

	// the cooling table must load before any evaluation begins
	var lam *cooling.Interp
	if !noCooling {
		tab, err := cooling.Load(cfg.Cooltable)
		if err != nil {
			return err
		}
		lam = tab.Interp()
	}

	par := closure.Params()
	fmt.Printf("ambient sound speed: %.2e km/s\n", par.SoundSpeed()/units.KmS)
	fmt.Printf("Bondi radius: %.2e pc\n", par.BondiRadius()/units.Pc)
	fmt.Printf("virial temperature at %.3g kpc: %.2e K\n",
		par.RVir/units.Kpc, par.VirialTemperature())
	if cfg.Closure == "polytropic" {
		fmt.Printf("virial density: %.2e mp/cc\n", par.VirialDensity()/units.Mp)
		fmt.Printf("polytropic constant: %.2e\n", par.PolytropicK())
		fmt.Printf("density at r=0: %.2e mp/cc\n", par.CentralDensity()/units.Mp)
	}

	prof, err := profile.Evaluate(closure, grid)
	if err != nil {
		return err
	}

	var ts *profile.Timescales
	if lam != nil {
		ts, err = profile.EvalTimescales(closure, lam, grid)
		if err != nil {
			return err
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(par, prof, ts)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(prof.R))
	if n := prof.InvalidCount(); n > 0 {
		fmt.Println(viz.WarnStyle.Render(
			fmt.Sprintf("warning: %d samples flagged invalid", n)))
	}
	if ts != nil && ts.Extrapolated > 0 {
		fmt.Println(viz.WarnStyle.Render(fmt.Sprintf(
			"warning: %d cooling lookups extrapolated beyond the table", ts.Extrapolated)))
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, cols, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}

	col := field
	if col == "density" {
		col = "rho"
	}
	vals, ok := cols[col]
	if !ok {
		return fmt.Errorf("run has no field %q", col)
	}

	rs := cols["radius_pc"]
	fmt.Println(viz.HeaderStyle.Render(
		fmt.Sprintf("%s — %s closure", meta.ID, meta.Closure)))
	logY := col != "phi"
	fmt.Println(viz.Field(col, vals, logY, rs[0], rs[len(rs)-1]))
	fmt.Printf("Bondi radius %.3g pc, softening %.3g pc\n",
		meta.BondiRadiusPc, meta.EpsilonPc)
	return nil
}

func plotTimes(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, cols, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}
	cool, ok := cols["t_cool_yr"]
	if !ok {
		return fmt.Errorf("run %s was evaluated without a cooling table", args[0])
	}
	ff := cols["t_ff_yr"]
	rs := cols["radius_pc"]

	fmt.Println(viz.Overlay(
		fmt.Sprintf("log10 t_cool (blue) vs t_ff (red) [yr]   r = %.3g..%.3g pc",
			rs[0], rs[len(rs)-1]),
		true, cool, ff))
	return nil
}

func compareClosure(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, "isothermal")
	if err != nil {
		return err
	}
	grid, err := cfg.RadiusGrid()
	if err != nil {
		return err
	}

	iso, err := profile.NewIsothermal(cfg.Params())
	if err != nil {
		return err
	}
	isoProf, err := profile.Evaluate(iso, grid)
	if err != nil {
		return err
	}

	polyCfg := *cfg
	polyCfg.Closure = "polytropic"
	if polyCfg.EpsilonPc <= 0 {
		polyCfg.EpsilonPc = 10
	}
	poly, err := profile.NewPolytropic(polyCfg.Params())
	if err != nil {
		return err
	}
	polyProf, err := profile.Evaluate(poly, grid)
	if err != nil {
		return err
	}

	fmt.Println(viz.Overlay(
		fmt.Sprintf("log10 rho [g/cm^3]: isothermal (blue) vs polytropic (red)   r = %.3g..%.3g pc",
			cfg.Grid.RMinPc, cfg.Grid.RMaxPc),
		true, isoProf.Rho, polyProf.Rho))

	if n := polyProf.InvalidCount(); n > 0 {
		fmt.Println(viz.WarnStyle.Render(
			fmt.Sprintf("warning: %d polytropic samples flagged invalid", n)))
	}
	return nil
}

func unitsReport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, "")
	if err != nil {
		return err
	}
	par := cfg.Params()
	cu := cfg.CodeUnits()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "== code units ==")
	fmt.Fprintf(w, "length\t%.2e cm\t%.2e kpc\n", cu.Length, cu.Length/units.Kpc)
	fmt.Fprintf(w, "mass\t%.2e g\t%.2e Msun\n", cu.Mass(), cu.Mass()/units.Msun)
	fmt.Fprintf(w, "time\t%.2e s\t%.2e Myr\n", cu.Time(), cu.Time()/units.Myr)
	fmt.Fprintf(w, "density\t%.2e g/cm^3\t%.2e mp/cm^3\n", cu.Density, cu.Density/units.Mp)
	fmt.Fprintf(w, "velocity\t%.2e cm/s\t%.2e km/s\n", cu.Velocity, cu.Velocity/units.KmS)
	fmt.Fprintf(w, "temperature\t%.2e K\t\n", cu.Temperature(par.Mu))
	fmt.Fprintf(w, "pressure\t%.2e dyne/cm^2\t\n", cu.Pressure())

	fmt.Fprintln(w, "== constants in code units ==")
	fmt.Fprintf(w, "G\t%.2e\t\n", cu.GravConst())
	k := par.PolytropicK()
	fmt.Fprintf(w, "K\t%.2e\t\n", cu.PolytropicK(k, par.Gamma))

	fmt.Fprintln(w, "== parameters in code units ==")
	fmt.Fprintf(w, "virial radius\t%.2e cm\t%.2e L_code\n", par.RVir, units.ToCode(par.RVir, cu.Length))
	fmt.Fprintf(w, "virial density\t%.2e g/cm^3\t%.2e rho_code\n",
		par.VirialDensity(), units.ToCode(par.VirialDensity(), cu.Density))
	fmt.Fprintf(w, "virial temp\t%.2e K\t%.2e T_code\n",
		par.VirialTemperature(), units.ToCode(par.VirialTemperature(), cu.Temperature(par.Mu)))
	fmt.Fprintf(w, "black hole mass\t%.2e g\t%.2e M_code\n", par.MBH, units.ToCode(par.MBH, cu.Mass()))
	fmt.Fprintf(w, "black hole vel\t%.2e cm/s\t%.2e v_code\n", par.VBH, units.ToCode(par.VBH, cu.Velocity))
	fmt.Fprintf(w, "Bondi radius\t%.2e cm\t%.2e L_code\n",
		par.BondiRadius(), units.ToCode(par.BondiRadius(), cu.Length))
	fmt.Fprintf(w, "epsilon\t%.2e cm\t%.2e L_code\n", par.Epsilon, units.ToCode(par.Epsilon, cu.Length))
	fmt.Fprintf(w, "CGM density\t%.2e g/cm^3\t%.2e rho_code\n", par.RhoCGM, units.ToCode(par.RhoCGM, cu.Density))
	fmt.Fprintf(w, "CGM temp\t%.2e K\t%.2e T_code\n", par.TCGM, units.ToCode(par.TCGM, cu.Temperature(par.Mu)))

	csCGM := math.Sqrt(units.KB * par.TCGM / (par.Mu * units.Mp))
	fmt.Fprintf(w, "CGM sound speed\t%.2e cm/s\t%.2e v_code\n", csCGM, units.ToCode(csCGM, cu.Velocity))

	pCGM := par.RhoCGM * units.KB * par.TCGM / (par.Mu * units.Mp)
	fmt.Fprintf(w, "CGM pressure\t%.2e dyne/cm^2\t%.2e P_code\n", pCGM, units.ToCode(pCGM, cu.Pressure()))
	pVir := k * math.Pow(par.VirialDensity(), par.Gamma)
	fmt.Fprintf(w, "virial pressure\t%.2e dyne/cm^2\t%.2e P_code\n", pVir, units.ToCode(pVir, cu.Pressure()))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tCLOSURE\tSAMPLES\tINVALID\tBONDI [pc]\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3g\t%s\n",
			r.ID, r.Closure, r.Samples, r.Invalid, r.BondiRadiusPc,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath != "" {
		return st.ExportJSONFile(outPath, args[0])
	}
	return st.ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return st.ExportCSV(f, args[0])
	}
	return st.ExportCSV(os.Stdout, args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, cols, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}

	col := field
	if col == "density" {
		col = "rho"
	}
	vals, ok := cols[col]
	if !ok {
		return fmt.Errorf("run has no field %q", col)
	}

	curve := export.Curve{
		Label: col,
		X:     viz.Log10(cols["radius_pc"]),
		Y:     viz.Log10(vals),
		Color: "#1f77b4",
	}
	title := fmt.Sprintf("%s — log10 %s vs log10 r [pc]", meta.Closure, col)
	if err := export.WriteSVG(outPath, title, []export.Curve{curve}, 800, 600); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
