package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermdecay/internal/config"
	"github.com/san-kum/thermdecay/internal/cooling"
	"github.com/san-kum/thermdecay/internal/dialog"
	"github.com/san-kum/thermdecay/internal/export"
	"github.com/san-kum/thermdecay/internal/logger"
	"github.com/san-kum/thermdecay/internal/viz"
)

var (
	// Model inputs are read as text so that bad values are reported
	// by field name, the same way the workbench reports them.
	t0Flag     string
	tenvFlag   string
	kFlag      string
	tmaxFlag   string
	pointsFlag string

	preset     string
	paramsFile string
	csvOut     string
	chartOut   string
	noPlot     bool
	plain      bool

	scenarioFile string
)

// main is the entry point for the thermdecay CLI. Without a subcommand it
// opens the interactive workbench.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "thermdecay",
		Short:         "Newton's law of cooling workbench",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runWorkbench,
	}

	def := config.DefaultSettings()
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyLogLevel, def.LogLevel, "log level (debug, info, warn, error)")
	pf.String(config.KeyLogFile, def.LogFile, "log file for the workbench (default: no log)")
	pf.String(config.KeyTheme, def.Theme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.String(config.KeyExportDir, def.ExportDir, "directory for exports when no save dialog is available")
	pf.Int(config.KeyPlotWidth, def.PlotWidth, "terminal chart width")
	pf.Int(config.KeyPlotHeight, def.PlotHeight, "terminal chart height")
	pf.String(config.KeySettings, "", "settings file (default ./thermdecay.yaml)")
	rootCmd.Flags().StringVar(&scenarioFile, "params", "", "parameter file whose scenarios replace the presets")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a cooling curve, plot it and optionally export it",
		Args:  cobra.NoArgs,
		RunE:  runCurve,
	}
	runCmd.Flags().StringVar(&t0Flag, "t0", "", "initial temperature")
	runCmd.Flags().StringVar(&tenvFlag, "tenv", "", "ambient temperature")
	runCmd.Flags().StringVar(&kFlag, "k", "", "cooling constant")
	runCmd.Flags().StringVar(&tmaxFlag, "tmax", "", "max time")
	runCmd.Flags().StringVar(&pointsFlag, "points", "", "number of samples (at least 2)")
	runCmd.Flags().StringVar(&preset, "preset", "", "start from a preset ("+strings.Join(config.ListPresets(), ", ")+")")
	runCmd.Flags().StringVar(&paramsFile, "params", "", "parameter file path (yaml)")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write samples to this CSV file")
	runCmd.Flags().StringVar(&chartOut, "chart", "", "write a chart image (.png, .svg or .pdf)")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal chart")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list the preset scenarios",
		Args:  cobra.NoArgs,
		RunE:  listScenarios,
	}
	scenariosCmd.Flags().BoolVar(&plain, "plain", false, "plain table instead of rendered markdown")

	inspectCmd := &cobra.Command{
		Use:   "inspect [csv]",
		Short: "read an exported CSV back and plot it",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectExport,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a parameter file to edit and pass to run --params",
		Args:  cobra.ExactArgs(1),
		RunE:  writeParams,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "preset to start from")

	rootCmd.AddCommand(runCmd, scenariosCmd, inspectCmd, initCmd)
	return rootCmd
}

func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.LoadSettings(cmd.Root().PersistentFlags())
	if err != nil {
		return s, err
	}
	if _, ok := viz.GetTheme(s.Theme); !ok {
		return s, fmt.Errorf("unknown theme: %s (available: %v)", s.Theme, viz.ThemeNames())
	}
	return s, nil
}

func runWorkbench(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, so logs only go to a file
	log := logger.Nop()
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if log, err = logger.New(settings.LogLevel, f); err != nil {
			return err
		}
	}
	defer log.Sync()

	scenarios := config.Presets
	if scenarioFile != "" {
		cfg, err := config.Load(scenarioFile)
		if err != nil {
			return fmt.Errorf("failed to load params: %w", err)
		}
		scenarios = cfg.ScenarioList()
	}

	theme, _ := viz.GetTheme(settings.Theme)
	log.Infow("starting workbench", "theme", theme.Name, "scenarios", len(scenarios))
	return viz.RunWorkbench(viz.Options{
		Scenarios:  scenarios,
		Saver:      dialog.Default(settings.ExportDir, log),
		Log:        log,
		Theme:      theme,
		PlotWidth:  settings.PlotWidth,
		PlotHeight: settings.PlotHeight,
	})
}

// resolveParams applies, in order: the default scenario, --preset, --params
// and finally any model flag set on the command line.
func resolveParams(cmd *cobra.Command) (cooling.Params, string, error) {
	cfg := config.DefaultConfig()
	name := config.Presets[0].Name

	if preset != "" {
		sc, ok := config.Lookup(preset)
		if !ok {
			return cooling.Params{}, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Params, name = sc.Params, sc.Name
	}

	if paramsFile != "" {
		loaded, err := config.Load(paramsFile)
		if err != nil {
			return cooling.Params{}, "", fmt.Errorf("failed to load params: %w", err)
		}
		cfg.Params, name = loaded.Params, filepath.Base(paramsFile)
	}

	fields := cooling.FieldsOf(cfg.Params)
	overrides := []struct {
		flag string
		val  string
		dst  *string
	}{
		{"t0", t0Flag, &fields.T0},
		{"tenv", tenvFlag, &fields.Ambient},
		{"k", kFlag, &fields.K},
		{"tmax", tmaxFlag, &fields.TMax},
		{"points", pointsFlag, &fields.Points},
	}
	custom := false
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.val
			custom = true
		}
	}
	if custom {
		name = "custom"
	}

	p, err := cooling.ParseParams(fields)
	if err != nil {
		return cooling.Params{}, "", err
	}
	return p, name, nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	// logs go to stderr so stdout stays clean for the chart
	log, err := logger.New(settings.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Sync()

	p, name, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	curve, err := cooling.Compute(p)
	if err != nil {
		return err
	}
	log.Debugw("computed curve", "scenario", name, "points", len(curve.Samples))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", name)
	fmt.Fprintf(out, "model: %s\n\n", cooling.Formula(p))
	if err := printSummary(out, cooling.Summarize(curve)); err != nil {
		return err
	}

	if !noPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Plot(curve, viz.PlotOptions{
			Width:  settings.PlotWidth,
			Height: settings.PlotHeight,
			Color:  colorOutput(out),
		}))
	}

	if csvOut != "" {
		if err := export.SaveCSV(csvOut, curve.Samples); err != nil {
			return err
		}
		log.Infow("exported samples", "path", csvOut, "rows", len(curve.Samples))
	}
	if chartOut != "" {
		if err := export.SaveChart(chartOut, curve); err != nil {
			return err
		}
		log.Infow("exported chart", "path", chartOut)
	}
	return nil
}

func printSummary(out io.Writer, s cooling.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "direction\t%s\n", s.Direction)
	fmt.Fprintf(w, "initial\t%.4f\n", s.Initial)
	fmt.Fprintf(w, "final\t%.4f\n", s.Final)
	fmt.Fprintf(w, "change\t%+.4f\n", s.Change)
	if s.TimeConstant > 0 {
		fmt.Fprintf(w, "time constant\t%.4f\n", s.TimeConstant)
		fmt.Fprintf(w, "half-life\t%.4f\n", s.HalfLife)
		fmt.Fprintf(w, "gap closed\t%.1f%%\n", 100*s.Closed)
	}
	return w.Flush()
}

func listScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if plain {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tT0\tTENV\tK\tTMAX\tPOINTS")
		for _, s := range config.Presets {
			fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%d\n", s.Slug, s.Name, s.T0, s.Ambient, s.K, s.TMax, s.Points)
		}
		return w.Flush()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	rendered, err := r.Render(scenariosMarkdown())
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

func scenariosMarkdown() string {
	var b strings.Builder
	b.WriteString("# Scenarios\n\n")
	b.WriteString("| slug | name | T0 | T_env | k | t_max | points |\n")
	b.WriteString("| --- | --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, s := range config.Presets {
		fmt.Fprintf(&b, "| `%s` | %s | %g | %g | %g | %g | %d |\n", s.Slug, s.Name, s.T0, s.Ambient, s.K, s.TMax, s.Points)
	}
	b.WriteString("\nThe workbench cycles through them in this order with **ctrl+n**.\n")
	return b.String()
}

func inspectExport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	samples, err := export.LoadCSV(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	first, last := samples[0], samples[len(samples)-1]
	fmt.Fprintf(out, "file: %s\n", args[0])
	fmt.Fprintf(out, "samples: %d\n", len(samples))
	fmt.Fprintf(out, "first: t=%g T=%.4f\n", first.Time, first.Temp)
	fmt.Fprintf(out, "last: t=%g T=%.4f\n\n", last.Time, last.Temp)
	fmt.Fprintln(out, viz.PlotSamples(samples, viz.PlotOptions{
		Width:  settings.PlotWidth,
		Height: settings.PlotHeight,
		Color:  colorOutput(out),
	}))
	return nil
}

func writeParams(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		sc, ok := config.Lookup(preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Params = sc.Params
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

// colorOutput reports whether out is a terminal that takes ANSI colors.
func colorOutput(out io.Writer) bool {
	if out != io.Writer(os.Stdout) || termenv.EnvNoColor() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
