package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/phasorsim/internal/analysis"
	"github.com/san-kum/phasorsim/internal/config"
	"github.com/san-kum/phasorsim/internal/export"
	"github.com/san-kum/phasorsim/internal/phasor"
	"github.com/san-kum/phasorsim/internal/storage"
	"github.com/san-kum/phasorsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	magnitude float64
	phase     float64
	beta      float64
	omega     float64
	maxTime   float64
	maxSpace  float64
	curTime   float64
	curLoc    float64

	frameRate int
	sampleIdx int
	color     string

	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "phasorsim",
		Short:         "sinusoidal phasor and travelling wave lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".phasorsim", "snapshot directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.Float64Var(&magnitude, "magnitude", config.DefaultMagnitude, "peak amplitude")
	pf.Float64Var(&phase, "phase", config.DefaultPhase, "phasor angle (rad)")
	pf.Float64Var(&beta, "beta", config.DefaultBeta, "phase constant (rad/unit length)")
	pf.Float64Var(&omega, "omega", config.DefaultOmega, "angular frequency (rad/unit time)")
	pf.Float64Var(&maxTime, "tmax", config.DefaultMaxTime, "time window")
	pf.Float64Var(&maxSpace, "zmax", config.DefaultMaxSpace, "space window")
	pf.Float64Var(&curTime, "t", 0, "time cursor")
	pf.Float64Var(&curLoc, "z", 0, "location cursor")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "plot v(z) at the time cursor and v(t) at the sample locations",
		RunE:  showSignal,
	}
	showCmd.Flags().Int("width", 80, "plot width")
	showCmd.Flags().Int("height", 10, "plot height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the signal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "frequency analysis of v(t) at a sample location",
		RunE:  spectrum,
	}
	spectrumCmd.Flags().IntVar(&sampleIdx, "sample", 0, "spatial sample (0-7)")
	spectrumCmd.Flags().Int("width", 80, "plot width")
	spectrumCmd.Flags().Int("height", 12, "plot height")

	saveCmd := &cobra.Command{
		Use:   "save [name]",
		Short: "save a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  saveSnapshot,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	exportCmd := &cobra.Command{
		Use:   "export [snapshot_id]",
		Short: "export a snapshot, or the current signal, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write v(z) at the time cursor as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringP("out", "o", "signal.svg", "output file")
	svgCmd.Flags().Int("width", 800, "image width")
	svgCmd.Flags().Int("height", 300, "image height")
	svgCmd.Flags().StringVar(&color, "color", "#00ff88", "stroke color")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMAG\tPHASE\tBETA\tOMEGA\tTMAX\tZMAX")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\n",
					name, p.Magnitude, p.Phase, p.Beta, p.Omega, p.MaxTime, p.MaxSpace)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(showCmd, liveCmd, spectrumCmd, saveCmd, listCmd, exportCmd, svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*float64{
		"magnitude": &cfg.Magnitude,
		"phase":     &cfg.Phase,
		"beta":      &cfg.Beta,
		"omega":     &cfg.Omega,
		"tmax":      &cfg.MaxTime,
		"zmax":      &cfg.MaxSpace,
		"t":         &cfg.CurrentTime,
		"z":         &cfg.CurrentLoc,
	} {
		if flags.Changed(name) {
			v, err := flags.GetFloat64(name)
			if err != nil {
				return nil, err
			}
			*dst = v
		}
	}
	return cfg, nil
}

func buildSignal(cmd *cobra.Command) (*phasor.Signal, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	sig, err := cfg.NewSignal()
	if err != nil {
		return nil, err
	}
	logger.Debug("signal built",
		zap.Float64("magnitude", sig.Magnitude()),
		zap.Float64("phase", sig.Phase()),
		zap.Float64("beta", sig.Beta()),
		zap.Float64("omega", sig.Omega()),
		zap.Float64("max_time", sig.MaxTime()),
		zap.Float64("max_space", sig.MaxSpace()),
		zap.Ints("sample_indices", sig.SpaceSampleIndices()),
	)
	return sig, nil
}

func showSignal(cmd *cobra.Command, args []string) error {
	sig, err := buildSignal(cmd)
	if err != nil {
		return err
	}
	width, height := size(cmd)

	fmt.Printf("magnitude %.3f  phase %.3f rad  beta %.3f  omega %.3f\n",
		sig.Magnitude(), sig.Phase(), sig.Beta(), sig.Omega())
	fmt.Printf("wavelength %s  period %s  phase velocity %s\n\n",
		formatLength(sig.Wavelength()), formatLength(sig.Period()), formatLength(sig.PhaseVelocity()))

	fmt.Println(viz.SpacePlot(sig, width, height))
	fmt.Println()
	fmt.Println(viz.TimePlot(sig, width, height))
	fmt.Println()
	fmt.Print(viz.PhasorDiagram(sig, height*2, height).String())

	z := sig.Space()[sig.CurrentLocIndex()]
	t := sig.Time()[sig.CurrentTimeIndex()]
	fmt.Printf("\nv(z=%.3f, t=%.3f) = %+.4f\n", z, t, sig.CurrentValue())
	return nil
}

// size reads the --width and --height flags of cmd.
func size(cmd *cobra.Command) (int, int) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	return w, h
}

func formatLength(v float64) string {
	if math.IsInf(v, 0) {
		return "inf"
	}
	return fmt.Sprintf("%.4g", v)
}

func runLive(cmd *cobra.Command, args []string) error {
	sig, err := buildSignal(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewLiveModel(sig, frameRate))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func spectrum(cmd *cobra.Command, args []string) error {
	sig, err := buildSignal(cmd)
	if err != nil {
		return err
	}
	indices := sig.SpaceSampleIndices()
	if sampleIdx < 0 || sampleIdx >= len(indices) {
		return fmt.Errorf("sample %d not in [0, %d)", sampleIdx, len(indices))
	}

	series, err := sig.TimeSeries(indices[sampleIdx])
	if err != nil {
		return err
	}
	tm := sig.Time()
	dt := tm[1] - tm[0]

	width, height := size(cmd)
	ps := analysis.PowerSpectrum(series)
	fmt.Println(viz.SpectrumPlot(ps, width, height))
	fmt.Println()

	f, err := analysis.DominantFrequency(series, dt)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.4f (omega ~ %.4f rad/unit time, set %.4f)\n", f, 2*math.Pi*f, sig.Omega())
	fmt.Printf("resolution: %.4f\n", 1/(float64(len(series))*dt))
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	sig, err := buildSignal(cmd)
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(args[0], sig)
	if err != nil {
		return err
	}
	logger.Info("snapshot saved", zap.String("id", id), zap.String("dir", dataDir))
	fmt.Println(id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tMAG\tPHASE\tBETA\tOMEGA\tT\tZ")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Magnitude, run.Phase, run.Beta, run.Omega,
			run.CurrentTime, run.CurrentLoc,
		)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	var (
		sig *phasor.Signal
		err error
	)
	if len(args) == 1 {
		meta, lerr := storage.New(dataDir).Load(args[0])
		if lerr != nil {
			return lerr
		}
		sig, err = meta.Signal()
	} else {
		sig, err = buildSignal(cmd)
	}
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		return export.WriteJSON(os.Stdout, sig)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteJSON(f, sig); err != nil {
		return err
	}
	logger.Info("json written", zap.String("path", outPath))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	sig, err := buildSignal(cmd)
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("out")
	width, height := size(cmd)
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteSVG(f, sig.Space(), sig.CurrentRow(), width, height, color); err != nil {
		logger.Error("svg export failed", zap.Error(err))
		return err
	}
	logger.Info("svg written", zap.String("path", outPath), zap.Int("points", phasor.GridSize))
	fmt.Printf("saved %s\n", outPath)
	return nil
}
