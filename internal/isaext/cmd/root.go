package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"isaext/internal/analysis"
	"isaext/internal/classify"
	"isaext/internal/codesrc"
	"isaext/internal/config"
	"isaext/internal/isaext/log"
	"isaext/internal/report"
	"isaext/internal/toolpipe"
	"isaext/internal/ui/colorize"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "isaext [file]",
		Short: "Report the x86 instruction set extensions a binary uses",
		Long: `isaext decodes the executable code of an ELF, PE or Mach-O binary and
reports the CPU instruction set extensions (SSE4.2, AVX2, BMI1, ...) its
instructions require.`,
		Example: `
# Features used by a binary
isaext /usr/bin/ffmpeg

# Counts and the first instruction of every feature, flagging what this CPU lacks
isaext -e --host-check ./a.out

# A raw 16-bit code blob
isaext --raw --bits 16 boot.bin
  `,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			log.Setup(debug)

			cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("could not start CPU profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], cfg)
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "Debug logging")

	f := root.Flags()
	f.String("config", "", "Config file (YAML or JSON)")
	f.String("backend", config.BackendNative, "Classification backend: native or pipe")
	f.Int("workers", 0, "Classification workers (0: one per CPU)")
	f.Int("chunk-size", 0, "Instructions per worker task (0: default)")
	f.String("gap-policy", "error", "Unclassified instructions: error or ignore")
	f.Int("bits", 0, "Execution mode override: 16, 32 or 64")
	f.Bool("raw", false, "Treat the file as raw code (requires --bits)")
	f.StringP("format", "o", report.FormatText, "Output format: text, json or markdown")
	f.BoolP("json", "j", false, "Shorthand for --format json")
	f.BoolP("explain", "e", false, "Show counts and the first instruction per feature")
	f.Bool("host-check", false, "Flag features the running CPU does not support")
	f.String("metrics-file", "", "Write Prometheus metrics to this file")
	f.String("disassembler", "", "Disassembler command of the pipe backend ({path} is substituted)")
	f.String("oracle", "", "Oracle command of the pipe backend ({bits} and {hex} are substituted)")
	f.String("cpuprofile", "", "Write CPU profile to file")

	root.AddCommand(newFeaturesCmd(), newSchemaCmd())
	return root
}

// loadConfig layers flags the user set over the config file and the
// environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	strs := map[string]*string{
		"backend":      &cfg.Backend,
		"gap-policy":   &cfg.GapPolicy,
		"format":       &cfg.Format,
		"metrics-file": &cfg.MetricsFile,
		"disassembler": &cfg.Disassembler,
		"oracle":       &cfg.Oracle,
	}
	for name, dst := range strs {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	ints := map[string]*int{
		"workers":    &cfg.Workers,
		"chunk-size": &cfg.ChunkSize,
		"bits":       &cfg.Bits,
	}
	for name, dst := range ints {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	bools := map[string]*bool{
		"raw":        &cfg.Raw,
		"explain":    &cfg.Explain,
		"host-check": &cfg.HostCheck,
	}
	for name, dst := range bools {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	if j, _ := f.GetBool("json"); j {
		cfg.Format = report.FormatJSON
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	slog.Debug("Loaded configuration", "config", path, "backend", cfg.Backend, "workers", cfg.Workers, "gap_policy", cfg.GapPolicy)
	return cfg, nil
}

func run(ctx context.Context, w io.Writer, path string, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	code, err := codesrc.Open(path, codesrc.Options{Bits: cfg.Bits, Raw: cfg.Raw})
	if err != nil {
		// The pipe backend reads the file itself; the code region only
		// supplies the mode and symbols.
		if cfg.Backend != config.BackendPipe || errors.Is(err, os.ErrNotExist) {
			return err
		}
		slog.Debug("Continuing without code region", "err", err)
		code = nil
	}
	if code != nil {
		defer code.Close()
	}

	classifier := classify.New(cfg.GapMode())
	backend := newBackend(cfg, classifier)
	res, err := backend.Features(ctx, analysis.Input{Path: path, Code: code})
	if err != nil {
		return err
	}
	if n := classifier.Gaps(); n > 0 {
		slog.Warn("Ignored unclassified instructions", "identities", n)
	}

	meta := report.Meta{Path: path, Backend: backend.Name()}
	if code != nil {
		meta.Container = string(code.Format)
		meta.Section = code.Section
		meta.Addr = code.Addr
	}
	color, width := terminal(w)
	opts := report.Options{
		Format:    cfg.Format,
		Explain:   cfg.Explain,
		HostCheck: cfg.HostCheck,
		Color:     color,
		Width:     width,
	}
	rep := report.Build(meta, res, opts)

	if cfg.MetricsFile != "" {
		if err := report.WriteMetrics(cfg.MetricsFile, rep); err != nil {
			return err
		}
	}
	return report.Write(w, rep, opts)
}

func newBackend(cfg config.Config, c *classify.Classifier) analysis.Backend {
	if cfg.Backend == config.BackendPipe {
		return &toolpipe.Pipe{
			Source:  &toolpipe.ExecSource{Command: cfg.Disassembler},
			Oracle:  &toolpipe.ExecOracle{Command: cfg.Oracle},
			Workers: cfg.Workers,
			Bits:    cfg.Bits,
		}
	}
	return &analysis.Native{Classifier: c, Workers: cfg.Workers, ChunkSize: cfg.ChunkSize}
}

// terminal reports whether w is a color terminal and its width.
func terminal(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) || colorize.Disabled() {
		return false, 0
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		width = 0
	}
	return true, width
}

func Execute() {
	rootCmd := NewRootCmd()

	// fang renders help and errors for terminals; plain cobra output is
	// easier to consume when piped.
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
