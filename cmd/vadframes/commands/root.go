package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vad/dsp/core"
	"github.com/cwbudde/algo-vad/dsp/transform"
	"github.com/cwbudde/algo-vad/stats/vad"
)

type options struct {
	sampleRate float64
	frameSize  int
	backend    string
	peak       string
	flatness   string
	format     string
	frequency  float64
	amplitude  float64
	seconds    float64
	seed       int64
	verbose    bool
}

var backends = map[string]transform.Planner{
	"algo-fft": transform.Default,
	"go-dsp":   transform.Reference,
}

// NewRootCommand builds the vadframes command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vadframes [signal ...]",
		Short: "Print per-frame energy, dominant frequency and spectral flatness of test signals",
		Long: `Generates synthetic signals, cuts them into fixed-length frames and prints
the voice activity features of every frame.

Signals: ` + strings.Join(signalNames, ", ") + `.
Without arguments every signal is analyzed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.sampleRate, "rate", 16000, "sample rate in Hz")
	f.IntVar(&opts.frameSize, "frame", 512, "frame length in samples")
	f.StringVar(&opts.backend, "backend", "algo-fft", "transform backend (algo-fft, go-dsp)")
	f.StringVar(&opts.peak, "peak", vad.PeakRealPart.String(), "dominant frequency comparison (real, magnitude)")
	f.StringVar(&opts.flatness, "flatness", vad.FlatnessSignedReal.String(), "flatness values (signed-real, abs-real, magnitude)")
	f.StringVar(&opts.format, "format", "text", "output format (text, yaml)")
	f.Float64Var(&opts.frequency, "freq", 440, "oscillator frequency in Hz")
	f.Float64Var(&opts.amplitude, "amplitude", 0.5, "signal amplitude")
	f.Float64Var(&opts.seconds, "seconds", 1, "duration of each signal in seconds")
	f.Int64Var(&opts.seed, "seed", 1, "noise seed")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(stdout, stderr io.Writer, opts *options, args []string) error {
	log := newLogger(stderr, opts.verbose)

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(opts.sampleRate),
		core.WithBlockSize(opts.frameSize),
	)
	if opts.sampleRate != cfg.SampleRate || opts.frameSize != cfg.BlockSize {
		return fmt.Errorf("invalid --rate %v or --frame %d", opts.sampleRate, opts.frameSize)
	}

	planner, ok := backends[opts.backend]
	if !ok {
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
	peak, err := vad.ParsePeakStrategy(opts.peak)
	if err != nil {
		return err
	}
	flatness, err := vad.ParseFlatnessPolicy(opts.flatness)
	if err != nil {
		return err
	}
	out, err := newWriter(opts.format, stdout)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = signalNames
	}

	analyzer, err := vad.NewAnalyzer(cfg, planner, vad.WithPeakStrategy(peak), vad.WithFlatnessPolicy(flatness))
	if err != nil {
		return err
	}
	log.Debug("analyzer ready",
		"backend", opts.backend,
		"rate", cfg.SampleRate,
		"frame", cfg.BlockSize,
		"peak", peak,
		"flatness", flatness)

	frames := 0
	for _, name := range names {
		data, err := synthesize(name, cfg, opts)
		if err != nil {
			return err
		}
		n, err := analyzeSignal(out, analyzer, name, data, cfg)
		if err != nil {
			return err
		}
		if n == 0 {
			log.Warn("signal shorter than one frame", "signal", name, "samples", len(data), "frame", cfg.BlockSize)
		}
		frames += n
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug("done", "signals", len(names), "frames", frames)
	return nil
}
