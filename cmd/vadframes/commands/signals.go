package commands

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vad/dsp/core"
	"github.com/cwbudde/algo-vad/dsp/signal"
	"github.com/cwbudde/algo-vad/stats/vad"
)

var signalNames = []string{"sine", "saw", "square", "simplex", "noise", "silence"}

func synthesize(name string, cfg core.ProcessorConfig, opts *options) ([]float32, error) {
	samples := int(math.Round(opts.seconds * cfg.SampleRate))
	g := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate), core.WithBlockSize(cfg.BlockSize)},
		signal.WithSeed(opts.seed),
	)

	switch name {
	case "sine":
		return g.Sine(opts.frequency, opts.amplitude, samples)
	case "saw":
		return g.Saw(opts.frequency, opts.amplitude, samples)
	case "square":
		return g.Square(opts.frequency, opts.amplitude, samples)
	case "simplex":
		return g.Simplex(opts.frequency, opts.amplitude, samples)
	case "noise":
		return g.WhiteNoise(opts.amplitude, samples)
	case "silence":
		return g.Silence(samples)
	default:
		return nil, fmt.Errorf("unknown signal %q", name)
	}
}

func analyzeSignal(out writer, a *vad.Analyzer, name string, data []float32, cfg core.ProcessorConfig) (int, error) {
	frames := signal.Frames(data, a.Size())
	for i, frame := range frames {
		rec := record{
			Signal:   name,
			Frame:    i,
			Time:     float64(i*cfg.BlockSize) / cfg.SampleRate,
			Features: a.Analyze(frame),
		}
		if err := out.Write(rec); err != nil {
			return i, fmt.Errorf("write output: %w", err)
		}
	}
	return len(frames), nil
}
