package vad

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-vad/dsp/core"
)

// ErrInvalidOption is returned by [NewExtractor] for unusable settings.
var ErrInvalidOption = errors.New("vad: invalid option")

// PeakStrategy selects how bins are compared when searching the dominant frequency.
type PeakStrategy int

const (
	// PeakRealPart compares the real part of each bin.
	PeakRealPart PeakStrategy = iota
	// PeakMagnitude compares |X[k]|^2.
	PeakMagnitude
)

// FlatnessPolicy selects the per-bin values averaged by the flatness measure.
type FlatnessPolicy int

const (
	// FlatnessSignedReal averages the real parts as they are. A negative
	// product makes the flatness undefined.
	FlatnessSignedReal FlatnessPolicy = iota
	// FlatnessAbsReal averages |Re X[k]|.
	FlatnessAbsReal
	// FlatnessMagnitude averages |X[k]| (Wiener entropy).
	FlatnessMagnitude
)

var peakNames = map[string]PeakStrategy{
	"real":      PeakRealPart,
	"magnitude": PeakMagnitude,
}

var flatnessNames = map[string]FlatnessPolicy{
	"signed-real": FlatnessSignedReal,
	"abs-real":    FlatnessAbsReal,
	"magnitude":   FlatnessMagnitude,
}

func (s PeakStrategy) String() string {
	for name, v := range peakNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("PeakStrategy(%d)", int(s))
}

func (p FlatnessPolicy) String() string {
	for name, v := range flatnessNames {
		if v == p {
			return name
		}
	}
	return fmt.Sprintf("FlatnessPolicy(%d)", int(p))
}

// ParsePeakStrategy resolves a strategy name ("real", "magnitude").
func ParsePeakStrategy(name string) (PeakStrategy, error) {
	s, ok := peakNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown peak strategy %q (want %s)", ErrInvalidOption, name, names(peakNames))
	}
	return s, nil
}

// ParseFlatnessPolicy resolves a policy name ("signed-real", "abs-real", "magnitude").
func ParseFlatnessPolicy(name string) (FlatnessPolicy, error) {
	p, ok := flatnessNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown flatness policy %q (want %s)", ErrInvalidOption, name, names(flatnessNames))
	}
	return p, nil
}

func names[T any](m map[string]T) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

// Config controls feature extraction.
type Config struct {
	SampleRate float64
	Peak       PeakStrategy
	Flatness   FlatnessPolicy
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the extraction defaults: the sample rate of
// [core.DefaultProcessorConfig] and real-part comparisons.
func DefaultConfig() Config {
	return Config{
		SampleRate: core.DefaultProcessorConfig().SampleRate,
		Peak:       PeakRealPart,
		Flatness:   FlatnessSignedReal,
	}
}

// WithSampleRate sets the sample rate used to convert bins to Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(c *Config) { c.SampleRate = sampleRate }
}

// WithProcessorConfig takes the sample rate from a processor config.
func WithProcessorConfig(cfg core.ProcessorConfig) Option {
	return WithSampleRate(cfg.SampleRate)
}

// WithPeakStrategy sets the dominant-frequency comparison.
func WithPeakStrategy(s PeakStrategy) Option {
	return func(c *Config) { c.Peak = s }
}

// WithFlatnessPolicy sets the values averaged by the flatness measure.
func WithFlatnessPolicy(p FlatnessPolicy) Option {
	return func(c *Config) { c.Flatness = p }
}

func (c Config) validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be finite and > 0: %v", ErrInvalidOption, c.SampleRate)
	}
	if c.Peak != PeakRealPart && c.Peak != PeakMagnitude {
		return fmt.Errorf("%w: %v", ErrInvalidOption, c.Peak)
	}
	switch c.Flatness {
	case FlatnessSignedReal, FlatnessAbsReal, FlatnessMagnitude:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidOption, c.Flatness)
	}
	return nil
}

// Extractor reduces a frame and its spectrum to [FrameFeatures].
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an Extractor from the defaults and opts.
func NewExtractor(opts ...Option) (*Extractor, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Extractor{cfg: cfg}, nil
}

// Config returns the extraction settings.
func (e *Extractor) Config() Config { return e.cfg }

// Extract computes the features of frame given its N transform bins.
//
// It panics if frame is empty or len(bins) != len(frame). Neither slice is
// modified; equal inputs always produce identical results.
func (e *Extractor) Extract(frame []float32, bins []complex64) FrameFeatures {
	n := len(frame)
	if n == 0 {
		panic("vad: empty frame")
	}
	if len(bins) != n {
		panic(fmt.Sprintf("vad: %d bins for a %d-sample frame", len(bins), n))
	}

	re, im, vals, buf := getScratch(n)
	defer putScratch(buf)
	splitBins(re, im, bins)

	peak := peakBin(re, im, vals, e.cfg.Peak)

	return FrameFeatures{
		Energy:            ShortTermEnergy(frame),
		DominantFrequency: BinToFrequency(peak, n, e.cfg.SampleRate),
		SpectralFlatness:  flatness(spectralValues(re, im, vals, e.cfg.Flatness)),
	}
}
