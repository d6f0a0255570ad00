package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by [ProcessorConfig.Validate] for unusable settings.
var ErrInvalidConfig = errors.New("core: invalid processor config")

// ProcessorConfig defines common frame processing settings.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults for narrowband speech: 16 kHz and
// 512-sample frames (32 ms).
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 16000,
		BlockSize:  512,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the frame length in samples.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config can drive a frame pipeline.
func (c ProcessorConfig) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be finite and > 0: %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be > 0: %d", ErrInvalidConfig, c.BlockSize)
	}
	return nil
}

// BinWidth returns the frequency spacing of adjacent transform bins in Hz.
func (c ProcessorConfig) BinWidth() float64 {
	if c.BlockSize <= 0 {
		return 0
	}
	return c.SampleRate / float64(c.BlockSize)
}
