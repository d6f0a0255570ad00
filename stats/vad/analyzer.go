package vad

import (
	"fmt"

	"github.com/cwbudde/algo-vad/dsp/core"
	"github.com/cwbudde/algo-vad/dsp/transform"
)

// Analyzer runs the transform and the extractor on successive frames of a
// fixed length, reusing one bin buffer.
//
// An Analyzer is not safe for concurrent use. [Analyzer.Clone] returns a copy
// that shares the transform and extractor but owns its buffer.
type Analyzer struct {
	tr   transform.Transform
	ex   *Extractor
	bins []complex64
}

// NewAnalyzer plans a transform of cfg.BlockSize with planner (the algo-fft
// backend if nil) and builds an extractor at cfg.SampleRate.
func NewAnalyzer(cfg core.ProcessorConfig, planner transform.Planner, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if planner == nil {
		planner = transform.Default
	}

	tr, err := planner.Plan(cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("vad: plan %d-point transform: %w", cfg.BlockSize, err)
	}

	ex, err := NewExtractor(append([]Option{WithProcessorConfig(cfg)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return NewAnalyzerWith(tr, ex), nil
}

// NewAnalyzerWith combines an existing transform and extractor.
func NewAnalyzerWith(tr transform.Transform, ex *Extractor) *Analyzer {
	return &Analyzer{
		tr:   tr,
		ex:   ex,
		bins: make([]complex64, tr.Size()),
	}
}

// Size returns the frame length the analyzer accepts.
func (a *Analyzer) Size() int { return a.tr.Size() }

// Analyze transforms frame and extracts its features. It panics if
// len(frame) != Size().
func (a *Analyzer) Analyze(frame []float32) FrameFeatures {
	a.tr.Forward(a.bins, frame)
	return a.ex.Extract(frame, a.bins)
}

// Clone returns an analyzer sharing a's transform and extractor.
func (a *Analyzer) Clone() *Analyzer {
	return NewAnalyzerWith(a.tr, a.ex)
}
