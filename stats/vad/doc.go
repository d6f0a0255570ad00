// Package vad computes per-frame acoustic features used by voice activity
// detectors: short-term energy, dominant frequency and spectral flatness.
//
// The package only describes frames. Deciding whether a frame contains
// speech (thresholds, hangover, noise-floor tracking) is left to callers.
//
// # Pipeline
//
// A frame of N real samples is transformed once by a [transform.Transform]
// planned for N, and the frame plus its N complex bins are reduced by an
// [Extractor] into an immutable [FrameFeatures] value:
//
//	a, err := vad.NewAnalyzer(core.DefaultProcessorConfig(), transform.Default)
//	f := a.Analyze(frame)
//	fmt.Println(f) // (Energy:..., Dominant Freq:..., SFM:...)
//
// # Spectral values
//
// By default both the peak search and the flatness measure operate on the
// real part of each bin, not on its magnitude. A pure sine therefore may not
// be found at its own bin, and the geometric mean of signed real parts is
// undefined whenever their product is negative. [PeakMagnitude] and
// [FlatnessMagnitude] select the magnitude-based variants.
//
// # Undefined flatness
//
// Spectral flatness is reported as [FlatnessUndefined] (NaN) when the
// geometric-to-arithmetic ratio has no real, non-negative value: an all-zero
// spectrum, a non-positive arithmetic mean, or a negative product under
// [FlatnessSignedReal]. Use [FrameFeatures.HasFlatness] rather than comparing
// against the sentinel. A ratio of exactly zero (some value is zero) yields
// -Inf dB.
package vad
