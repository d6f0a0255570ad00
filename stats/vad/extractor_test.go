package vad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vad/internal/testutil"
)

func mustExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()
	ex, err := NewExtractor(opts...)
	if err != nil {
		t.Fatalf("NewExtractor() error = %v", err)
	}
	return ex
}

func TestNewExtractorDefaults(t *testing.T) {
	cfg := mustExtractor(t).Config()
	if cfg.SampleRate != 16000 || cfg.Peak != PeakRealPart || cfg.Flatness != FlatnessSignedReal {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestNewExtractorInvalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "zero rate", opt: WithSampleRate(0)},
		{name: "nan rate", opt: WithSampleRate(math.NaN())},
		{name: "inf rate", opt: WithSampleRate(math.Inf(1))},
		{name: "peak", opt: WithPeakStrategy(PeakStrategy(9))},
		{name: "flatness", opt: WithFlatnessPolicy(FlatnessPolicy(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor(tt.opt)
			if !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("NewExtractor() error = %v, want ErrInvalidOption", err)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	for _, s := range []PeakStrategy{PeakRealPart, PeakMagnitude} {
		got, err := ParsePeakStrategy(s.String())
		if err != nil || got != s {
			t.Fatalf("ParsePeakStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	for _, p := range []FlatnessPolicy{FlatnessSignedReal, FlatnessAbsReal, FlatnessMagnitude} {
		got, err := ParseFlatnessPolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseFlatnessPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePeakStrategy("loudest"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("ParsePeakStrategy(loudest) error = %v", err)
	}
	if _, err := ParseFlatnessPolicy(""); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("ParseFlatnessPolicy(\"\") error = %v", err)
	}
}

func TestExtractSilence(t *testing.T) {
	ex := mustExtractor(t)
	for _, n := range []int{1, 7, 512, 1024} {
		f := ex.Extract(make([]float32, n), make([]complex64, n))
		if f.Energy != 0 || f.DominantFrequency != 0 {
			t.Fatalf("n=%d: got %+v, want zero energy and frequency", n, f)
		}
		if f.HasFlatness() {
			t.Fatalf("n=%d: flatness %v should be undefined", n, f.SpectralFlatness)
		}
	}
}

func TestExtractUsesConfiguredStrategies(t *testing.T) {
	frame := []float32{0.5, -0.5, 0.5, -0.5}
	bins := []complex64{0, 1, 3i, 2}

	byReal := mustExtractor(t, WithSampleRate(8000)).Extract(frame, bins)
	if byReal.DominantFrequency != 6000 {
		t.Fatalf("real part peak = %v Hz, want 6000", byReal.DominantFrequency)
	}
	// One real part is zero, so the ratio is 0 rather than undefined.
	if !byReal.HasFlatness() || !math.IsInf(float64(byReal.SpectralFlatness), -1) {
		t.Fatalf("flatness = %v, want -Inf", byReal.SpectralFlatness)
	}

	mag := mustExtractor(t,
		WithSampleRate(8000),
		WithPeakStrategy(PeakMagnitude),
		WithFlatnessPolicy(FlatnessMagnitude),
	).Extract(frame, bins)
	if mag.DominantFrequency != 4000 {
		t.Fatalf("magnitude peak = %v Hz, want 4000", mag.DominantFrequency)
	}
	testutil.RequireNearlyEqual(t, "energy", float64(mag.Energy), 0.25, 1e-7)
}

func TestExtractIsPure(t *testing.T) {
	ex := mustExtractor(t, WithFlatnessPolicy(FlatnessMagnitude))
	frame := testutil.DeterministicNoise(21, 1, 256)
	bins := make([]complex64, 256)
	for i := range bins {
		bins[i] = complex(frame[i], frame[255-i])
	}
	frameCopy := append([]float32(nil), frame...)
	binsCopy := append([]complex64(nil), bins...)

	a := ex.Extract(frame, bins)
	b := ex.Extract(frame, bins)
	if math.Float32bits(a.Energy) != math.Float32bits(b.Energy) ||
		math.Float32bits(a.DominantFrequency) != math.Float32bits(b.DominantFrequency) ||
		math.Float32bits(a.SpectralFlatness) != math.Float32bits(b.SpectralFlatness) {
		t.Fatalf("repeated Extract differs: %v vs %v", a, b)
	}
	for i := range frame {
		if frame[i] != frameCopy[i] || bins[i] != binsCopy[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestExtractContractViolations(t *testing.T) {
	ex := mustExtractor(t)
	testutil.RequirePanics(t, "length mismatch", func() {
		ex.Extract(make([]float32, 8), make([]complex64, 4))
	})
	testutil.RequirePanics(t, "empty frame", func() {
		ex.Extract(nil, nil)
	})
}

func TestFrameFeaturesString(t *testing.T) {
	f := FrameFeatures{Energy: 0.25, DominantFrequency: 437.5, SpectralFlatness: -3.5}
	if got, want := f.String(), "(Energy:0.25, Dominant Freq:437.5, SFM:-3.5)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	silent := FrameFeatures{SpectralFlatness: FlatnessUndefined}
	if got, want := silent.String(), "(Energy:0, Dominant Freq:0, SFM:NaN)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFrameFeaturesStringNotation(t *testing.T) {
	tests := []struct {
		name string
		f    FrameFeatures
		want string
	}{
		{
			name: "large",
			f:    FrameFeatures{Energy: 1234567, DominantFrequency: 15968.75, SpectralFlatness: -120},
			want: "(Energy:1234567, Dominant Freq:15968.75, SFM:-120)",
		},
		{
			name: "small",
			f:    FrameFeatures{Energy: 1e-7, DominantFrequency: 31.25, SpectralFlatness: -0.5},
			want: "(Energy:0.0000001, Dominant Freq:31.25, SFM:-0.5)",
		},
		{
			name: "zero bin",
			f:    FrameFeatures{Energy: 0.1, SpectralFlatness: float32(math.Inf(-1))},
			want: "(Energy:0.1, Dominant Freq:0, SFM:-inf)",
		},
		{
			name: "overflow",
			f:    FrameFeatures{Energy: float32(math.Inf(1)), SpectralFlatness: FlatnessUndefined},
			want: "(Energy:inf, Dominant Freq:0, SFM:NaN)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
