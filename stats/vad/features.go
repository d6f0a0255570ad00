package vad

import (
	"math"
	"strconv"
)

// FlatnessUndefined is the spectral flatness reported when the
// geometric-to-arithmetic mean ratio is not a real, non-negative number.
var FlatnessUndefined = float32(math.NaN())

// FrameFeatures describes one time-domain frame.
type FrameFeatures struct {
	Energy            float32 // mean squared sample value, >= 0
	DominantFrequency float32 // Hz of the peak bin, in [0, sampleRate)
	SpectralFlatness  float32 // dB, <= 0 for non-negative values; FlatnessUndefined if degenerate
}

// HasFlatness reports whether SpectralFlatness holds a defined value.
func (f FrameFeatures) HasFlatness() bool {
	return !math.IsNaN(float64(f.SpectralFlatness))
}

// String renders the features as "(Energy:<e>, Dominant Freq:<f>, SFM:<s>)".
// Finite values use plain decimal notation with the fewest digits that
// round-trip a float32, never an exponent. Infinities render as "inf" and
// "-inf", the undefined flatness as "NaN".
func (f FrameFeatures) String() string {
	b := make([]byte, 0, 64)
	b = append(b, "(Energy:"...)
	b = appendFloat(b, f.Energy)
	b = append(b, ", Dominant Freq:"...)
	b = appendFloat(b, f.DominantFrequency)
	b = append(b, ", SFM:"...)
	b = appendFloat(b, f.SpectralFlatness)
	b = append(b, ')')
	return string(b)
}

func appendFloat(b []byte, x float32) []byte {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return append(b, "NaN"...)
	case math.IsInf(v, 1):
		return append(b, "inf"...)
	case math.IsInf(v, -1):
		return append(b, "-inf"...)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 32)
}
