package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicCosine generates a float32 cosine wave. A cosine at an exact
// bin frequency puts its energy in the real part of that bin.
func DeterministicCosine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Cos(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}
