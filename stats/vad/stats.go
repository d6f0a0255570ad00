package vad

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vad/dsp/core"
)

// scratchBuf holds pooled float64 scratch for bin unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns real, imaginary and value slices of length n.
func getScratch(n int) (re, im, vals []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 3*n)
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : 3*n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func splitBins(re, im []float64, bins []complex64) {
	for i, c := range bins {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
}

// ShortTermEnergy returns the mean squared sample value of frame.
//
//	energy = (1/N) * sum(|x_i|^2)
//
// Returns 0 for an empty frame.
func ShortTermEnergy(frame []float32) float32 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range frame {
		x := float64(v)
		sum += x * x
	}
	return float32(sum / float64(len(frame)))
}

// BinToFrequency returns the frequency in Hz of bin in a size-point transform.
// For 0 <= bin < size the result stays below sampleRate, even where float32
// rounding of the exact value would reach it.
func BinToFrequency(bin, size int, sampleRate float64) float32 {
	if size <= 0 {
		return 0
	}
	f := float32(float64(bin) / float64(size) * sampleRate)
	if limit := float32(sampleRate); bin < size && f >= limit && limit > 0 {
		f = math.Nextafter32(limit, 0)
	}
	return f
}

// PeakBin returns the index of the most prominent bin under strategy.
// Ties resolve to the lowest index, so an all-zero spectrum yields 0.
// Returns 0 for an empty spectrum.
func PeakBin(bins []complex64, strategy PeakStrategy) int {
	if len(bins) == 0 {
		return 0
	}
	re, im, vals, buf := getScratch(len(bins))
	defer putScratch(buf)
	splitBins(re, im, bins)
	return peakBin(re, im, vals, strategy)
}

func peakBin(re, im, vals []float64, strategy PeakStrategy) int {
	if strategy == PeakMagnitude {
		vecmath.Power(vals, re, im)
		return argmax(vals)
	}
	return argmax(re)
}

// argmax returns the first index holding the largest value.
func argmax(values []float64) int {
	maxBin := 0
	maxVal := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] > maxVal {
			maxVal = values[i]
			maxBin = i
		}
	}
	return maxBin
}

// ArithmeticMean returns the mean of the bins' real parts.
func ArithmeticMean(bins []complex64) float32 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range bins {
		sum += float64(real(c))
	}
	return float32(sum / float64(len(bins)))
}

// GeometricMean returns the N-th root of the product of the bins' real parts.
//
// The mean is accumulated in the log domain, so long frames neither
// overflow nor underflow. It is 0 if any real part is zero and NaN if the
// product is negative, since a fractional power of a negative number has no
// real value.
func GeometricMean(bins []complex64) float32 {
	if len(bins) == 0 {
		return float32(math.NaN())
	}
	re, im, _, buf := getScratch(len(bins))
	defer putScratch(buf)
	splitBins(re, im, bins)
	return float32(geometricMean(re))
}

func geometricMean(values []float64) float64 {
	logSum := 0.0
	negative := false
	for _, v := range values {
		switch {
		case v == 0:
			return 0
		case v < 0:
			negative = !negative
			logSum += math.Log(-v)
		default:
			logSum += math.Log(v)
		}
	}
	if negative {
		return math.NaN()
	}
	return math.Exp(logSum / float64(len(values)))
}

func arithmeticMean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SpectralFlatness returns 10*log10(geometric mean / arithmetic mean) of the
// bins' spectral values under policy, or FlatnessUndefined.
func SpectralFlatness(bins []complex64, policy FlatnessPolicy) float32 {
	if len(bins) == 0 {
		return FlatnessUndefined
	}
	re, im, vals, buf := getScratch(len(bins))
	defer putScratch(buf)
	splitBins(re, im, bins)
	return flatness(spectralValues(re, im, vals, policy))
}

// spectralValues returns the per-bin values the flatness policy averages.
// The result aliases re or vals.
func spectralValues(re, im, vals []float64, policy FlatnessPolicy) []float64 {
	switch policy {
	case FlatnessAbsReal:
		for i, v := range re {
			vals[i] = math.Abs(v)
		}
		return vals
	case FlatnessMagnitude:
		vecmath.Magnitude(vals, re, im)
		return vals
	default:
		return re
	}
}

func flatness(values []float64) float32 {
	if len(values) == 0 {
		return FlatnessUndefined
	}
	arith := arithmeticMean(values)
	if !(arith > 0) {
		return FlatnessUndefined
	}
	geo := geometricMean(values)
	db := core.LinearPowerToDB(geo / arith)
	if math.IsNaN(db) {
		return FlatnessUndefined
	}
	return float32(db)
}
