package transform

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-vad/dsp/core"
)

// Ref is the go-dsp backed [Transform]. It computes in float64 and supports
// any positive length, at the cost of allocating per call.
type Ref struct {
	size int
}

// NewReference returns a go-dsp transform of the given length.
func NewReference(size int) (*Ref, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &Ref{size: size}, nil
}

// Size returns the planned frame length.
func (r *Ref) Size() int { return r.size }

// Forward writes the DFT of src into dst.
func (r *Ref) Forward(dst []complex64, src []float32) {
	checkLengths(r.size, dst, src)

	bins := fft.FFTReal(core.Widen(nil, src))
	for i, c := range bins {
		dst[i] = complex64(c)
	}
}
