package transform

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// verifyTolerance bounds the bin error of an accepted plan, relative to the
// largest reference bin magnitude.
const verifyTolerance = 1e-4

// fftWorker pairs a plan with the complex input scratch it transforms from.
type fftWorker struct {
	plan *algofft.Plan[complex64]
	in   []complex64
}

// FFT is the algo-fft backed [Transform].
type FFT struct {
	size    int
	workers sync.Pool
}

// NewFFT plans an algo-fft transform of the given length.
//
// algo-fft plans some mixed-radix lengths (160, 320, 1000, ...) that return
// an incorrect spectrum without reporting an error. Every plan is therefore
// checked once against a go-dsp transform of a seeded noise frame, and
// lengths that disagree are rejected with [ErrInvalidSize].
func NewFFT(size int) (*FFT, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlanT[complex64](size)
	if err != nil {
		return nil, fmt.Errorf("%w: algo-fft cannot plan %d points: %w", ErrInvalidSize, size, err)
	}
	if err := verifyPlan(plan, size); err != nil {
		return nil, err
	}

	f := &FFT{size: size}
	f.workers.New = func() any {
		p, err := algofft.NewPlanT[complex64](size)
		if err != nil {
			// The same size was planned successfully in NewFFT.
			panic(fmt.Sprintf("transform: replanning %d points failed: %v", size, err))
		}
		return &fftWorker{plan: p, in: make([]complex64, size)}
	}
	f.workers.Put(&fftWorker{plan: plan, in: make([]complex64, size)})

	return f, nil
}

// Size returns the planned frame length.
func (f *FFT) Size() int { return f.size }

// Forward writes the DFT of src into dst.
func (f *FFT) Forward(dst []complex64, src []float32) {
	checkLengths(f.size, dst, src)

	w := f.workers.Get().(*fftWorker)
	defer f.workers.Put(w)

	for i, v := range src {
		w.in[i] = complex(v, 0)
	}

	if err := w.plan.Forward(dst, w.in); err != nil {
		// Lengths are checked above; a failure here is a backend bug.
		panic(fmt.Sprintf("transform: algo-fft forward failed: %v", err))
	}
}

// verifyPlan compares plan against go-dsp on a deterministic noise frame.
func verifyPlan(plan *algofft.Plan[complex64], size int) error {
	rng := rand.New(rand.NewSource(int64(size)))
	in := make([]complex64, size)
	ref := make([]float64, size)
	for i := range in {
		v := float32(rng.Float64()*2 - 1)
		in[i] = complex(v, 0)
		ref[i] = float64(v)
	}

	got := make([]complex64, size)
	if err := plan.Forward(got, in); err != nil {
		return fmt.Errorf("%w: algo-fft forward of %d points: %w", ErrInvalidSize, size, err)
	}
	want := fft.FFTReal(ref)

	scale := 1.0
	for _, c := range want {
		scale = math.Max(scale, cmplx.Abs(c))
	}
	for k := range want {
		if diff := cmplx.Abs(complex128(got[k]) - want[k]); !(diff <= verifyTolerance*scale) {
			return fmt.Errorf("%w: algo-fft %d-point plan differs from the DFT at bin %d by %g", ErrInvalidSize, size, k, diff)
		}
	}
	return nil
}
