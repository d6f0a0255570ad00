package transform

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a backend cannot plan the requested frame length.
var ErrInvalidSize = errors.New("transform: invalid size")

// Transform computes a forward DFT of a fixed-length real frame.
type Transform interface {
	// Size returns the planned frame length N.
	Size() int
	// Forward writes the N unnormalized complex bins of src into dst.
	// It panics if len(src) or len(dst) differs from Size.
	Forward(dst []complex64, src []float32)
}

// Planner creates a Transform for a frame length.
type Planner interface {
	Plan(size int) (Transform, error)
}

// PlannerFunc adapts a function to [Planner].
type PlannerFunc func(size int) (Transform, error)

// Plan calls f(size).
func (f PlannerFunc) Plan(size int) (Transform, error) { return f(size) }

var (
	// Default plans algo-fft transforms and falls back to go-dsp for
	// lengths algo-fft cannot transform correctly.
	Default Planner = PlannerFunc(func(size int) (Transform, error) {
		t, err := NewFFT(size)
		if err == nil {
			return t, nil
		}
		if errors.Is(err, ErrInvalidSize) && size > 0 {
			return Reference.Plan(size)
		}
		return nil, err
	})
	// Reference plans go-dsp transforms.
	Reference Planner = PlannerFunc(func(size int) (Transform, error) {
		t, err := NewReference(size)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
)

// Execute runs t on src and returns a newly allocated bin slice.
func Execute(t Transform, src []float32) []complex64 {
	dst := make([]complex64, t.Size())
	t.Forward(dst, src)
	return dst
}

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: must be > 0: %d", ErrInvalidSize, size)
	}
	return nil
}

func checkLengths(size int, dst []complex64, src []float32) {
	if len(src) != size {
		panic(fmt.Sprintf("transform: frame length %d does not match transform size %d", len(src), size))
	}
	if len(dst) != size {
		panic(fmt.Sprintf("transform: bin buffer length %d does not match transform size %d", len(dst), size))
	}
}
