package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-vad/dsp/core"
)

// RequireNearlyEqual fails t unless got and want agree within eps, absolute
// or relative (see core.NearlyEqual). Two NaNs or equal infinities match.
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if got == want || (math.IsNaN(got) && math.IsNaN(want)) {
		return
	}
	if !core.NearlyEqual(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireBinsNearlyEqual fails t if got and want differ in length or if
// any bin pair is further apart than eps in the complex plane.
func RequireBinsNearlyEqual(t *testing.T, got, want []complex64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(complex128(got[i]) - complex128(want[i]))
		if diff > eps {
			t.Fatalf("bin %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequirePanics fails t unless fn panics.
func RequirePanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
