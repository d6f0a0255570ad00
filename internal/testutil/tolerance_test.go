package testutil

import (
	"math"
	"testing"
)

func TestRequireBinsNearlyEqualPasses(t *testing.T) {
	RequireBinsNearlyEqual(t, []complex64{1 + 1i, 2}, []complex64{1 + 1i, 2 + 1e-7i}, 1e-6)
}

func TestRequirePanicsPasses(t *testing.T) {
	RequirePanics(t, "explicit", func() { panic("boom") })
}

func TestRequireNearlyEqualPasses(t *testing.T) {
	RequireNearlyEqual(t, "absolute", 1e-9, 0, 1e-6)
	RequireNearlyEqual(t, "relative", 1e6, 1e6+0.5, 1e-6)
	RequireNearlyEqual(t, "undefined", math.NaN(), math.NaN(), 1e-6)
	RequireNearlyEqual(t, "zero bin", math.Inf(-1), math.Inf(-1), 1e-6)
}
