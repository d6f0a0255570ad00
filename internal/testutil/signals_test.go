package testutil

import "testing"

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(7, 1, 32)
	b := DeterministicNoise(7, 1, 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v != %v", i, a[i], b[i])
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(4, 2)
	if x[2] != 1 || x[0] != 0 || x[1] != 0 || x[3] != 0 {
		t.Fatalf("unexpected impulse: %v", x)
	}
	if out := Impulse(4, 9); out[0] != 0 {
		t.Fatalf("out-of-range impulse should be silent: %v", out)
	}
}

func TestCosineStartsAtAmplitude(t *testing.T) {
	x := DeterministicCosine(1000, 16000, 0.5, 8)
	if x[0] != 0.5 {
		t.Fatalf("x[0] = %v, want 0.5", x[0])
	}
}
