// Package transform adapts forward FFT backends to fixed-length real frames.
//
// A [Transform] is planned once for a frame length and reused for every
// frame of that length. Its planning state is read-only after construction,
// so a single Transform may be shared between goroutines as long as each call
// owns its source and destination slices.
//
// Two backends are provided:
//
//   - [NewFFT] uses algo-fft plans (float32 precision, pooled scratch).
//   - [NewReference] uses go-dsp (float64 precision, any length).
//
// Output follows the unnormalized forward DFT convention: bin k of an
// N-point transform corresponds to k*sampleRate/N for k < N/2.
package transform
