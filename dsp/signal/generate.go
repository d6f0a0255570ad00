package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vad/dsp/core"
)

// Generator creates deterministic float32 test signals at a shared sample rate.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	return g.periodic("sine", freqHz, amplitude, samples, func(phase float64) float64 {
		return math.Sin(2 * math.Pi * phase)
	})
}

// Saw generates a rising sawtooth in [-amplitude, amplitude).
func (g *Generator) Saw(freqHz, amplitude float64, samples int) ([]float32, error) {
	return g.periodic("saw", freqHz, amplitude, samples, func(phase float64) float64 {
		return 2*phase - 1
	})
}

// Square generates a 50% duty-cycle square wave.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float32, error) {
	return g.periodic("square", freqHz, amplitude, samples, func(phase float64) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	})
}

// Simplex generates one-dimensional simplex noise with freqHz lattice points
// per second, so its energy sits below roughly freqHz. Output lies in
// [-amplitude, amplitude] and the gradient table follows the generator seed.
func (g *Generator) Simplex(freqHz, amplitude float64, samples int) ([]float32, error) {
	if err := g.check("simplex", freqHz, samples); err != nil {
		return nil, err
	}
	perm := rand.New(rand.NewSource(g.seed)).Perm(256)
	out := make([]float32, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * simplex1D(perm, step*float64(i)))
	}
	return out, nil
}

// simplex1D evaluates noise at x >= 0. It is zero on integer x.
func simplex1D(perm []int, x float64) float64 {
	i0 := int(math.Floor(x))
	x0 := x - float64(i0)
	x1 := x0 - 1

	t0 := 1 - x0*x0
	t0 *= t0
	t1 := 1 - x1*x1
	t1 *= t1
	n := t0*t0*simplexGrad(perm[i0&255], x0) + t1*t1*simplexGrad(perm[(i0+1)&255], x1)

	return math.Max(-1, math.Min(1, 0.395*n))
}

// simplexGrad picks one of 16 gradients in [-8, -1] ∪ [1, 8].
func simplexGrad(hash int, x float64) float64 {
	grad := 1 + float64(hash&7)
	if hash&8 != 0 {
		grad = -grad
	}
	return grad * x
}

func (g *Generator) check(name string, freqHz float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", name, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", name, g.cfg.SampleRate)
	}
	if freqHz < 0 || freqHz >= g.cfg.SampleRate/2 {
		return fmt.Errorf("%s frequency must be in [0, %f): %f", name, g.cfg.SampleRate/2, freqHz)
	}
	return nil
}

// periodic evaluates shape at the normalized phase [0, 1) of every sample.
func (g *Generator) periodic(name string, freqHz, amplitude float64, samples int, shape func(float64) float64) ([]float32, error) {
	if err := g.check(name, freqHz, samples); err != nil {
		return nil, err
	}
	out := make([]float32, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		_, phase := math.Modf(step * float64(i))
		out[i] = float32(amplitude * shape(phase))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}

// Silence returns samples zeros.
func (g *Generator) Silence(samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("silence samples must be > 0: %d", samples)
	}
	return make([]float32, samples), nil
}
