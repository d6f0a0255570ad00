// Command vadframes prints per-frame voice activity features of synthetic
// test signals.
//
// Usage:
//
//	vadframes [flags] [signal ...]
//
// Signals are generated one second each, in order, and cut into frames:
//
//	sine     - 440 Hz sine
//	saw      - 440 Hz sawtooth
//	square   - 440 Hz square
//	simplex  - simplex noise with 440 lattice points per second
//	noise    - white noise
//	silence  - all-zero samples
//
// Without arguments every signal is analyzed.
//
// Examples:
//
//	vadframes
//	vadframes --frame 1024 --peak magnitude sine noise
//	vadframes --backend go-dsp --format yaml silence
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-vad/cmd/vadframes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
