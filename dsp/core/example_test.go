package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-vad/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(16000),
		core.WithBlockSize(1024),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d binWidth=%.3f\n", cfg.SampleRate, cfg.BlockSize, cfg.BinWidth())

	// Output:
	// sampleRate=16000 blockSize=1024 binWidth=15.625
}
