package core_test

import (
	"fmt"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

func ExampleIntersectInterval() {
	lo, hi, ok := core.IntersectInterval(-100, 250, 0, 1000)
	fmt.Println(lo, hi, ok)

	_, _, ok = core.IntersectInterval(0, 1, 2, 3)
	fmt.Println(ok)

	// Output:
	// 0 250 true
	// false
}

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}
