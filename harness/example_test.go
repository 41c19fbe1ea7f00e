package harness_test

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/gradfuzz/harness"
)

// ExampleController_Run feeds one hand-written byte stream through the
// full pipeline. The first 16 bytes bind x0=1 and x1=0.5; the remainder
// generates sin(x1), on which all three backends agree.
func ExampleController_Run() {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint64(data[0:], math.Float64bits(1.0))
	binary.LittleEndian.PutUint64(data[8:], math.Float64bits(0.5))
	data = append(data, 0x04, 0x01, 0x00, 0x00, 0x01)

	c, err := harness.New(harness.DefaultConfig())
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	rep, err := c.Run(data)
	if err != nil {
		fmt.Println("run:", err)
		return
	}

	fmt.Printf("cases=%d skipped=%d failures=%d\n", rep.Cases, rep.Skipped, len(rep.Failures))
	// Output:
	// cases=1 skipped=0 failures=0
}
