package attractor_test

import (
	"fmt"

	"github.com/streampulse/chronos/attractor"
)

// Example classifies a trajectory converging geometrically to a fixed
// point, matching a stable point attractor.
func Example() {
	a := attractor.New(attractor.Config{EmbeddingDimension: 1, MaxTrajectoryLength: 200})

	v := 1.0
	for i := 0; i < 150; i++ {
		_ = a.AddPoint([]float64{v}, uint64(i))
		v *= 0.5
	}

	info, err := a.Analyze()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(info.Kind)
	fmt.Println(info.IsStable)
	// Output:
	// point
	// true
}
