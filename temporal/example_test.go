package temporal_test

import (
	"fmt"

	"github.com/streampulse/chronos/temporal"
)

func Example() {
	seq := temporal.NewSequence[float64](0)
	_ = seq.Append(1.0, 100)
	_ = seq.Append(2.0, 200)
	_ = seq.Append(3.0, 300)

	fmt.Println(seq.Len())
	fmt.Println(seq.Values())
	// Output:
	// 3
	// [1 2 3]
}
