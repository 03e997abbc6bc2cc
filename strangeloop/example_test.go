package strangeloop_test

import (
	"fmt"

	"github.com/streampulse/chronos/clock"
	"github.com/streampulse/chronos/strangeloop"
)

// Example learns a recurring pattern from repeated observations and
// reports it in the engine's summary.
func Example() {
	e := strangeloop.New(strangeloop.DefaultConfig(), clock.NewSystem())

	_, err := e.LearnAtLevel(0, []string{"timeout", "timeout", "retry", "timeout", "ok"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	summary := e.Summary()
	fmt.Println(summary.TotalKnowledge > 0)
	fmt.Println(summary.LearningIterations > 0)
	// Output:
	// true
	// true
}
