package toposort_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/toposort"
)

// ExampleRun orders a diamond and counts the published frames.
func ExampleRun() {
	g := graph.New(4,
		graph.Edge{Source: 0, Target: 1},
		graph.Edge{Source: 0, Target: 2},
		graph.Edge{Source: 1, Target: 3},
		graph.Edge{Source: 2, Target: 3},
	)
	rt := control.NewRuntime(control.WithClock(control.InstantClock{}))
	frames := 0
	res, _ := toposort.Run(context.Background(), g, func(toposort.Frame) { frames++ }, rt)

	fmt.Println(res.Order, res.Cyclic, frames)
	// Output:
	// [0 1 2 3] false 17
}
