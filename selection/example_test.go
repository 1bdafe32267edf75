// Package selection_test shows a complete greedy selection on a toy task.
// Run with "go test -run Example".
package selection_test

import (
	"fmt"

	"github.com/katalvlaran/patterndb/selection"
)

// ExampleSelect selects patterns for the lever-and-door task. The door
// pattern is accepted first and takes the cost of "open"; the pair pattern
// then covers the two lever moves, and the summed estimate is exact.
func ExampleSelect() {
	tk := chainTask()
	res, err := selection.Select(tk, selection.WithMaxPatternSize(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range res.Collection.Projections() {
		fmt.Printf("%v states=%d h(init)=%d\n", p.Pattern(), p.NumStates(), p.Lookup(tk.InitialState))
	}
	fmt.Println("status:", res.Status)
	fmt.Println("h(init):", res.Collection.Sum(tk.InitialState))
	// Output:
	// [1] states=2 h(init)=1
	// [0 1] states=6 h(init)=2
	// status: patterns_exhausted
	// h(init): 3
}
