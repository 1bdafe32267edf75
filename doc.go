// Package patterndb builds additive pattern database heuristics for
// cost-optimal classical planning.
//
// What is a pattern database?
//
//	A pattern is a subset of the task's state variables. Projecting the task
//	onto a pattern yields a small abstract state space whose exact goal
//	distances, stored in a dense table, are an admissible estimate of the
//	real cost to go. Several tables can be summed safely once operator costs
//	are split between them by cost saturation.
//
// Packages:
//
//	task/        – finite-domain planning task, validation, YAML loading
//	causalgraph/ – variable dependency graph behind interesting-pattern enumeration
//	pattern/     – patterns, state count with overflow check, interesting
//	               pattern enumeration and size-ordered generation
//	projection/  – perfect hashing, abstract operators, match tree, backward
//	               Dijkstra, saturated costs, usefulness score
//	evaluator/   – early-stopping usefulness test
//	collection/  – the selected projections and their heuristic queries
//	selection/   – budgeted greedy selection with cost saturation
//	cmd/pdbgen/  – command-line front end
//
// Quick start:
//
//	t, _ := task.LoadFile("task.yaml")
//	res, err := selection.Select(t,
//		selection.WithMaxPatternSize(2),
//		selection.WithMaxTime(30*time.Second),
//	)
//	if err != nil { ... }
//	h := res.Collection.Sum(t.InitialState)
//
// Everything is single-threaded while selecting; the returned collection is
// read-only and may be queried from many goroutines.
package patterndb
