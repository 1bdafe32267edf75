package pattern

import (
	"slices"

	"github.com/katalvlaran/patterndb/causalgraph"
	"github.com/katalvlaran/patterndb/task"
)

// Interesting enumerates the interesting patterns of a task: variable sets
// whose causal graph is weakly connected and in which every variable reaches
// a goal variable along pre→eff arcs inside the set.
//
// Candidates are grown one variable at a time from goal-variable singletons
// by adding causal-graph neighbours. Every connected set containing a goal
// variable is reachable this way: removing a non-goal leaf of a spanning
// tree leaves a smaller connected set that still contains the goal variable.
type Interesting struct {
	cg      *causalgraph.Graph
	isGoal  []bool
	numVars int
}

// NewInteresting prepares an enumerator for t. t must be valid.
func NewInteresting(t *task.Task) *Interesting {
	return &Interesting{
		cg:      causalgraph.New(t),
		isGoal:  t.GoalVariables(),
		numVars: t.NumVariables(),
	}
}

// Enumerate returns all interesting patterns with at most maxSize variables,
// each sorted ascending, ordered by size and then lexicographically.
//
// Complexity: proportional to the number of connected variable sets of size
// ≤ maxSize that contain a goal variable, times the neighbourhood size.
func (e *Interesting) Enumerate(maxSize int) []Pattern {
	if maxSize > e.numVars {
		maxSize = e.numVars
	}
	if maxSize < 1 {
		return nil
	}

	// 1) Size-1 candidates: one singleton per goal variable.
	var level []Pattern
	for v, goal := range e.isGoal {
		if goal {
			level = append(level, Pattern{v})
		}
	}

	var out []Pattern
	for size := 1; ; size++ {
		// 2) Keep the candidates of this size that are interesting.
		for _, p := range level {
			if e.cg.ReachesGoal(p, e.isGoal) {
				out = append(out, p)
			}
		}
		if size == maxSize || len(level) == 0 {
			break
		}

		// 3) Grow every candidate by one neighbouring variable.
		level = e.extend(level)
	}

	return out
}

// extend returns every distinct set obtained by adding one causal-graph
// neighbour to a pattern of level, sorted lexicographically.
func (e *Interesting) extend(level []Pattern) []Pattern {
	seen := make(map[string]struct{})
	var next []Pattern
	for _, p := range level {
		for _, v := range p {
			for _, w := range e.cg.Neighbors(v) {
				if p.Contains(w) {
					continue
				}
				grown := append(slices.Clone(p), w)
				slices.Sort(grown)
				key := grown.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				next = append(next, grown)
			}
		}
	}
	slices.SortFunc(next, func(a, b Pattern) int { return slices.Compare(a, b) })

	return next
}
