package projection

import (
	"container/heap"
	"fmt"
)

// ComputeGoalDistances runs a backward Dijkstra from all abstract goal states
// and returns a table with one entry per abstract state: the cheapest cost of
// reaching a goal state under costs, or Infinity.
//
// costs holds one entry per concrete operator. Operators costing Infinity are
// treated as impassable. The stored table (see Solve) is not touched.
//
// Errors: ErrCostsLength, ErrNegativeCost.
//
// Complexity: O(n·a·log(n·a)) time, O(n + n·a) space in the worst case
// (lazy decrease-key keeps stale heap entries).
func (p *Projection) ComputeGoalDistances(costs []int, opts ...SolveOption) ([]int, error) {
	// 1) Options.
	cfg := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the cost vector.
	if len(costs) != p.numOperators {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCostsLength, len(costs), p.numOperators)
	}
	for i, c := range costs {
		if c < 0 {
			return nil, fmt.Errorf("%w: operator %d cost=%d", ErrNegativeCost, i, c)
		}
	}

	// 3) Abstract operator costs: cheapest member.
	opCosts := make([]int, len(p.operators))
	for i := range p.operators {
		opCosts[i] = p.operators[i].Cost(costs)
	}

	r := &runner{
		p:       p,
		options: cfg,
		opCosts: opCosts,
		dist:    make([]int, p.NumStates()),
		pq:      make(statePQ, 0, p.goals.GetCardinality()),
	}
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of one distance computation.
type runner struct {
	p          *Projection
	options    SolveOptions
	opCosts    []int   // cost per abstract operator
	dist       []int   // best known distance per abstract state
	pq         statePQ // lazy min-heap
	applicable []int   // scratch buffer for match tree queries
}

// init sets every distance to Infinity and seeds the heap with the goal states.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	heap.Init(&r.pq)
	it := r.p.goals.Iterator()
	for it.HasNext() {
		s := int(it.Next())
		r.dist[s] = 0
		heap.Push(&r.pq, stateItem{state: s, dist: 0})
	}
}

// process pops states in distance order and regresses through the applicable
// backward operators until the heap is empty or the settle hook asks to stop.
func (r *runner) process() {
	var (
		item     stateItem
		s, d     int
		c, nd    int
		pred     int
		onSettle = r.options.OnSettle
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(stateItem)
		s, d = item.state, item.dist

		// Stale entry: a cheaper path was found after this one was pushed.
		if d > r.dist[s] {
			continue
		}
		if onSettle != nil && onSettle(s, d) {
			return
		}

		r.applicable = r.p.matchTree.Applicable(s, r.applicable[:0])
		for _, opIdx := range r.applicable {
			c = r.opCosts[opIdx]
			if c >= Infinity-d {
				continue
			}
			nd = d + c
			pred = s + r.p.operators[opIdx].HashEffect
			if nd < r.dist[pred] {
				r.dist[pred] = nd
				heap.Push(&r.pq, stateItem{state: pred, dist: nd})
			}
		}
	}
}

// stateItem is an abstract state with a tentative distance.
type stateItem struct {
	state int
	dist  int
}

// statePQ is a min-heap of stateItem ordered by dist, ties by state index so
// that runs are reproducible.
type statePQ []stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].state < pq[j].state
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
