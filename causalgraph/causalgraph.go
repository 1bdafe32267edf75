package causalgraph

import (
	"sort"

	"github.com/katalvlaran/patterndb/task"
)

// Graph is an immutable causal graph. Adjacency lists are sorted ascending
// and duplicate-free.
type Graph struct {
	preEffSucc [][]int
	preEffPred [][]int
	effEff     [][]int
	neighbors  [][]int
}

// New builds the causal graph of t. t must be valid.
func New(t *task.Task) *Graph {
	n := t.NumVariables()
	preEffSucc := newSets(n)
	preEffPred := newSets(n)
	effEff := newSets(n)

	var u, v int
	for _, op := range t.Operators {
		for _, pre := range op.Preconditions {
			for _, eff := range op.Effects {
				u, v = pre.Var, eff.Var
				if u == v {
					continue
				}
				preEffSucc[u][v] = struct{}{}
				preEffPred[v][u] = struct{}{}
			}
		}
		for i, e1 := range op.Effects {
			for _, e2 := range op.Effects[i+1:] {
				effEff[e1.Var][e2.Var] = struct{}{}
				effEff[e2.Var][e1.Var] = struct{}{}
			}
		}
	}

	neighbors := newSets(n)
	for v = 0; v < n; v++ {
		for u = range preEffSucc[v] {
			neighbors[v][u] = struct{}{}
		}
		for u = range preEffPred[v] {
			neighbors[v][u] = struct{}{}
		}
		for u = range effEff[v] {
			neighbors[v][u] = struct{}{}
		}
	}

	return &Graph{
		preEffSucc: sorted(preEffSucc),
		preEffPred: sorted(preEffPred),
		effEff:     sorted(effEff),
		neighbors:  sorted(neighbors),
	}
}

// NumVariables returns the number of vertices.
func (g *Graph) NumVariables() int { return len(g.neighbors) }

// PreEffSuccessors returns the variables v with a pre→eff arc var→v.
func (g *Graph) PreEffSuccessors(v int) []int { return g.preEffSucc[v] }

// PreEffPredecessors returns the variables u with a pre→eff arc u→var.
func (g *Graph) PreEffPredecessors(v int) []int { return g.preEffPred[v] }

// EffEffNeighbors returns the variables sharing an operator effect with v.
func (g *Graph) EffEffNeighbors(v int) []int { return g.effEff[v] }

// Neighbors returns all variables adjacent to v by any arc, in either direction.
func (g *Graph) Neighbors(v int) []int { return g.neighbors[v] }

// IsWeaklyConnected reports whether the subgraph induced by vars is weakly
// connected. The empty set is not connected.
func (g *Graph) IsWeaklyConnected(vars []int) bool {
	if len(vars) == 0 {
		return false
	}
	in := membership(vars)
	seen := bfs([]int{vars[0]}, in, g.neighbors)

	return seen == len(in)
}

// ReachesGoal reports whether every variable in vars reaches a goal variable
// in vars along pre→eff arcs that stay inside vars. isGoal is indexed by
// variable id.
func (g *Graph) ReachesGoal(vars []int, isGoal []bool) bool {
	in := membership(vars)
	var seeds []int
	for v := range in {
		if isGoal[v] {
			seeds = append(seeds, v)
		}
	}
	if len(seeds) == 0 {
		return false
	}
	sort.Ints(seeds)

	// Walk pre→eff arcs backwards from the goal variables.
	return bfs(seeds, in, g.preEffPred) == len(in)
}

// bfs counts the vertices of in reachable from seeds over adj.
func bfs(seeds []int, in map[int]struct{}, adj [][]int) int {
	visited := make(map[int]struct{}, len(in))
	queue := make([]int, 0, len(in))
	for _, s := range seeds {
		visited[s] = struct{}{}
		queue = append(queue, s)
	}
	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, w := range adj[u] {
			if _, ok := in[w]; !ok {
				continue
			}
			if _, ok := visited[w]; ok {
				continue
			}
			visited[w] = struct{}{}
			queue = append(queue, w)
		}
	}

	return len(visited)
}

func membership(vars []int) map[int]struct{} {
	in := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		in[v] = struct{}{}
	}

	return in
}

func newSets(n int) []map[int]struct{} {
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}

	return sets
}

func sorted(sets []map[int]struct{}) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		list := make([]int, 0, len(s))
		for v := range s {
			list = append(list, v)
		}
		sort.Ints(list)
		out[i] = list
	}

	return out
}
