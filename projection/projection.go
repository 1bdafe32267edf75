package projection

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/task"
)

// Projection is the abstract transition system induced by a pattern,
// together with its goal distance table once Solve has run.
type Projection struct {
	pattern      pattern.Pattern
	hasher       *Hasher
	operators    []AbstractOperator
	matchTree    *MatchTree
	goals        *roaring.Bitmap
	numOperators int
	distances    []int
}

// New builds the projection of t onto p: perfect hash, abstract goal states,
// backward abstract operators and their match tree. It does not compute
// distances.
//
// Errors: ErrNilTask, any task.Validate error, ErrEmptyPattern,
// ErrVariableOutOfRange, ErrDuplicateVariable, ErrTooLarge,
// ErrExpansionTooLarge.
func New(t *task.Task, p pattern.Pattern) (*Projection, error) {
	// 1) Validate inputs.
	if t == nil {
		return nil, ErrNilTask
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	varToPos := make([]int, t.NumVariables())
	for i := range varToPos {
		varToPos[i] = -1
	}
	for pos, v := range p {
		if v < 0 || v >= len(varToPos) {
			return nil, fmt.Errorf("%w: variable %d", ErrVariableOutOfRange, v)
		}
		if varToPos[v] != -1 {
			return nil, fmt.Errorf("%w: variable %d", ErrDuplicateVariable, v)
		}
		varToPos[v] = pos
	}

	// 2) Perfect hash.
	h, err := NewHasher(t.DomainSizes(), p)
	if err != nil {
		return nil, err
	}

	// 3) Backward operators and their applicability index.
	ops, err := BuildOperators(t, h, varToPos)
	if err != nil {
		return nil, err
	}
	tree := NewMatchTree(h)
	for i := range ops {
		tree.Insert(i, ops[i].Preconditions)
	}

	return &Projection{
		pattern:      p,
		hasher:       h,
		operators:    ops,
		matchTree:    tree,
		goals:        goalStates(t, h, varToPos),
		numOperators: len(t.Operators),
	}, nil
}

// goalStates collects every abstract state consistent with the goal facts
// that fall inside the pattern.
func goalStates(t *task.Task, h *Hasher, varToPos []int) *roaring.Bitmap {
	var inside []task.Fact
	for _, g := range t.Goal {
		if pos := varToPos[g.Var]; pos >= 0 {
			inside = append(inside, task.Fact{Var: pos, Value: g.Value})
		}
	}
	goals := roaring.New()
	for index := 0; index < h.NumStates(); index++ {
		if consistent(h, index, inside) {
			goals.Add(uint32(index))
		}
	}

	return goals
}

func consistent(h *Hasher, index int, facts []task.Fact) bool {
	for _, f := range facts {
		if h.ValueAt(index, f.Var) != f.Value {
			return false
		}
	}

	return true
}

// Pattern returns the pattern. Callers must not modify it.
func (p *Projection) Pattern() pattern.Pattern { return p.pattern }

// Hasher returns the perfect hash function.
func (p *Projection) Hasher() *Hasher { return p.hasher }

// NumStates returns the number of abstract states.
func (p *Projection) NumStates() int { return p.hasher.NumStates() }

// NumOperators returns the number of concrete operators of the task.
func (p *Projection) NumOperators() int { return p.numOperators }

// Operators returns the backward abstract operators. Callers must not modify them.
func (p *Projection) Operators() []AbstractOperator { return p.operators }

// MatchTree returns the applicability index over Operators.
func (p *Projection) MatchTree() *MatchTree { return p.matchTree }

// GoalStates returns the abstract goal states in ascending order.
func (p *Projection) GoalStates() []int {
	out := make([]int, 0, p.goals.GetCardinality())
	it := p.goals.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// IsGoal reports whether abstract state index is a goal state.
func (p *Projection) IsGoal(index int) bool { return p.goals.Contains(uint32(index)) }

// Solve computes the goal distances under costs and stores them. A projection
// is solved at most once; its table is read-only afterwards.
func (p *Projection) Solve(costs []int) error {
	if p.distances != nil {
		return ErrAlreadySolved
	}
	dist, err := p.ComputeGoalDistances(costs)
	if err != nil {
		return err
	}
	p.distances = dist

	return nil
}

// Solved reports whether Solve has stored a distance table.
func (p *Projection) Solved() bool { return p.distances != nil }

// Distances returns the stored distance table, nil before Solve. Callers must
// not modify it.
func (p *Projection) Distances() []int { return p.distances }

// Lookup returns the stored goal distance of the abstraction of a concrete
// state (one value per task variable). It returns Infinity for dead ends and
// 0 before Solve.
func (p *Projection) Lookup(state []int) int {
	if p.distances == nil {
		return 0
	}

	return p.distances[p.hasher.Rank(state)]
}

// IsDeadEnd reports whether the abstraction of state cannot reach the goal.
func (p *Projection) IsDeadEnd(state []int) bool {
	return p.Lookup(state) == Infinity
}
