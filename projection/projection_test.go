package projection_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/projection"
	"github.com/katalvlaran/patterndb/task"
)

const inf = projection.Infinity

func vars(domains ...int) []task.Variable {
	out := make([]task.Variable, len(domains))
	for i, d := range domains {
		out[i] = task.Variable{DomainSize: d}
	}

	return out
}

func move(v, from, to, cost int) task.Operator {
	return task.Operator{
		Cost:          cost,
		Preconditions: []task.Fact{{Var: v, Value: from}},
		Effects:       []task.Fact{{Var: v, Value: to}},
	}
}

// ------------------------------------------------------------------------
// Perfect hashing
// ------------------------------------------------------------------------

func TestHasher_RoundTrip(t *testing.T) {
	domains := []int{2, 3, 4}
	h, err := projection.NewHasher(domains, pattern.Pattern{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 8}, h.Multipliers())
	assert.Equal(t, 24, h.NumStates())
	assert.Equal(t, 3, h.Len())

	seen := make(map[int]bool)
	for i := 0; i < h.NumStates(); i++ {
		values := h.Unrank(i)
		for pos, val := range values {
			require.Less(t, val, h.DomainSize(pos))
			require.Equal(t, val, h.ValueAt(i, pos))
		}
		require.Equal(t, i, h.RankAbstract(values))
		seen[i] = true
	}
	assert.Len(t, seen, 24)

	// Concrete state (v0=1, v1=2, v2=3) → 3·1 + 1·4 + 2·8.
	assert.Equal(t, 23, h.Rank([]int{1, 2, 3}))
}

func TestHasher_TooLarge(t *testing.T) {
	_, err := projection.NewHasher([]int{math.MaxInt32, 2}, pattern.Pattern{0, 1})
	assert.ErrorIs(t, err, projection.ErrTooLarge)

	h, err := projection.NewHasher([]int{math.MaxInt32, 1}, pattern.Pattern{0, 1})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, h.NumStates())
}

// ------------------------------------------------------------------------
// Construction
// ------------------------------------------------------------------------

func TestNew_Errors(t *testing.T) {
	tk := &task.Task{Variables: vars(2, 2)}

	_, err := projection.New(nil, pattern.Pattern{0})
	assert.ErrorIs(t, err, projection.ErrNilTask)
	_, err = projection.New(tk, nil)
	assert.ErrorIs(t, err, projection.ErrEmptyPattern)
	_, err = projection.New(tk, pattern.Pattern{2})
	assert.ErrorIs(t, err, projection.ErrVariableOutOfRange)
	_, err = projection.New(tk, pattern.Pattern{1, 1})
	assert.ErrorIs(t, err, projection.ErrDuplicateVariable)

	// Invalid tasks are rejected before any indexing.
	badGoal := &task.Task{Variables: vars(2, 2), Goal: []task.Fact{{Var: 5, Value: 0}}}
	_, err = projection.New(badGoal, pattern.Pattern{0})
	assert.ErrorIs(t, err, task.ErrBadFact)
	badValue := &task.Task{Variables: vars(2, 2), Operators: []task.Operator{move(0, 0, 3, 1)}}
	_, err = projection.New(badValue, pattern.Pattern{0})
	assert.ErrorIs(t, err, task.ErrBadFact)
	_, err = projection.New(&task.Task{}, pattern.Pattern{0})
	assert.ErrorIs(t, err, task.ErrNoVariables)

	big := &task.Task{Variables: vars(1<<16, 1<<16)}
	_, err = projection.New(big, pattern.Pattern{0, 1})
	assert.ErrorIs(t, err, projection.ErrTooLarge)
}

func TestNew_GoalStates(t *testing.T) {
	tk := &task.Task{
		Variables: vars(2, 3, 2),
		Goal:      []task.Fact{{Var: 1, Value: 2}, {Var: 2, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0, 1})
	require.NoError(t, err)
	// v1=2 with v0 free: indices 0+2·2 and 1+2·2.
	assert.Equal(t, []int{4, 5}, p.GoalStates())
	assert.True(t, p.IsGoal(4))
	assert.False(t, p.IsGoal(0))

	// No goal on the pattern: every state is a goal state.
	p, err = projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.GoalStates())
}

func TestBuildOperators_MultiplyOut(t *testing.T) {
	// v0 ∈ {0,1,2} set to 2 without precondition, prevail v1=1.
	tk := &task.Task{
		Variables: vars(3, 2),
		Operators: []task.Operator{{
			Cost:          1,
			Preconditions: []task.Fact{{Var: 1, Value: 1}},
			Effects:       []task.Fact{{Var: 0, Value: 2}},
		}},
	}
	p, err := projection.New(tk, pattern.Pattern{0, 1})
	require.NoError(t, err)

	ops := p.Operators()
	require.Len(t, ops, 2, "v0=2 is a no-op and must be dropped")
	want := []task.Fact{{Var: 0, Value: 2}, {Var: 1, Value: 1}}
	var effects []int
	for _, op := range ops {
		assert.Equal(t, 0, op.OperatorID)
		assert.Equal(t, []int{0}, op.Operators)
		assert.Equal(t, want, op.Preconditions)
		effects = append(effects, op.HashEffect)
	}
	slices.Sort(effects)
	assert.Equal(t, []int{-2, -1}, effects)
}

func TestBuildOperators_CrossProductIsComplete(t *testing.T) {
	// Two unconditioned effects over domains 3 and 4: 3·4 combinations,
	// minus the single all-prevail combination.
	tk := &task.Task{
		Variables: vars(3, 4),
		Operators: []task.Operator{{
			Cost:    1,
			Effects: []task.Fact{{Var: 0, Value: 1}, {Var: 1, Value: 3}},
		}},
	}
	p, err := projection.New(tk, pattern.Pattern{0, 1})
	require.NoError(t, err)

	ops := p.Operators()
	require.Len(t, ops, 11)
	preds := make(map[int]bool)
	succ := p.Hasher().RankAbstract([]int{1, 3})
	for _, op := range ops {
		pred := succ + op.HashEffect
		require.GreaterOrEqual(t, pred, 0)
		require.Less(t, pred, p.NumStates())
		assert.False(t, preds[pred], "combination enumerated twice")
		preds[pred] = true
	}
	assert.Len(t, preds, 11)
	assert.False(t, preds[succ])
}

func TestBuildOperators_MergesDuplicates(t *testing.T) {
	// Both operators project to v0: 0 → 1 on pattern {0}; they differ outside it.
	tk := &task.Task{
		Variables: vars(2, 2),
		Operators: []task.Operator{
			{Cost: 5, Preconditions: []task.Fact{{Var: 0, Value: 0}, {Var: 1, Value: 0}}, Effects: []task.Fact{{Var: 0, Value: 1}}},
			{Cost: 2, Preconditions: []task.Fact{{Var: 0, Value: 0}, {Var: 1, Value: 1}}, Effects: []task.Fact{{Var: 0, Value: 1}}},
			{Cost: 1, Effects: []task.Fact{{Var: 1, Value: 1}}},
		},
		Goal: []task.Fact{{Var: 0, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)

	ops := p.Operators()
	require.Len(t, ops, 1)
	assert.Equal(t, 0, ops[0].OperatorID)
	assert.Equal(t, []int{0, 1}, ops[0].Operators)
	assert.Equal(t, 2, ops[0].Cost(tk.OperatorCosts()))

	dist, err := p.ComputeGoalDistances(tk.OperatorCosts())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, dist)
}

// ------------------------------------------------------------------------
// Match tree
// ------------------------------------------------------------------------

func TestMatchTree_AgreesWithBruteForce(t *testing.T) {
	tk := &task.Task{
		Variables: vars(2, 3, 2, 2),
		Operators: []task.Operator{
			move(0, 0, 1, 1),
			move(1, 2, 0, 1),
			{Cost: 1, Preconditions: []task.Fact{{Var: 0, Value: 1}, {Var: 2, Value: 0}}, Effects: []task.Fact{{Var: 2, Value: 1}, {Var: 1, Value: 1}}},
			{Cost: 1, Preconditions: []task.Fact{{Var: 3, Value: 1}}, Effects: []task.Fact{{Var: 1, Value: 2}}},
			{Cost: 1, Effects: []task.Fact{{Var: 3, Value: 1}, {Var: 0, Value: 0}}},
		},
	}
	p, err := projection.New(tk, pattern.Pattern{3, 1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, len(p.Operators()), p.MatchTree().Len())

	h := p.Hasher()
	for s := 0; s < p.NumStates(); s++ {
		got := p.MatchTree().Applicable(s, nil)
		slices.Sort(got)

		var want []int
		for i, op := range p.Operators() {
			holds := true
			for _, f := range op.Preconditions {
				if h.ValueAt(s, f.Var) != f.Value {
					holds = false
					break
				}
			}
			if holds {
				want = append(want, i)
			}
		}
		assert.Equal(t, want, got, "state %d", s)
	}
}

// ------------------------------------------------------------------------
// Goal distances
// ------------------------------------------------------------------------

func TestComputeGoalDistances_Toggle(t *testing.T) {
	tk := &task.Task{
		Variables: vars(2),
		Operators: []task.Operator{move(0, 0, 1, 1)},
		Goal:      []task.Fact{{Var: 0, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)

	dist, err := p.ComputeGoalDistances(tk.OperatorCosts())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, dist)
	assert.False(t, p.Solved(), "ComputeGoalDistances must not store the table")
}

func TestComputeGoalDistances_DeadEnd(t *testing.T) {
	tk := &task.Task{
		Variables: vars(3),
		Operators: []task.Operator{move(0, 0, 1, 1)},
		Goal:      []task.Fact{{Var: 0, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)
	require.NoError(t, p.Solve(tk.OperatorCosts()))

	assert.Equal(t, []int{1, 0, inf}, p.Distances())
	assert.True(t, p.IsDeadEnd([]int{2}))
	assert.False(t, p.IsDeadEnd([]int{0}))
	assert.Equal(t, 1, p.Lookup([]int{0}))
}

func TestComputeGoalDistances_ShortestPath(t *testing.T) {
	// 0 -2-> 1 -3-> 2 (goal), plus an expensive shortcut 0 -10-> 2.
	tk := &task.Task{
		Variables: vars(3),
		Operators: []task.Operator{move(0, 0, 1, 2), move(0, 1, 2, 3), move(0, 2, 0, 1), move(0, 0, 2, 10)},
		Goal:      []task.Fact{{Var: 0, Value: 2}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)

	dist, err := p.ComputeGoalDistances(tk.OperatorCosts())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 0}, dist)

	// Making the first step impassable forces the shortcut.
	costs := []int{inf, 3, 1, 10}
	dist, err = p.ComputeGoalDistances(costs)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 3, 0}, dist)
}

func TestComputeGoalDistances_ZeroCosts(t *testing.T) {
	tk := &task.Task{
		Variables: vars(2),
		Operators: []task.Operator{move(0, 0, 1, 0)},
		Goal:      []task.Fact{{Var: 0, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)
	dist, err := p.ComputeGoalDistances(tk.OperatorCosts())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, dist)
	assert.Equal(t, 0.0, projection.MeanFiniteValue(dist))
}

func TestComputeGoalDistances_OnSettleStopsEarly(t *testing.T) {
	tk := &task.Task{
		Variables: vars(4),
		Operators: []task.Operator{move(0, 0, 1, 1), move(0, 1, 2, 1), move(0, 2, 3, 1)},
		Goal:      []task.Fact{{Var: 0, Value: 3}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)

	var settled []int
	_, err = p.ComputeGoalDistances(tk.OperatorCosts(), projection.WithOnSettle(func(state, d int) bool {
		settled = append(settled, d)
		return d >= 1
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, settled)
}

func TestComputeGoalDistances_Errors(t *testing.T) {
	tk := &task.Task{
		Variables: vars(2),
		Operators: []task.Operator{move(0, 0, 1, 1)},
		Goal:      []task.Fact{{Var: 0, Value: 1}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)

	_, err = p.ComputeGoalDistances(nil)
	assert.ErrorIs(t, err, projection.ErrCostsLength)
	_, err = p.ComputeGoalDistances([]int{-1})
	assert.ErrorIs(t, err, projection.ErrNegativeCost)

	assert.Equal(t, 0, p.Lookup([]int{0}), "unsolved projections are uninformative")
	require.NoError(t, p.Solve([]int{1}))
	assert.ErrorIs(t, p.Solve([]int{1}), projection.ErrAlreadySolved)
}

// ------------------------------------------------------------------------
// Scoring and cost saturation
// ------------------------------------------------------------------------

func TestMeanFiniteValue(t *testing.T) {
	assert.Equal(t, 0.5, projection.MeanFiniteValue([]int{1, 0, inf}))
	assert.True(t, math.IsInf(projection.MeanFiniteValue([]int{inf, inf}), 1))
	assert.True(t, math.IsInf(projection.MeanFiniteValue(nil), 1))
	assert.Equal(t, 0.0, projection.MeanFiniteValue([]int{0, 0}))
}

func TestSaturatedCosts(t *testing.T) {
	tk := &task.Task{
		Variables: vars(3, 2),
		Operators: []task.Operator{
			move(0, 0, 1, 2),
			move(0, 1, 2, 3),
			move(0, 2, 0, 1),
			move(0, 0, 2, 10),
			move(1, 0, 1, 7), // outside the pattern
		},
		Goal: []task.Fact{{Var: 0, Value: 2}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)
	costs := tk.OperatorCosts()
	require.NoError(t, p.Solve(costs))
	require.Equal(t, []int{5, 3, 0}, p.Distances())

	saturated, err := p.SaturatedCosts(p.Distances())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 0, 5, 0}, saturated)

	before := slices.Clone(costs)
	require.NoError(t, projection.ReduceCosts(costs, saturated))
	assert.Equal(t, []int{0, 0, 1, 5, 7}, costs)
	for i := range costs {
		assert.LessOrEqual(t, costs[i], before[i])
		assert.GreaterOrEqual(t, costs[i], 0)
	}

	// Under the reduced costs this projection has nothing left to say.
	dist, err := p.ComputeGoalDistances(costs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, dist)

	_, err = p.SaturatedCosts([]int{0})
	assert.ErrorIs(t, err, projection.ErrDistancesLength)
}

func TestSaturatedCosts_IgnoresDeadEnds(t *testing.T) {
	tk := &task.Task{
		Variables: vars(3),
		Operators: []task.Operator{move(0, 0, 1, 4), move(0, 2, 1, 6), move(0, 1, 2, 9)},
		Goal:      []task.Fact{{Var: 0, Value: 0}},
	}
	p, err := projection.New(tk, pattern.Pattern{0})
	require.NoError(t, err)
	require.NoError(t, p.Solve(tk.OperatorCosts()))
	assert.Equal(t, []int{0, inf, inf}, p.Distances())

	saturated, err := p.SaturatedCosts(p.Distances())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, saturated)
}

func TestReduceCosts(t *testing.T) {
	costs := []int{3, inf, 2}
	require.NoError(t, projection.ReduceCosts(costs, []int{1, 4, 2}))
	assert.Equal(t, []int{2, inf, 0}, costs)

	assert.ErrorIs(t, projection.ReduceCosts(costs, []int{1}), projection.ErrCostsLength)
	assert.ErrorIs(t, projection.ReduceCosts(costs, []int{3, 0, 0}), projection.ErrSaturationExceedsCost)
	assert.ErrorIs(t, projection.ReduceCosts(costs, []int{-1, 0, 0}), projection.ErrNegativeCost)
	assert.Equal(t, []int{2, inf, 0}, costs, "failed reductions leave costs untouched")
}
