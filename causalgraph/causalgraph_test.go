package causalgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterndb/causalgraph"
	"github.com/katalvlaran/patterndb/task"
)

// chainTask: v0 enables changes of v1, v1 enables changes of v2; v3 and v4
// always change together; goal on v2 and v4.
func chainTask() *task.Task {
	vars := make([]task.Variable, 5)
	for i := range vars {
		vars[i] = task.Variable{DomainSize: 2}
	}

	return &task.Task{
		Variables: vars,
		Operators: []task.Operator{
			{Cost: 1, Effects: []task.Fact{{Var: 0, Value: 1}}},
			{Cost: 1, Preconditions: []task.Fact{{Var: 0, Value: 1}}, Effects: []task.Fact{{Var: 1, Value: 1}}},
			{Cost: 1, Preconditions: []task.Fact{{Var: 1, Value: 1}, {Var: 2, Value: 0}}, Effects: []task.Fact{{Var: 2, Value: 1}}},
			{Cost: 1, Effects: []task.Fact{{Var: 3, Value: 1}, {Var: 4, Value: 1}}},
		},
		Goal: []task.Fact{{Var: 2, Value: 1}, {Var: 4, Value: 1}},
	}
}

func TestNew_Arcs(t *testing.T) {
	g := causalgraph.New(chainTask())
	assert.Equal(t, 5, g.NumVariables())
	assert.Equal(t, []int{1}, g.PreEffSuccessors(0))
	assert.Equal(t, []int{2}, g.PreEffSuccessors(1))
	assert.Empty(t, g.PreEffSuccessors(2), "self arcs are dropped")
	assert.Equal(t, []int{1}, g.PreEffPredecessors(2))
	assert.Equal(t, []int{4}, g.EffEffNeighbors(3))
	assert.Equal(t, []int{3}, g.EffEffNeighbors(4))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
}

func TestIsWeaklyConnected(t *testing.T) {
	g := causalgraph.New(chainTask())
	assert.True(t, g.IsWeaklyConnected([]int{0, 1, 2}))
	assert.True(t, g.IsWeaklyConnected([]int{3, 4}))
	assert.True(t, g.IsWeaklyConnected([]int{2}))
	assert.False(t, g.IsWeaklyConnected([]int{0, 2}))
	assert.False(t, g.IsWeaklyConnected([]int{2, 4}))
	assert.False(t, g.IsWeaklyConnected(nil))
}

func TestReachesGoal(t *testing.T) {
	tk := chainTask()
	g := causalgraph.New(tk)
	isGoal := tk.GoalVariables()

	assert.True(t, g.ReachesGoal([]int{1, 2}, isGoal))
	assert.True(t, g.ReachesGoal([]int{0, 1, 2}, isGoal))
	assert.False(t, g.ReachesGoal([]int{0, 1}, isGoal), "no goal variable")
	// v3–v4 are connected only by an eff–eff arc, which does not count for goal reachability.
	assert.False(t, g.ReachesGoal([]int{3, 4}, isGoal))
	assert.True(t, g.ReachesGoal([]int{4}, isGoal))
}
