package projection

import (
	"errors"
	"math"

	"github.com/katalvlaran/patterndb/task"
)

// Infinity marks unreachable abstract states and impassable operator costs.
const Infinity = math.MaxInt

// Sentinel errors returned by the projection package.
var (
	// ErrNilTask indicates that New was called without a task.
	ErrNilTask = errors.New("projection: task is nil")

	// ErrEmptyPattern indicates a pattern without variables.
	ErrEmptyPattern = errors.New("projection: pattern is empty")

	// ErrVariableOutOfRange indicates a pattern variable that the task does not define.
	ErrVariableOutOfRange = errors.New("projection: pattern variable out of range")

	// ErrDuplicateVariable indicates a pattern listing a variable twice.
	ErrDuplicateVariable = errors.New("projection: duplicate pattern variable")

	// ErrTooLarge indicates that the abstract state count exceeds pattern.MaxStates.
	ErrTooLarge = errors.New("projection: pattern too large")

	// ErrExpansionTooLarge indicates an operator whose multiply-out over
	// effects without precondition cannot be represented. The expansion is
	// bounded by NumStates, so a projection accepted by NewHasher never
	// returns it.
	ErrExpansionTooLarge = errors.New("projection: operator expansion too large")

	// ErrCostsLength indicates a cost vector whose length differs from the
	// number of concrete operators.
	ErrCostsLength = errors.New("projection: cost vector length mismatch")

	// ErrNegativeCost indicates a negative entry in a cost vector.
	ErrNegativeCost = errors.New("projection: negative operator cost")

	// ErrDistancesLength indicates a distance table whose length differs from
	// the number of abstract states.
	ErrDistancesLength = errors.New("projection: distance table length mismatch")

	// ErrSaturationExceedsCost indicates a saturated cost larger than the
	// remaining cost it should be subtracted from.
	ErrSaturationExceedsCost = errors.New("projection: saturated cost exceeds remaining cost")

	// ErrAlreadySolved indicates a second Solve on the same projection.
	ErrAlreadySolved = errors.New("projection: distances already computed")
)

// AbstractOperator is a backward (regression) operator of a projection.
//
// OperatorID is the representative concrete operator. Operators lists every
// concrete operator that projects to the same Preconditions and HashEffect;
// the abstract operator costs the minimum of their costs.
type AbstractOperator struct {
	OperatorID    int
	Operators     []int
	Preconditions []task.Fact // Var is a pattern position, sorted ascending
	HashEffect    int
}

// Cost returns the minimum cost of the member operators under costs.
func (op *AbstractOperator) Cost(costs []int) int {
	best := Infinity
	for _, id := range op.Operators {
		if costs[id] < best {
			best = costs[id]
		}
	}

	return best
}

// SolveOptions configures ComputeGoalDistances.
//
// OnSettle, if non-nil, is called once per abstract state when its distance
// becomes final, in non-decreasing distance order. Returning true stops the
// search; states not yet settled keep their tentative (or Infinity) value.
type SolveOptions struct {
	OnSettle func(state, distance int) bool
}

// SolveOption configures one aspect of SolveOptions.
type SolveOption func(*SolveOptions)

// WithOnSettle installs an early-stop hook, see SolveOptions.OnSettle.
func WithOnSettle(fn func(state, distance int) bool) SolveOption {
	return func(o *SolveOptions) {
		o.OnSettle = fn
	}
}

// DefaultSolveOptions returns options that run the search to completion.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{OnSettle: nil}
}
