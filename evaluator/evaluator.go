package evaluator

import (
	"errors"

	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/projection"
	"github.com/katalvlaran/patterndb/task"
)

// ErrNilProjection indicates that FromProjection was called with nil.
var ErrNilProjection = errors.New("evaluator: projection is nil")

// Evaluator decides whether a pattern is useful under a cost vector.
type Evaluator struct {
	proj *projection.Projection
}

// New builds the projection of t onto p and wraps it.
func New(t *task.Task, p pattern.Pattern) (*Evaluator, error) {
	proj, err := projection.New(t, p)
	if err != nil {
		return nil, err
	}

	return &Evaluator{proj: proj}, nil
}

// FromProjection wraps an already built projection. The projection is only
// read; its stored distance table, if any, is ignored.
func FromProjection(proj *projection.Projection) (*Evaluator, error) {
	if proj == nil {
		return nil, ErrNilProjection
	}

	return &Evaluator{proj: proj}, nil
}

// Pattern returns the evaluated pattern.
func (e *Evaluator) Pattern() pattern.Pattern { return e.proj.Pattern() }

// Projection returns the wrapped projection.
func (e *Evaluator) Projection() *projection.Projection { return e.proj }

// IsUseful reports whether the projection has a positive mean finite goal
// distance under costs. It agrees with
// projection.MeanFiniteValue(distances) > 0 while usually settling only a
// fraction of the abstract states.
func (e *Evaluator) IsUseful(costs []int) (bool, error) {
	var (
		settled  int
		positive bool
	)
	_, err := e.proj.ComputeGoalDistances(costs, projection.WithOnSettle(func(_, d int) bool {
		settled++
		if d > 0 {
			positive = true
			return true
		}
		return false
	}))
	if err != nil {
		return false, err
	}

	// Nothing settled: every distance is infinite and the mean is +Inf.
	return positive || settled == 0, nil
}
