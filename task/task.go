package task

import "fmt"

// Validate checks the structural invariants listed in the package
// documentation and returns the first violation found, wrapped around one of
// the package sentinels.
func (t *Task) Validate() error {
	if t == nil {
		return ErrNilTask
	}
	if len(t.Variables) == 0 {
		return ErrNoVariables
	}
	for i, v := range t.Variables {
		if v.DomainSize < 1 {
			return fmt.Errorf("%w: variable %d (%s) has domain %d", ErrBadDomain, i, v.Name, v.DomainSize)
		}
	}
	for i, op := range t.Operators {
		if op.Cost < 0 {
			return fmt.Errorf("%w: operator %d (%s) cost=%d", ErrNegativeCost, i, op.Name, op.Cost)
		}
		if err := t.checkFacts(op.Preconditions); err != nil {
			return fmt.Errorf("operator %d (%s) preconditions: %w", i, op.Name, err)
		}
		if err := t.checkFacts(op.Effects); err != nil {
			return fmt.Errorf("operator %d (%s) effects: %w", i, op.Name, err)
		}
	}
	if err := t.checkFacts(t.Goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if t.InitialState != nil {
		if len(t.InitialState) != len(t.Variables) {
			return fmt.Errorf("%w: %d values for %d variables", ErrBadInitialState, len(t.InitialState), len(t.Variables))
		}
		for v, val := range t.InitialState {
			if val < 0 || val >= t.Variables[v].DomainSize {
				return fmt.Errorf("%w: variable %d value %d", ErrBadInitialState, v, val)
			}
		}
	}

	return nil
}

func (t *Task) checkFacts(facts []Fact) error {
	seen := make(map[int]struct{}, len(facts))
	for _, f := range facts {
		if f.Var < 0 || f.Var >= len(t.Variables) {
			return fmt.Errorf("%w: variable %d", ErrBadFact, f.Var)
		}
		if f.Value < 0 || f.Value >= t.Variables[f.Var].DomainSize {
			return fmt.Errorf("%w: variable %d value %d", ErrBadFact, f.Var, f.Value)
		}
		if _, dup := seen[f.Var]; dup {
			return fmt.Errorf("%w: variable %d", ErrDuplicateFact, f.Var)
		}
		seen[f.Var] = struct{}{}
	}

	return nil
}

// NumVariables returns the number of state variables.
func (t *Task) NumVariables() int { return len(t.Variables) }

// DomainSizes returns the domain size of every variable, in variable order.
func (t *Task) DomainSizes() []int {
	sizes := make([]int, len(t.Variables))
	for i, v := range t.Variables {
		sizes[i] = v.DomainSize
	}

	return sizes
}

// OperatorCosts returns a fresh copy of the operator cost vector. The result
// is the starting residual cost vector of a selection run.
func (t *Task) OperatorCosts() []int {
	costs := make([]int, len(t.Operators))
	for i, op := range t.Operators {
		costs[i] = op.Cost
	}

	return costs
}

// GoalVariables reports, per variable, whether the goal constrains it.
func (t *Task) GoalVariables() []bool {
	isGoal := make([]bool, len(t.Variables))
	for _, g := range t.Goal {
		isGoal[g.Var] = true
	}

	return isGoal
}

// EffectsWithoutPrecondition returns the effects of op whose variable has no
// precondition in op, in effect order.
func (op *Operator) EffectsWithoutPrecondition() []Fact {
	var out []Fact
	for _, eff := range op.Effects {
		if _, ok := op.Precondition(eff.Var); !ok {
			out = append(out, eff)
		}
	}

	return out
}

// Precondition returns the value op requires for variable v, if any.
func (op *Operator) Precondition(v int) (int, bool) {
	for _, pre := range op.Preconditions {
		if pre.Var == v {
			return pre.Value, true
		}
	}

	return 0, false
}
