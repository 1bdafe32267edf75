// Package task describes the planning task boundary consumed by the pattern
// database engine: finite-domain variables, operators with preconditions and
// effects, the goal, and an optional initial state.
//
// The representation is deliberately flat. Variables and operators are
// addressed by their position in Task.Variables and Task.Operators; a Fact is
// a (variable, value) pair. Everything downstream (projections, causal graph,
// pattern enumeration) reads a *Task but never mutates it.
//
// Validation:
//
//   - every variable has a domain size ≥ 1;
//   - every fact references an existing variable and a value inside its domain;
//   - operator costs are non-negative;
//   - a variable appears at most once in each precondition, effect and goal list;
//   - if present, the initial state assigns one in-domain value per variable.
//
// Tasks are usually built in code (tests, generators) or read from YAML with
// Load / LoadFile:
//
//	variables:
//	  - {name: door, domain: 2}
//	operators:
//	  - name: open
//	    cost: 1
//	    pre: [{var: 0, value: 0}]
//	    eff: [{var: 0, value: 1}]
//	goal: [{var: 0, value: 1}]
//	init: [0]
package task
