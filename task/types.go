package task

import "errors"

// Sentinel errors returned by Validate and the loaders.
var (
	// ErrNilTask indicates that a nil *Task was passed where a task is required.
	ErrNilTask = errors.New("task: task is nil")

	// ErrNoVariables indicates that the task declares no variables at all.
	ErrNoVariables = errors.New("task: no variables")

	// ErrBadDomain indicates a variable whose domain size is < 1.
	ErrBadDomain = errors.New("task: domain size must be positive")

	// ErrBadFact indicates a fact whose variable or value is out of range.
	ErrBadFact = errors.New("task: fact out of range")

	// ErrDuplicateFact indicates a variable mentioned twice in one fact list.
	ErrDuplicateFact = errors.New("task: variable mentioned twice")

	// ErrNegativeCost indicates an operator with a negative cost.
	ErrNegativeCost = errors.New("task: negative operator cost")

	// ErrBadInitialState indicates an initial state of the wrong length or with
	// out-of-domain values.
	ErrBadInitialState = errors.New("task: invalid initial state")
)

// Fact is a (variable, value) pair.
type Fact struct {
	Var   int `yaml:"var"`
	Value int `yaml:"value"`
}

// Variable is a finite-domain state variable. Only the domain size matters
// to the engine; Name is carried for logging and output.
type Variable struct {
	Name       string `yaml:"name"`
	DomainSize int    `yaml:"domain"`
}

// Operator is a ground action. Effects are unconditional.
type Operator struct {
	Name          string `yaml:"name"`
	Cost          int    `yaml:"cost"`
	Preconditions []Fact `yaml:"pre"`
	Effects       []Fact `yaml:"eff"`
}

// Task is the read-only planning task.
type Task struct {
	Variables    []Variable `yaml:"variables"`
	Operators    []Operator `yaml:"operators"`
	Goal         []Fact     `yaml:"goal"`
	InitialState []int      `yaml:"init,omitempty"`
}
