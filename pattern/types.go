package pattern

import (
	"errors"
	"math"
)

// MaxStates is the largest abstract state count a pattern may induce. Every
// abstract state index therefore fits an uint32.
const MaxStates = math.MaxInt32

var (
	// ErrBadMaxSize indicates a maximum pattern size < 1.
	ErrBadMaxSize = errors.New("pattern: max pattern size must be at least 1")

	// ErrNilEnumerator indicates that Sequential was given no Enumerator.
	ErrNilEnumerator = errors.New("pattern: enumerator is nil")
)

// Pattern is an ordered, duplicate-free list of variable ids. The empty
// pattern is used by Source implementations to signal exhaustion.
type Pattern []int

// Enumerator returns every pattern with at most maxSize variables.
// Implementations must not return two patterns with the same variable set.
type Enumerator interface {
	Enumerate(maxSize int) []Pattern
}

// Source yields patterns one at a time. An empty pattern means no more
// patterns are available.
type Source interface {
	Next() Pattern
}
