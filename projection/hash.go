package projection

import (
	"fmt"

	"github.com/katalvlaran/patterndb/pattern"
)

// Hasher is the perfect hash function of a pattern: a mixed-radix encoding
// of the pattern variables' values into [0, NumStates).
type Hasher struct {
	pattern     pattern.Pattern
	domains     []int // domain size per pattern position
	multipliers []int
	numStates   int
}

// NewHasher builds the hash for p over a task with the given per-variable
// domain sizes. It fails with ErrTooLarge instead of overflowing.
func NewHasher(domains []int, p pattern.Pattern) (*Hasher, error) {
	h := &Hasher{
		pattern:     p,
		domains:     make([]int, len(p)),
		multipliers: make([]int, len(p)),
	}
	size := 1
	for i, v := range p {
		if !pattern.IsProductWithinLimit(size, domains[v], pattern.MaxStates) {
			return nil, fmt.Errorf("%w: pattern %v", ErrTooLarge, p)
		}
		h.multipliers[i] = size
		h.domains[i] = domains[v]
		size *= domains[v]
	}
	h.numStates = size

	return h, nil
}

// Len returns the number of pattern variables.
func (h *Hasher) Len() int { return len(h.pattern) }

// NumStates returns the number of abstract states.
func (h *Hasher) NumStates() int { return h.numStates }

// Multipliers returns the per-position multipliers. Callers must not modify it.
func (h *Hasher) Multipliers() []int { return h.multipliers }

// DomainSize returns the domain size of the variable at pattern position pos.
func (h *Hasher) DomainSize(pos int) int { return h.domains[pos] }

// Rank hashes a concrete state (one value per task variable).
func (h *Hasher) Rank(state []int) int {
	index := 0
	for i, v := range h.pattern {
		index += state[v] * h.multipliers[i]
	}

	return index
}

// RankAbstract hashes an abstract state given as one value per pattern position.
func (h *Hasher) RankAbstract(values []int) int {
	index := 0
	for i, val := range values {
		index += val * h.multipliers[i]
	}

	return index
}

// Unrank decodes index into one value per pattern position.
func (h *Hasher) Unrank(index int) []int {
	values := make([]int, len(h.pattern))
	for i := range values {
		values[i] = h.ValueAt(index, i)
	}

	return values
}

// ValueAt returns the value of pattern position pos in abstract state index.
func (h *Hasher) ValueAt(index, pos int) int {
	return (index / h.multipliers[pos]) % h.domains[pos]
}
