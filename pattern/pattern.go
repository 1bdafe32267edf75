package pattern

import (
	"slices"
	"strconv"
	"strings"
)

// Sorted returns a sorted copy of p.
func (p Pattern) Sorted() Pattern {
	out := slices.Clone(p)
	slices.Sort(out)

	return out
}

// Key returns a canonical string for the variable set of p, e.g. "[0 3 5]".
// Patterns with equal variable sets share a key regardless of order.
func (p Pattern) Key() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.Sorted() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

// String prints the pattern in its own order.
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Equal reports whether p and q contain the same variables.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}

	return slices.Equal(p.Sorted(), q.Sorted())
}

// Contains reports whether variable v is part of p.
func (p Pattern) Contains(v int) bool {
	return slices.Contains(p, v)
}

// Size returns Π domains[v] over v in p. The boolean is false when the
// product exceeds MaxStates; the returned size is then meaningless.
func Size(domains []int, p Pattern) (int, bool) {
	size := 1
	for _, v := range p {
		if !IsProductWithinLimit(size, domains[v], MaxStates) {
			return 0, false
		}
		size *= domains[v]
	}

	return size, true
}

// IsProductWithinLimit reports whether a*b ≤ limit for non-negative a, b.
func IsProductWithinLimit(a, b, limit int) bool {
	if a == 0 || b == 0 {
		return true
	}

	return a <= limit/b
}
