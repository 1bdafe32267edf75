package collection

import (
	"errors"

	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/projection"
)

var (
	// ErrNilProjection indicates an attempt to add a nil projection.
	ErrNilProjection = errors.New("collection: projection is nil")

	// ErrUnsolved indicates an attempt to add a projection without distances.
	ErrUnsolved = errors.New("collection: projection has no distance table")
)

// Collection is an ordered set of solved projections.
type Collection struct {
	projections []*projection.Projection
	totalSize   int64
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends a solved projection.
func (c *Collection) Add(p *projection.Projection) error {
	if p == nil {
		return ErrNilProjection
	}
	if !p.Solved() {
		return ErrUnsolved
	}
	c.projections = append(c.projections, p)
	c.totalSize += int64(p.NumStates())

	return nil
}

// Len returns the number of projections.
func (c *Collection) Len() int { return len(c.projections) }

// TotalSize returns the summed abstract state count of all projections.
func (c *Collection) TotalSize() int64 { return c.totalSize }

// Projections returns the projections in insertion order. Callers must not
// modify the slice.
func (c *Collection) Projections() []*projection.Projection { return c.projections }

// Patterns returns the patterns in insertion order.
func (c *Collection) Patterns() []pattern.Pattern {
	out := make([]pattern.Pattern, len(c.projections))
	for i, p := range c.projections {
		out[i] = p.Pattern()
	}

	return out
}

// Sum returns the sum of the projections' distances for a concrete state, or
// projection.Infinity if any projection recognizes a dead end. An empty
// collection yields 0.
func (c *Collection) Sum(state []int) int {
	sum := 0
	for _, p := range c.projections {
		d := p.Lookup(state)
		if d == projection.Infinity {
			return projection.Infinity
		}
		sum += d
	}

	return sum
}

// Max returns the largest distance any projection reports for state, or
// projection.Infinity on a dead end.
func (c *Collection) Max(state []int) int {
	best := 0
	for _, p := range c.projections {
		if d := p.Lookup(state); d > best {
			best = d
		}
	}

	return best
}

// IsDeadEnd reports whether some projection proves state unsolvable.
func (c *Collection) IsDeadEnd(state []int) bool {
	for _, p := range c.projections {
		if p.IsDeadEnd(state) {
			return true
		}
	}

	return false
}
