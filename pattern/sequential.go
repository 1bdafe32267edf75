package pattern

import "github.com/rs/zerolog"

// Sequential yields patterns in non-decreasing size order. For every size k
// it asks the Enumerator for all patterns up to k, keeps those of size
// exactly k and hands them out last-in-first-out before moving to k+1.
type Sequential struct {
	enum    Enumerator
	maxSize int
	size    int
	stack   []Pattern
	log     zerolog.Logger
}

// NewSequential creates a generator that stops after size
// min(maxPatternSize, numVars). The first size class is loaded eagerly.
func NewSequential(enum Enumerator, maxPatternSize, numVars int, log zerolog.Logger) (*Sequential, error) {
	if enum == nil {
		return nil, ErrNilEnumerator
	}
	if maxPatternSize < 1 {
		return nil, ErrBadMaxSize
	}
	if maxPatternSize > numVars {
		maxPatternSize = numVars
	}
	s := &Sequential{enum: enum, maxSize: maxPatternSize, log: log}
	if s.maxSize >= 1 {
		s.load(1)
	}

	return s, nil
}

// MaxSize returns the effective (clamped) maximum pattern size.
func (s *Sequential) MaxSize() int { return s.maxSize }

// CurrentSize returns the size class currently being handed out.
func (s *Sequential) CurrentSize() int { return s.size }

// Next returns the next pattern, or an empty pattern once every size class
// up to MaxSize has been exhausted.
func (s *Sequential) Next() Pattern {
	for {
		if n := len(s.stack); n > 0 {
			p := s.stack[n-1]
			s.stack = s.stack[:n-1]
			return p
		}
		if s.size >= s.maxSize {
			return nil
		}
		s.load(s.size + 1)
	}
}

func (s *Sequential) load(size int) {
	s.size = size
	s.log.Info().Int("size", size).Msg("generate patterns")
	s.stack = s.stack[:0]
	for _, p := range s.enum.Enumerate(size) {
		if len(p) == size {
			s.stack = append(s.stack, p)
		}
	}
}
