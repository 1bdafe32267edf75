package selection

import (
	"errors"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/patterndb/collection"
	"github.com/katalvlaran/patterndb/pattern"
)

// Sentinel errors returned by Select.
var (
	// ErrNilTask indicates that Select was called without a task.
	ErrNilTask = errors.New("selection: task is nil")

	// ErrBadMaxPatternSize indicates MaxPatternSize < 1.
	ErrBadMaxPatternSize = errors.New("selection: MaxPatternSize must be at least 1")

	// ErrBadMaxPDBSize indicates MaxPDBSize < 1.
	ErrBadMaxPDBSize = errors.New("selection: MaxPDBSize must be at least 1")

	// ErrBadMaxCollectionSize indicates MaxCollectionSize < 1.
	ErrBadMaxCollectionSize = errors.New("selection: MaxCollectionSize must be at least 1")

	// ErrBadMaxPatterns indicates MaxPatterns < 1.
	ErrBadMaxPatterns = errors.New("selection: MaxPatterns must be at least 1")

	// ErrBadMaxTime indicates a negative MaxTime.
	ErrBadMaxTime = errors.New("selection: MaxTime must be non-negative")
)

// Unbounded is the "no limit" value of the integer budgets.
const Unbounded = math.MaxInt

// UnboundedTime is the "no limit" value of MaxTime.
const UnboundedTime = time.Duration(math.MaxInt64)

// Status is a state of the selection loop.
type Status int

const (
	// Running: the loop keeps pulling patterns.
	Running Status = iota
	// TimeExpired: MaxTime elapsed.
	TimeExpired
	// PatternsExhausted: the pattern source has nothing left.
	PatternsExhausted
	// MaxPatternsReached: the collection holds MaxPatterns projections.
	MaxPatternsReached
	// Done: the collection has been assembled.
	Done
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case TimeExpired:
		return "time_expired"
	case PatternsExhausted:
		return "patterns_exhausted"
	case MaxPatternsReached:
		return "max_patterns_reached"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures Select.
type Options struct {
	MaxPatternSize    int           // ≥ 1; clamped to the variable count by the default source
	MaxPDBSize        int           // ≥ 1
	MaxCollectionSize int           // ≥ 1
	MaxPatterns       int           // ≥ 1
	MaxTime           time.Duration // ≥ 0
	Debug             bool          // lower the logger to debug and log every skipped pattern

	// Precheck runs the early-stopping usefulness test of package evaluator
	// before the full distance computation. It never changes the result.
	Precheck bool

	Logger     zerolog.Logger
	Registerer prometheus.Registerer // nil disables metrics
	Source     pattern.Source        // nil selects Sequential over Interesting
	Clock      func() time.Time      // nil selects time.Now
}

// Option represents a functional option for configuring Select.
type Option func(*Options)

// WithMaxPatternSize bounds the number of variables per pattern.
func WithMaxPatternSize(n int) Option {
	return func(o *Options) { o.MaxPatternSize = n }
}

// WithMaxPDBSize bounds the abstract state count of a single projection.
func WithMaxPDBSize(n int) Option {
	return func(o *Options) { o.MaxPDBSize = n }
}

// WithMaxCollectionSize bounds the summed state count of all projections.
func WithMaxCollectionSize(n int) Option {
	return func(o *Options) { o.MaxCollectionSize = n }
}

// WithMaxPatterns bounds the number of accepted projections.
func WithMaxPatterns(n int) Option {
	return func(o *Options) { o.MaxPatterns = n }
}

// WithMaxTime sets the wall-clock budget. The budget is checked between
// patterns; a running projection build is never interrupted.
func WithMaxTime(d time.Duration) Option {
	return func(o *Options) { o.MaxTime = d }
}

// WithDebug enables per-pattern debug logging.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithPrecheck toggles the evaluator pre-check.
func WithPrecheck(enabled bool) Option {
	return func(o *Options) { o.Precheck = enabled }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRegisterer enables Prometheus metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithSource replaces the default pattern source.
func WithSource(src pattern.Source) Option {
	return func(o *Options) { o.Source = src }
}

// WithClock replaces time.Now for the wall-clock budget.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Clock = now }
}

// DefaultOptions returns unbounded budgets, the evaluator pre-check enabled
// and a disabled logger.
func DefaultOptions() Options {
	return Options{
		MaxPatternSize:    Unbounded,
		MaxPDBSize:        Unbounded,
		MaxCollectionSize: Unbounded,
		MaxPatterns:       Unbounded,
		MaxTime:           UnboundedTime,
		Debug:             false,
		Precheck:          true,
		Logger:            zerolog.Nop(),
	}
}

func (o *Options) validate() error {
	switch {
	case o.MaxPatternSize < 1:
		return ErrBadMaxPatternSize
	case o.MaxPDBSize < 1:
		return ErrBadMaxPDBSize
	case o.MaxCollectionSize < 1:
		return ErrBadMaxCollectionSize
	case o.MaxPatterns < 1:
		return ErrBadMaxPatterns
	case o.MaxTime < 0:
		return ErrBadMaxTime
	}

	return nil
}

// Result is the outcome of Select.
type Result struct {
	// Collection holds the accepted projections in acceptance order.
	Collection *collection.Collection

	// Status is TimeExpired, PatternsExhausted or MaxPatternsReached.
	Status Status

	// Costs is the residual cost vector after all saturations.
	Costs []int

	// Evaluated counts the projections that were built.
	Evaluated int
}
