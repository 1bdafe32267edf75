package selection

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/patterndb/collection"
	"github.com/katalvlaran/patterndb/evaluator"
	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/projection"
	"github.com/katalvlaran/patterndb/task"
)

// Select greedily builds a saturated pattern database collection for t.
//
// Steps:
//  1. Validate the task and the options.
//  2. Build the pattern source and register metrics.
//  3. Run the selection loop until a budget or the source stops it.
//  4. Return the collection, the stop reason and the residual costs.
//
// Complexity: the loop is dominated by projection construction and the
// backward Dijkstra per candidate, O(N·log N + N·A) for N abstract states and
// A applicable abstract operators per state.
func Select(t *task.Task, opts ...Option) (*Result, error) {
	// 1) Validate input
	if t == nil {
		return nil, ErrNilTask
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Wire logger, source and metrics
	log := cfg.Logger
	switch {
	case cfg.Debug:
		log = log.Level(zerolog.DebugLevel)
	case log.GetLevel() < zerolog.InfoLevel:
		log = log.Level(zerolog.InfoLevel)
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, fmt.Errorf("selection: register metrics: %w", err)
	}
	r := &runner{
		t:          t,
		opts:       cfg,
		log:        log,
		metrics:    m,
		now:        now,
		domains:    t.DomainSizes(),
		costs:      t.OperatorCosts(),
		collection: collection.New(),
		maxSize:    cfg.MaxPatternSize,
	}
	if cfg.Source != nil {
		r.source = cfg.Source
	} else {
		seq, err := pattern.NewSequential(pattern.NewInteresting(t), cfg.MaxPatternSize, t.NumVariables(), log)
		if err != nil {
			return nil, err
		}
		r.source = seq
		r.maxSize = seq.MaxSize()
	}

	// 3) Selection loop
	if err = r.run(); err != nil {
		return nil, err
	}

	// 4) Assemble result
	return &Result{
		Collection: r.collection,
		Status:     r.reason,
		Costs:      r.costs,
		Evaluated:  r.evaluated,
	}, nil
}

// runner carries the state of one Select call.
type runner struct {
	t       *task.Task
	opts    Options
	log     zerolog.Logger
	metrics *metrics
	now     func() time.Time
	source  pattern.Source
	maxSize int

	domains    []int
	costs      []int // residual costs, reduced after every accepted pattern
	collection *collection.Collection

	start     time.Time
	state     Status
	reason    Status
	evaluated int
}

// run drives the state machine from Running to Done.
func (r *runner) run() error {
	r.start = r.now()
	r.state = Running
	for r.state == Running {
		if err := r.step(); err != nil {
			return err
		}
	}
	r.reason = r.state
	r.state = Done

	return nil
}

// step handles exactly one candidate pattern, or records the stop reason.
func (r *runner) step() error {
	if r.now().Sub(r.start) >= r.opts.MaxTime {
		r.log.Info().Dur("elapsed", r.now().Sub(r.start)).Msg("reached time limit")
		r.state = TimeExpired
		return nil
	}

	p := r.source.Next()
	if len(p) == 0 {
		r.log.Info().Int("max_pattern_size", r.maxSize).Msg("generated all patterns up to size")
		r.state = PatternsExhausted
		return nil
	}

	size, ok := pattern.Size(r.domains, p)
	if !ok || size > r.opts.MaxPDBSize {
		r.skip(p, reasonTooLarge)
		return nil
	}

	if r.collection.Len() == r.opts.MaxPatterns {
		r.log.Info().Int("patterns", r.collection.Len()).Msg("reached maximum number of patterns")
		r.state = MaxPatternsReached
		return nil
	}

	if r.opts.MaxCollectionSize != math.MaxInt &&
		int64(size) > int64(r.opts.MaxCollectionSize)-r.collection.TotalSize() {
		r.skip(p, reasonCollectionBudget)
		return nil
	}

	return r.evaluate(p)
}

// evaluate builds, scores and possibly accepts the projection onto p.
func (r *runner) evaluate(p pattern.Pattern) error {
	proj, err := projection.New(r.t, p)
	if errors.Is(err, projection.ErrTooLarge) {
		r.skip(p, reasonTooLarge)
		return nil
	}
	if err != nil {
		return fmt.Errorf("selection: pattern %s: %w", p, err)
	}
	r.evaluated++
	r.metrics.incEvaluated()

	if r.opts.Precheck {
		ev, err := evaluator.FromProjection(proj)
		if err != nil {
			return err
		}
		useful, err := ev.IsUseful(r.costs)
		if err != nil {
			return err
		}
		if !useful {
			r.skip(p, reasonNotUseful)
			return nil
		}
	}

	started := time.Now()
	if err = proj.Solve(r.costs); err != nil {
		return fmt.Errorf("selection: pattern %s: %w", p, err)
	}
	r.metrics.observeSolve(time.Since(started).Seconds())

	score := projection.MeanFiniteValue(proj.Distances())
	if !(score > 0) {
		r.skip(p, reasonNotUseful)
		return nil
	}

	saturated, err := proj.SaturatedCosts(proj.Distances())
	if err != nil {
		return err
	}
	if err = projection.ReduceCosts(r.costs, saturated); err != nil {
		return err
	}
	if err = r.collection.Add(proj); err != nil {
		return err
	}
	r.metrics.incAccepted(r.collection.TotalSize())
	r.log.Info().Stringer("pattern", p).Float64("score", score).Msg("add pattern")

	return nil
}

func (r *runner) skip(p pattern.Pattern, reason string) {
	r.metrics.incSkipped(reason)
	r.log.Debug().Stringer("pattern", p).Str("reason", reason).Msg("skip pattern")
}
