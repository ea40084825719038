package bench

import (
	"errors"
	"time"

	"github.com/ihorborys/rangecache/pkg/rangesum"
)

var (
	// ErrNilExecutor is returned when a run is started without an executor.
	ErrNilExecutor = errors.New("executor is required")

	// ErrNoOperations is returned when a run is started with an empty sequence.
	ErrNoOperations = errors.New("operation sequence is empty")
)

// Executor runs a single workload operation. Both rangesum.Service and
// rangesum.Baseline satisfy it.
type Executor interface {
	Apply(op rangesum.Op) error
}

// Result holds the timing of one full pass.
type Result struct {
	Ops     int
	Elapsed time.Duration
}

// Comparison holds the timings of a cached and an uncached pass over the
// same operation sequence, plus the cache counters of the cached pass.
type Comparison struct {
	Cached      Result
	Uncached    Result
	CacheHits   int64
	CacheMisses int64
}

// Speedup returns how many times faster the cached pass was. A non-positive
// cached elapsed yields 0 rather than +Inf.
func (c Comparison) Speedup() float64 {
	if c.Cached.Elapsed <= 0 {
		return 0
	}
	return float64(c.Uncached.Elapsed) / float64(c.Cached.Elapsed)
}

// HitRate returns the fraction of cache lookups that hit.
func (c Comparison) HitRate() float64 {
	total := c.CacheHits + c.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(c.CacheHits) / float64(total)
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// Runner times full passes over operation sequences.
type Runner struct {
	now func() time.Time
}

// NewRunner creates a Runner. The default clock is time.Now.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every operation in order and returns the elapsed wall time.
// The first operation error aborts the pass.
func (r *Runner) Run(exec Executor, ops []rangesum.Op) (Result, error) {
	if exec == nil {
		return Result{}, ErrNilExecutor
	}
	if len(ops) == 0 {
		return Result{}, ErrNoOperations
	}

	start := r.now()
	for _, op := range ops {
		if err := exec.Apply(op); err != nil {
			return Result{}, err
		}
	}
	return Result{Ops: len(ops), Elapsed: r.now().Sub(start)}, nil
}

// Compare runs the same sequence through the uncached baseline and then the
// cached service, and reports both timings together with the cache counters.
// Callers must hand in executors built over identical array contents for the
// comparison to be meaningful.
func (r *Runner) Compare(cached *rangesum.Service, uncached *rangesum.Baseline, ops []rangesum.Op) (Comparison, error) {
	uncachedRes, err := r.Run(uncached, ops)
	if err != nil {
		return Comparison{}, err
	}

	cachedRes, err := r.Run(cached, ops)
	if err != nil {
		return Comparison{}, err
	}

	hits, misses := cached.CacheStats()
	return Comparison{
		Cached:      cachedRes,
		Uncached:    uncachedRes,
		CacheHits:   hits,
		CacheMisses: misses,
	}, nil
}
