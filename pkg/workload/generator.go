package workload

import (
	"fmt"
	"math/rand"

	"github.com/ihorborys/rangecache/pkg/rangesum"
)

// Default mix mirroring the reference workload: nearly every operation is a
// read, and 95% of reads hit a small pool of recurring ranges.
const (
	DefaultHotPoolSize       = 30
	DefaultHotProbability    = 0.95
	DefaultUpdateProbability = 0.03
)

// Config describes a workload to generate.
type Config struct {
	// ArraySize is the length n of the target array.
	ArraySize int
	// NumOps is the number of operations to emit.
	NumOps int
	// HotPoolSize is the number of ranges in the fixed hot pool.
	HotPoolSize int
	// HotProbability is the chance a read is drawn from the hot pool
	// instead of being a fresh random range.
	HotProbability float64
	// UpdateProbability is the chance an operation is a point update.
	UpdateProbability float64
}

// DefaultConfig returns a Config with the reference mix for the given array
// size and operation count.
func DefaultConfig(arraySize, numOps int) Config {
	return Config{
		ArraySize:         arraySize,
		NumOps:            numOps,
		HotPoolSize:       DefaultHotPoolSize,
		HotProbability:    DefaultHotProbability,
		UpdateProbability: DefaultUpdateProbability,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ArraySize < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidArraySize, c.ArraySize)
	}
	if c.NumOps <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumOps, c.NumOps)
	}
	if c.HotPoolSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHotPoolSize, c.HotPoolSize)
	}
	if c.HotProbability < 0 || c.HotProbability > 1 {
		return fmt.Errorf("%w: hot probability %v", ErrInvalidProbability, c.HotProbability)
	}
	if c.UpdateProbability < 0 || c.UpdateProbability > 1 {
		return fmt.Errorf("%w: update probability %v", ErrInvalidProbability, c.UpdateProbability)
	}
	return nil
}

// Generator produces operation sequences from an injected random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. The random source is required so that workloads
// are reproducible from a seed.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	return &Generator{cfg: cfg, rng: rng}, nil
}

// Generate builds the hot pool once and emits NumOps operations following
// the configured mix.
func (g *Generator) Generate() []rangesum.Op {
	n := g.cfg.ArraySize
	mid := n / 2

	// Hot ranges straddle the midpoint, so they are deliberately wide.
	hot := make([]rangesum.Key, g.cfg.HotPoolSize)
	for i := range hot {
		hot[i] = rangesum.Key{
			Left:  g.rng.Intn(mid),
			Right: mid + g.rng.Intn(n-mid),
		}
	}

	ops := make([]rangesum.Op, 0, g.cfg.NumOps)
	for opIdx := 0; opIdx < g.cfg.NumOps; opIdx++ {
		if g.rng.Float64() < g.cfg.UpdateProbability {
			ops = append(ops, rangesum.UpdateOp(g.rng.Intn(n), int64(g.rng.Intn(100)+1)))
			continue
		}

		if g.rng.Float64() < g.cfg.HotProbability {
			key := hot[g.rng.Intn(len(hot))]
			ops = append(ops, rangesum.RangeOp(key.Left, key.Right))
			continue
		}

		left := g.rng.Intn(n)
		right := left + g.rng.Intn(n-left)
		ops = append(ops, rangesum.RangeOp(left, right))
	}
	return ops
}
