// Command rangebench runs the comparative benchmark: one workload sequence
// executed against the uncached baseline and against the LRU-cached service
// over identical array contents, with timings and cache counters reported.
//
// All parameters come from the environment (or a .env file); the random seed
// is explicit, so any run is reproducible.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ihorborys/rangecache/pkg/bench"
	"github.com/ihorborys/rangecache/pkg/rangesum"
	"github.com/ihorborys/rangecache/pkg/workload"
)

type config struct {
	ArraySize         int     `env:"RANGEBENCH_ARRAY_SIZE" envDefault:"100000"`
	NumOps            int     `env:"RANGEBENCH_NUM_OPS" envDefault:"50000"`
	CacheCapacity     int     `env:"RANGEBENCH_CACHE_CAPACITY" envDefault:"1000"`
	HotPoolSize       int     `env:"RANGEBENCH_HOT_POOL_SIZE" envDefault:"30"`
	HotProbability    float64 `env:"RANGEBENCH_HOT_PROBABILITY" envDefault:"0.95"`
	UpdateProbability float64 `env:"RANGEBENCH_UPDATE_PROBABILITY" envDefault:"0.03"`
	Seed              int64   `env:"RANGEBENCH_SEED" envDefault:"1"`
	LogFormat         string  `env:"RANGEBENCH_LOG_FORMAT" envDefault:"text"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rangebench: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)
	if err := run(cfg, logger); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	return slog.New(handler)
}

func run(cfg config, logger *slog.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	arr := rangesum.RandomArray(rng, cfg.ArraySize)

	gen, err := workload.New(workload.Config{
		ArraySize:         cfg.ArraySize,
		NumOps:            cfg.NumOps,
		HotPoolSize:       cfg.HotPoolSize,
		HotProbability:    cfg.HotProbability,
		UpdateProbability: cfg.UpdateProbability,
	}, rng)
	if err != nil {
		return err
	}
	ops := gen.Generate()

	logger.Info("workload generated",
		"array_size", cfg.ArraySize,
		"num_ops", len(ops),
		"hot_pool_size", cfg.HotPoolSize,
		"seed", cfg.Seed,
	)

	// Each side gets its own copy, so updates in one pass cannot leak into
	// the other.
	cached, err := rangesum.NewService(arr.Clone(), cfg.CacheCapacity)
	if err != nil {
		return err
	}
	uncached, err := rangesum.NewBaseline(arr.Clone())
	if err != nil {
		return err
	}

	cmp, err := bench.NewRunner().Compare(cached, uncached, ops)
	if err != nil {
		return err
	}

	logger.Info("benchmark complete",
		"uncached_elapsed", cmp.Uncached.Elapsed,
		"cached_elapsed", cmp.Cached.Elapsed,
		"speedup", fmt.Sprintf("x%.1f", cmp.Speedup()),
		"cache_hits", cmp.CacheHits,
		"cache_misses", cmp.CacheMisses,
		"hit_rate", fmt.Sprintf("%.1f%%", cmp.HitRate()*100),
		"cached_ranges", cached.CacheLen(),
	)
	return nil
}
