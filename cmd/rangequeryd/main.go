// Command rangequeryd exposes the cached range-sum service over HTTP for
// interactive poking: GET /v1/sum, POST /v1/update, GET /v1/stats. Requests
// are rate limited per client IP with the sliding-window limiter.
//
// The core packages are transport-free; this binary is the only place the
// service meets a network. A single mutex serializes access to the
// array-and-cache pair, which the service itself does not synchronize.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ihorborys/rangecache/pkg/rangesum"
	"github.com/ihorborys/rangecache/pkg/ratelimit"
)

type config struct {
	Addr            string        `env:"RANGEQUERYD_ADDR" envDefault:":8080"`
	ArraySize       int           `env:"RANGEQUERYD_ARRAY_SIZE" envDefault:"100000"`
	CacheCapacity   int           `env:"RANGEQUERYD_CACHE_CAPACITY" envDefault:"1000"`
	Seed            int64         `env:"RANGEQUERYD_SEED" envDefault:"1"`
	RateLimit       int           `env:"RANGEQUERYD_RATE_LIMIT" envDefault:"100"`
	RateWindow      time.Duration `env:"RANGEQUERYD_RATE_WINDOW" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"RANGEQUERYD_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogFormat       string        `env:"RANGEQUERYD_LOG_FORMAT" envDefault:"text"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rangequeryd: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)
	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
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
	svc, err := rangesum.NewService(rangesum.RandomArray(rng, cfg.ArraySize), cfg.CacheCapacity)
	if err != nil {
		return err
	}

	limiter, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		return err
	}

	qs := newQueryServer(svc, logger)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      qs.routes(limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "array_size", cfg.ArraySize, "cache_capacity", cfg.CacheCapacity)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
