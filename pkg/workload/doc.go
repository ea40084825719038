// Package workload generates synthetic operation sequences for exercising
// the cached range-sum service.
//
// The generator is biased toward a fixed "hot pool" of wide ranges spanning
// the array midpoint, so the sequence has strong temporal locality and a
// recency-based cache shows a measurable advantage over the uncached
// baseline. Point updates are mixed in with a configurable probability to
// trigger invalidation.
//
// Randomness is always injected: the caller supplies a *rand.Rand, and the
// same seed reproduces the same sequence.
//
//	rng := rand.New(rand.NewSource(1))
//	gen, err := workload.New(workload.DefaultConfig(100_000, 50_000), rng)
//	if err != nil {
//		// invalid configuration
//	}
//	ops := gen.Generate()
package workload
