// Package bench measures wall-clock time for full passes over workload
// operation sequences, comparing the cached range-sum service against the
// uncached baseline on identical inputs.
//
// The clock is injectable so runs are testable without real sleeping:
//
//	r := bench.NewRunner(bench.WithClock(fakeClock))
//	cmp, err := r.Compare(svc, base, ops)
//	fmt.Printf("speedup x%.1f\n", cmp.Speedup())
package bench
