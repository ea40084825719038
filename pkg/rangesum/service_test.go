package rangesum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihorborys/rangecache/pkg/cache"
	"github.com/ihorborys/rangecache/pkg/rangesum"
	"github.com/ihorborys/rangecache/pkg/workload"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("nil array", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(nil, 10)
		assert.ErrorIs(t, err, rangesum.ErrNilArray)
		assert.Nil(t, svc)
	})

	t.Run("invalid capacity", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1}), 0)
		assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
		assert.Nil(t, svc)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2}), 10)
		require.NoError(t, err)
		assert.Equal(t, 2, svc.Len())
		assert.Equal(t, 0, svc.CacheLen())
	})
}

func TestService_Sum(t *testing.T) {
	t.Parallel()

	t.Run("miss computes and caches", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3, 4, 5}), 10)
		require.NoError(t, err)

		sum, err := svc.Sum(1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(9), sum)
		assert.Equal(t, 1, svc.CacheLen())

		// Second read is a hit and returns the same value.
		sum, err = svc.Sum(1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(9), sum)

		hits, misses := svc.CacheStats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
	})

	t.Run("invalid input fails fast", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3}), 10)
		require.NoError(t, err)

		_, err = svc.Sum(2, 1)
		assert.ErrorIs(t, err, rangesum.ErrInvalidRange)

		_, err = svc.Sum(0, 3)
		assert.ErrorIs(t, err, rangesum.ErrIndexOutOfRange)

		// Rejected queries must not populate the cache.
		assert.Equal(t, 0, svc.CacheLen())
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	t.Run("invalidates covering ranges and recomputes", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3, 4, 5}), 10)
		require.NoError(t, err)

		sum, err := svc.Sum(1, 3)
		require.NoError(t, err)
		require.Equal(t, int64(9), sum)

		require.NoError(t, svc.Update(2, 100))
		assert.Equal(t, 0, svc.CacheLen(), "(1,3) covers index 2 and must be dropped")

		sum, err = svc.Sum(1, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(106), sum)
	})

	t.Run("keeps non-covering ranges", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3, 4, 5}), 10)
		require.NoError(t, err)

		_, err = svc.Sum(0, 1)
		require.NoError(t, err)
		_, err = svc.Sum(3, 4)
		require.NoError(t, err)
		_, err = svc.Sum(1, 3)
		require.NoError(t, err)
		require.Equal(t, 3, svc.CacheLen())

		require.NoError(t, svc.Update(2, 100))
		assert.Equal(t, 2, svc.CacheLen(), "only (1,3) covers index 2")

		// Survivors answer from cache with their prior values.
		hitsBefore, _ := svc.CacheStats()
		sum, err := svc.Sum(0, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), sum)
		sum, err = svc.Sum(3, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(9), sum)
		hitsAfter, _ := svc.CacheStats()
		assert.Equal(t, hitsBefore+2, hitsAfter)
	})

	t.Run("boundary indices invalidate", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3, 4, 5}), 10)
		require.NoError(t, err)

		_, err = svc.Sum(1, 3)
		require.NoError(t, err)

		require.NoError(t, svc.Update(1, 50))
		assert.Equal(t, 0, svc.CacheLen(), "left boundary counts as covered")

		_, err = svc.Sum(1, 3)
		require.NoError(t, err)
		require.NoError(t, svc.Update(3, 50))
		assert.Equal(t, 0, svc.CacheLen(), "right boundary counts as covered")
	})

	t.Run("out of bounds leaves no observable effect", func(t *testing.T) {
		t.Parallel()
		svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3}), 10)
		require.NoError(t, err)

		_, err = svc.Sum(0, 2)
		require.NoError(t, err)

		err = svc.Update(3, 1)
		assert.ErrorIs(t, err, rangesum.ErrIndexOutOfRange)
		assert.Equal(t, 1, svc.CacheLen(), "failed update must not invalidate")

		sum, err := svc.Sum(0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(6), sum)
	})
}

func TestService_Apply(t *testing.T) {
	t.Parallel()

	svc, err := rangesum.NewService(rangesum.NewArray([]int64{1, 2, 3, 4, 5}), 10)
	require.NoError(t, err)

	require.NoError(t, svc.Apply(rangesum.RangeOp(0, 4)))
	require.NoError(t, svc.Apply(rangesum.UpdateOp(0, 10)))

	sum, err := svc.Sum(0, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(24), sum)

	err = svc.Apply(rangesum.Op{})
	assert.ErrorIs(t, err, rangesum.ErrUnknownOp)
}

// The cached service must agree with the uncached baseline on every query of
// an arbitrary interleaving of reads and writes.
func TestService_MatchesBaseline(t *testing.T) {
	t.Parallel()

	const (
		arraySize = 200
		numOps    = 5000
		capacity  = 16
	)

	rng := rand.New(rand.NewSource(42))
	arr := rangesum.RandomArray(rng, arraySize)

	svc, err := rangesum.NewService(arr.Clone(), capacity)
	require.NoError(t, err)
	base, err := rangesum.NewBaseline(arr.Clone())
	require.NoError(t, err)

	gen, err := workload.New(workload.Config{
		ArraySize:         arraySize,
		NumOps:            numOps,
		HotPoolSize:       10,
		HotProbability:    0.8,
		UpdateProbability: 0.2,
	}, rng)
	require.NoError(t, err)

	for _, op := range gen.Generate() {
		switch op.Kind {
		case rangesum.OpRange:
			got, err := svc.Sum(op.Left, op.Right)
			require.NoError(t, err)
			want, err := base.Sum(op.Left, op.Right)
			require.NoError(t, err)
			require.Equal(t, want, got, "divergence on range %d..%d", op.Left, op.Right)
		case rangesum.OpUpdate:
			require.NoError(t, svc.Update(op.Index, op.Value))
			require.NoError(t, base.Update(op.Index, op.Value))
		}
	}

	hits, misses := svc.CacheStats()
	assert.Positive(t, hits, "hot workload should produce cache hits")
	assert.Positive(t, misses)
}

func TestBaseline(t *testing.T) {
	t.Parallel()

	t.Run("nil array", func(t *testing.T) {
		t.Parallel()
		base, err := rangesum.NewBaseline(nil)
		assert.ErrorIs(t, err, rangesum.ErrNilArray)
		assert.Nil(t, base)
	})

	t.Run("sum and update", func(t *testing.T) {
		t.Parallel()
		base, err := rangesum.NewBaseline(rangesum.NewArray([]int64{1, 2, 3}))
		require.NoError(t, err)

		sum, err := base.Sum(0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(6), sum)

		require.NoError(t, base.Update(1, 10))
		sum, err = base.Sum(0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(14), sum)
	})
}
