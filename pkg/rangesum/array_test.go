package rangesum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihorborys/rangecache/pkg/rangesum"
)

func TestArray_Access(t *testing.T) {
	t.Parallel()

	t.Run("at and set", func(t *testing.T) {
		t.Parallel()
		arr := rangesum.NewArray([]int64{1, 2, 3})

		v, err := arr.At(1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)

		require.NoError(t, arr.Set(1, 42))
		v, err = arr.At(1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("owns a copy of the input", func(t *testing.T) {
		t.Parallel()
		src := []int64{1, 2, 3}
		arr := rangesum.NewArray(src)
		src[0] = 99

		v, err := arr.At(0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		arr := rangesum.NewArray([]int64{1, 2, 3})

		_, err := arr.At(-1)
		assert.ErrorIs(t, err, rangesum.ErrIndexOutOfRange)

		_, err = arr.At(3)
		assert.ErrorIs(t, err, rangesum.ErrIndexOutOfRange)

		err = arr.Set(5, 1)
		assert.ErrorIs(t, err, rangesum.ErrIndexOutOfRange)
	})
}

func TestArray_Sum(t *testing.T) {
	t.Parallel()

	arr := rangesum.NewArray([]int64{1, 2, 3, 4, 5})

	tests := []struct {
		name        string
		left, right int
		want        int64
		expectError error
	}{
		{name: "full range", left: 0, right: 4, want: 15},
		{name: "single element", left: 2, right: 2, want: 3},
		{name: "prefix", left: 0, right: 1, want: 3},
		{name: "suffix", left: 3, right: 4, want: 9},
		{name: "inverted", left: 3, right: 1, expectError: rangesum.ErrInvalidRange},
		{name: "negative left", left: -1, right: 2, expectError: rangesum.ErrIndexOutOfRange},
		{name: "right past end", left: 0, right: 5, expectError: rangesum.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sum, err := arr.Sum(tt.left, tt.right)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, sum)
			}
		})
	}
}

func TestArray_Clone(t *testing.T) {
	t.Parallel()

	arr := rangesum.NewArray([]int64{1, 2, 3})
	clone := arr.Clone()

	require.NoError(t, arr.Set(0, 99))

	v, err := clone.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "clone must be independent of the original")
}

func TestRandomArray(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	arr := rangesum.RandomArray(rng, 50)

	require.Equal(t, 50, arr.Len())
	for i := 0; i < 50; i++ {
		v, err := arr.At(i)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, int64(1))
		assert.LessOrEqual(t, v, int64(100))
	}
}

func TestKey_Contains(t *testing.T) {
	t.Parallel()

	key := rangesum.Key{Left: 2, Right: 5}

	assert.True(t, key.Contains(2))
	assert.True(t, key.Contains(4))
	assert.True(t, key.Contains(5))
	assert.False(t, key.Contains(1))
	assert.False(t, key.Contains(6))
}
