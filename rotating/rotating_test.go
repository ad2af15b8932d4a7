package rotating

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomfilter/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T, capacity uint64, filters int) *Filter {
	t.Helper()
	f, err := New(
		logger.Sugar.WithServiceName("rotating"),
		Config{HashCount: 7, BitCount: 1 << 20, Capacity: capacity, Filters: filters},
		WithSeedSource(rand.NewChaCha8([32]byte{42})),
	)
	require.NoError(t, err)
	return f
}

func count(n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func cycle(n uint64, total uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < total; i++ {
			if !yield(i % n) {
				return
			}
		}
	}
}

func TestRotatingNonRepeating(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 100, 5)
	require.Equal(t, slices.Collect(count(100)), slices.Collect(f.Dedup(count(100))))
}

func TestRotatingRepeating(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 100, 5)
	require.Equal(t, slices.Collect(count(100)), slices.Collect(f.Dedup(cycle(100, 500))))
}

func TestRotatingRotates(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 10, 5)
	require.Equal(t, 1, f.Generations())

	for range f.Dedup(count(100)) {
	}
	assert.Equal(t, 5, f.Generations())
	assert.Equal(t, uint64(10), f.Rotations())

	// The newest generation is fresh.
	assert.Zero(t, f.Generation(4).PopCount())
}

func TestRotatingForgets(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 10, 5)
	for range f.Dedup(count(100)) {
	}

	var included []uint64
	for i := uint64(0); i < 100; i++ {
		if f.Contains(i) {
			included = append(included, i)
		}
	}
	want := slices.Collect(func(yield func(uint64) bool) {
		for i := uint64(60); i < 100; i++ {
			if !yield(i) {
				return
			}
		}
	})
	require.Equal(t, want, included)
}

func TestDedupKey(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	type item struct{ id uint64 }
	items := make([]item, 100)
	for i := range items {
		items[i] = item{id: uint64(i)}
	}

	f := newTestFilter(t, 100, 5)
	found := slices.Collect(Dedup(f, slices.Values(items), func(it item) uint64 { return it.id }))
	require.Equal(t, items, found)

	// Seen items are dropped on a second pass.
	require.Empty(t, slices.Collect(Dedup(f, slices.Values(items), func(it item) uint64 { return it.id })))
}

func TestDedupStopsEarly(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 100, 5)
	var got []uint64
	for h := range f.Dedup(count(100)) {
		got = append(got, h)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []uint64{0, 1, 2}, got)
	require.False(t, f.Contains(3))
}

func TestAddReportsNew(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 2, 2)
	require.True(t, f.Add(1))
	require.False(t, f.Add(1))
	require.True(t, f.Add(2))
	require.Equal(t, 2, f.Generations())

	// 1 and 2 are in the older generation, still retained.
	require.False(t, f.Add(2))
	require.True(t, f.Add(3))
	require.True(t, f.Add(4))

	// Third generation pushed the first out.
	require.Equal(t, 2, f.Generations())
	require.False(t, f.Contains(1))
	require.True(t, f.Contains(3))
}

func TestNewRejects(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("rotating")

	_, err := New(log, Config{HashCount: 1, BitCount: 64, Capacity: 0, Filters: 1})
	require.ErrorIs(t, err, ErrBadCapacity)

	_, err = New(log, Config{HashCount: 1, BitCount: 64, Capacity: 1, Filters: 0})
	require.ErrorIs(t, err, ErrBadFilters)

	_, err = New(log, Config{HashCount: 1, BitCount: 0, Capacity: 1, Filters: 1})
	require.ErrorIs(t, err, bloom.ErrBadBitCount)
}

func TestNewRequiresLogger(t *testing.T) {
	cfg := Config{HashCount: 1, BitCount: 64, Capacity: 1, Filters: 2}

	f, err := New(nil, cfg)
	require.ErrorIs(t, err, ErrNoLogger)
	require.Nil(t, f)

	var log logger.Logger
	_, err = New(log, cfg)
	require.ErrorIs(t, err, ErrNoLogger)
}

func TestConfigErrorsAreNotAllocationOrFormat(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("rotating")

	for _, err := range []error{
		func() error { _, err := New(nil, Config{Capacity: 1, BitCount: 64, Filters: 1}); return err }(),
		func() error { _, err := New(log, Config{Capacity: 0, BitCount: 64, Filters: 1}); return err }(),
		func() error { _, err := New(log, Config{Capacity: 1, BitCount: 64, Filters: 0}); return err }(),
	} {
		require.Error(t, err)
		require.NotErrorIs(t, err, bloom.ErrAllocation)
		require.NotErrorIs(t, err, bloom.ErrFormat)
	}
}

func TestSharedSeeds(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	f := newTestFilter(t, 1, 3)
	f.Add(5)
	f.Add(6)
	require.Equal(t, 3, f.Generations())
	require.Equal(t, f.Generation(0).Seeds(), f.Generation(2).Seeds())
	require.Len(t, f.Generation(0).Seeds(), 7)
}
