package availability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

func TestKey_OrderIndependent(t *testing.T) {
	a := booking("a", "2024-06-01", "2024-06-03")
	b := booking("b", "2024-07-01", "2024-07-03")

	assert.Equal(t,
		availability.Key("v1", []domain.Booking{a, b}),
		availability.Key("v1", []domain.Booking{b, a}),
	)
	assert.NotEqual(t,
		availability.Key("v1", []domain.Booking{a}),
		availability.Key("v1", []domain.Booking{a, b}),
	)
	assert.NotEqual(t,
		availability.Key("v1", []domain.Booking{a}),
		availability.Key("v2", []domain.Booking{a}),
	)
}

func TestMemoryCache_Evicts(t *testing.T) {
	ctx := context.Background()
	c := availability.NewMemoryCache(2)

	require.NoError(t, c.Put(ctx, "a", availability.NewDaySet()))
	require.NoError(t, c.Put(ctx, "b", availability.NewDaySet()))
	_, ok, _ := c.Get(ctx, "a") // a is now most recent
	require.True(t, ok)
	require.NoError(t, c.Put(ctx, "c", availability.NewDaySet()))

	assert.Equal(t, 2, c.Len())
	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok, "b should have been evicted")
	_, ok, _ = c.Get(ctx, "a")
	assert.True(t, ok)
}

func TestNewMemoryCache_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { availability.NewMemoryCache(0) })
}

type countingCache struct {
	availability.Cache
	gets, puts int
}

func (c *countingCache) Get(ctx context.Context, key string) (availability.DaySet, bool, error) {
	c.gets++
	return c.Cache.Get(ctx, key)
}

func (c *countingCache) Put(ctx context.Context, key string, set availability.DaySet) error {
	c.puts++
	return c.Cache.Put(ctx, key, set)
}

func TestMemo_ComputesOnceForSameVersion(t *testing.T) {
	ctx := context.Background()
	cache := &countingCache{Cache: availability.NewMemoryCache(8)}
	memo := availability.NewMemo(cache, zap.NewNop())
	bookings := []domain.Booking{booking("a", "2024-06-01", "2024-06-03")}

	first := memo.BookedDates(ctx, "v1", bookings)
	second := memo.BookedDates(ctx, "v1", bookings)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.puts)

	// A new booking is a new version.
	bookings = append(bookings, booking("b", "2024-06-10", "2024-06-10"))
	third := memo.BookedDates(ctx, "v1", bookings)
	assert.Equal(t, 4, third.Len())
	assert.Equal(t, 2, cache.puts)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (availability.DaySet, bool, error) {
	return nil, false, errors.New("down")
}

func (brokenCache) Put(context.Context, string, availability.DaySet) error {
	return errors.New("down")
}

func TestMemo_FallsBackWhenCacheFails(t *testing.T) {
	memo := availability.NewMemo(brokenCache{}, nil)
	set := memo.BookedDates(context.Background(), "v1", []domain.Booking{booking("a", "2024-06-01", "2024-06-02")})
	assert.Equal(t, 2, set.Len())
}

func TestMemo_NilCache(t *testing.T) {
	var memo *availability.Memo
	set := memo.BookedDates(context.Background(), "v1", []domain.Booking{booking("a", "2024-06-01", "2024-06-01")})
	assert.Equal(t, 1, set.Len())
}
