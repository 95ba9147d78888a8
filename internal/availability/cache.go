package availability

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"holidaze/internal/domain"
)

// Cache stores computed booked sets by key.
type Cache interface {
	Get(ctx context.Context, key string) (DaySet, bool, error)
	Put(ctx context.Context, key string, set DaySet) error
}

// Key identifies the booked set of a venue at a given booking-list version.
// The version is a hash over booking IDs and dates, independent of order, so
// a refetch that returns the same bookings hits the same entry.
func Key(venueID domain.VenueID, bookings []domain.Booking) string {
	lines := make([]string, len(bookings))
	for i, b := range bookings {
		lines[i] = b.ID.String() + "|" + FormatDate(DayOf(b.DateFrom)) + "|" + FormatDate(DayOf(b.DateTo))
	}
	sort.Strings(lines)
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return venueID.String() + ":" + hex.EncodeToString(sum[:8])
}

// Memo computes booked sets through a Cache. Cache failures are logged and
// the set is computed directly.
type Memo struct {
	cache Cache
	log   *zap.Logger
}

// NewMemo returns a Memo over cache. A nil cache disables memoization.
func NewMemo(cache Cache, log *zap.Logger) *Memo {
	if log == nil {
		log = zap.NewNop()
	}
	return &Memo{cache: cache, log: log}
}

// BookedDates returns the booked set of the venue for this booking list.
func (m *Memo) BookedDates(ctx context.Context, venueID domain.VenueID, bookings []domain.Booking) DaySet {
	if m == nil || m.cache == nil {
		return ComputeBookedDates(bookings)
	}
	key := Key(venueID, bookings)
	set, ok, err := m.cache.Get(ctx, key)
	if err != nil {
		m.log.Warn("booked dates cache get failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		m.log.Debug("booked dates cache hit", zap.String("key", key))
		return set
	}
	set = ComputeBookedDates(bookings)
	if err := m.cache.Put(ctx, key, set); err != nil {
		m.log.Warn("booked dates cache put failed", zap.String("key", key), zap.Error(err))
	}
	return set
}

type lruEntry struct {
	key   string
	value DaySet
}

// MemoryCache is a bounded, goroutine-safe LRU Cache.
type MemoryCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewMemoryCache returns an LRU cache holding at most capacity sets.
// The capacity must be positive, otherwise it panics.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		panic("availability: cache capacity must be positive")
	}
	return &MemoryCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Get returns the set stored under key and marks it as recently used.
func (c *MemoryCache) Get(_ context.Context, key string) (DaySet, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry).value, true, nil
	}
	return nil, false, nil
}

// Put stores set under key, evicting the least recently used entry when full.
func (c *MemoryCache) Put(_ context.Context, key string, set DaySet) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry).value = set
		return nil
	}
	c.items[key] = c.eviction.PushFront(&lruEntry{key: key, value: set})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
	return nil
}

// Len returns the number of cached sets.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

var _ Cache = (*MemoryCache)(nil)
