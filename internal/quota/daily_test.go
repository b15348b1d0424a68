package quota_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"kitten/backend/internal/quota"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func newDaily(t *testing.T, limit int, start time.Time) (*quota.Daily, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: start}
	d := quota.NewDaily(limit)
	d.SetClockForTest(clock.Now)
	return d, clock
}

func TestDaily_TwentySixthRequestIsRejected(t *testing.T) {
	d, _ := newDaily(t, quota.DefaultDailyLimit, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	for i := 1; i <= 25; i++ {
		res := d.Take("uid-1")
		require.True(t, res.Allowed, "request %d", i)
		require.Equal(t, 25-i, res.Remaining)
	}

	res := d.Take("uid-1")
	require.False(t, res.Allowed)
	require.Equal(t, 0, res.Remaining)

	// Still rejected for the rest of the day.
	require.False(t, d.Take("uid-1").Allowed)
}

func TestDaily_ResetsOnNextUTCDay(t *testing.T) {
	d, clock := newDaily(t, 2, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))

	require.True(t, d.Take("uid").Allowed)
	require.True(t, d.Take("uid").Allowed)
	require.False(t, d.Take("uid").Allowed)

	clock.Set(time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC))
	res := d.Take("uid")
	require.True(t, res.Allowed)
	require.Equal(t, 1, res.Remaining)
}

func TestDaily_DayIsUTCNormalized(t *testing.T) {
	amsterdam := time.FixedZone("CET", 3600)
	// 00:30 local on March 2nd is still March 1st in UTC.
	d, clock := newDaily(t, 1, time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC))
	require.True(t, d.Take("uid").Allowed)

	clock.Set(time.Date(2026, 3, 2, 0, 30, 0, 0, amsterdam))
	require.False(t, d.Take("uid").Allowed)
}

func TestDaily_IdentitiesAreIndependent(t *testing.T) {
	d, _ := newDaily(t, 1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	require.True(t, d.Take("a").Allowed)
	require.False(t, d.Take("a").Allowed)
	require.True(t, d.Take("b").Allowed)
}

func TestDaily_Remaining(t *testing.T) {
	d, clock := newDaily(t, 3, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	require.Equal(t, 3, d.Remaining("uid"))
	d.Take("uid")
	require.Equal(t, 2, d.Remaining("uid"))

	clock.Set(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	require.Equal(t, 3, d.Remaining("uid"))
}

func TestDaily_PruneAndSnapshot(t *testing.T) {
	d, clock := newDaily(t, 5, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	d.Take("old")

	clock.Set(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	d.Take("b")
	d.Take("a")
	d.Take("a")

	snap := d.Snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, "a", snap[0].Identity)
	require.Equal(t, 2, snap[0].Count)
	require.Equal(t, 3, snap[0].Remaining)
	require.Equal(t, "2026-03-02", snap[0].Day)
	require.Equal(t, "b", snap[1].Identity)

	require.Equal(t, 1, d.Prune())
	require.Equal(t, 0, d.Prune())
}

func TestDaily_NonPositiveLimitUsesDefault(t *testing.T) {
	require.Equal(t, quota.DefaultDailyLimit, quota.NewDaily(0).Limit())
	require.Equal(t, quota.DefaultDailyLimit, quota.NewDaily(-4).Limit())
	require.Equal(t, 7, quota.NewDaily(7).Limit())
}

func TestDaily_ConcurrentTakeNeverExceedsLimit(t *testing.T) {
	d, _ := newDaily(t, 25, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if d.Take(fmt.Sprintf("uid-%d", i%2)).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, allowed)
}
