package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_MissFreshStale(t *testing.T) {
	store := NewStore()

	_, status := store.Get("absent")
	assert.Equal(t, Miss, status)

	store.Set("key", "value", time.Minute)
	v, status := store.Get("key")
	assert.Equal(t, Fresh, status)
	assert.Equal(t, "value", v)

	// Move the clock past the stale time
	store.nowFunc = func() time.Time { return time.Now().Add(2 * time.Minute) }
	v, status = store.Get("key")
	assert.Equal(t, Stale, status)
	assert.Equal(t, "value", v, "stale entries are still readable")
}

func TestInvalidate_MarksStaleNotGone(t *testing.T) {
	store := NewStore()
	store.Set("a", 1, time.Minute)
	store.Set("b", 2, time.Minute)

	store.Invalidate("a", "missing")

	_, status := store.Get("a")
	assert.Equal(t, Stale, status)
	_, status = store.Get("b")
	assert.Equal(t, Fresh, status)
}

func TestInvalidatePrefix(t *testing.T) {
	store := NewStore()
	store.Set("exchanges", 1, time.Minute)
	store.Set("exchanges:abc", 2, time.Minute)
	store.Set("exchanges:type=Buy", 3, time.Minute)
	store.Set("exchangesOther", 4, time.Minute)

	store.InvalidatePrefix("exchanges")

	for _, key := range []string{"exchanges", "exchanges:abc", "exchanges:type=Buy"} {
		_, status := store.Get(key)
		assert.Equal(t, Stale, status, key)
	}

	// Prefix match is segment-aware, not a raw string prefix
	_, status := store.Get("exchangesOther")
	assert.Equal(t, Fresh, status)
}

func TestRemove(t *testing.T) {
	store := NewStore()
	store.Set("key", 1, time.Minute)
	store.Remove("key")

	_, status := store.Get("key")
	assert.Equal(t, Miss, status)
	assert.Equal(t, 0, store.Len())
}

func TestFetch_MissCallsFetcherOnce(t *testing.T) {
	store := NewStore()
	var calls int32

	fn := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "fetched", nil
	}

	v, err := store.Fetch(context.Background(), "key", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)

	v, err = store.Fetch(context.Background(), "key", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_ErrorIsNotCached(t *testing.T) {
	store := NewStore()
	var calls int32

	boom := errors.New("origin down")
	fn := func(ctx context.Context) (interface{}, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := store.Fetch(context.Background(), "key", time.Minute, fn)
	assert.ErrorIs(t, err, boom)

	v, err := store.Fetch(context.Background(), "key", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestFetch_StaleServesOldValueAndRefreshesInBackground(t *testing.T) {
	store := NewStore()
	store.Set("key", "old", time.Minute)
	store.nowFunc = func() time.Time { return time.Now().Add(2 * time.Minute) }

	refreshed := make(chan struct{})
	v, err := store.Fetch(context.Background(), "key", time.Minute, func(ctx context.Context) (interface{}, error) {
		close(refreshed)
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "old", v, "stale read returns the old value immediately")

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("background refresh never ran")
	}

	assert.Eventually(t, func() bool {
		v, _ := store.Get("key")
		return v == "new"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFetch_ConcurrentMissesCollapseToOneCall(t *testing.T) {
	store := NewStore()
	var calls int32

	fn := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return "shared", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Fetch(context.Background(), "key", time.Minute, fn)
			assert.NoError(t, err)
			assert.Equal(t, "shared", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
