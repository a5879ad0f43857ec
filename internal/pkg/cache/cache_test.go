package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

var testPolicy = Policy{Stale: time.Minute, Expire: time.Hour}

func newTestCache() (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := New(nil)
	c.now = clock.Now
	return c, clock
}

func counter(calls *int32, value string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		n := atomic.AddInt32(calls, 1)
		return value + "-" + string(rune('0'+n)), nil
	}
}

func TestFetch_MissThenFreshHit(t *testing.T) {
	c, _ := newTestCache()
	var calls int32
	ctx := context.Background()

	v, err := Fetch(ctx, c, "k", testPolicy, []string{"t"}, counter(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, "v-1", v)

	v, err = Fetch(ctx, c, "k", testPolicy, []string{"t"}, counter(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, "v-1", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_StaleServedWhileRevalidating(t *testing.T) {
	c, clock := newTestCache()
	var calls int32
	ctx := context.Background()

	_, err := Fetch(ctx, c, "k", testPolicy, nil, counter(&calls, "v"))
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)

	v, err := Fetch(ctx, c, "k", testPolicy, nil, counter(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, "v-1", v, "stale value is served immediately")

	c.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	v, err = Fetch(ctx, c, "k", testPolicy, nil, counter(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, "v-2", v)
}

func TestFetch_ExpiredLoadsSynchronously(t *testing.T) {
	c, clock := newTestCache()
	var calls int32
	ctx := context.Background()

	_, err := Fetch(ctx, c, "k", testPolicy, nil, counter(&calls, "v"))
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)

	v, err := Fetch(ctx, c, "k", testPolicy, nil, counter(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, "v-2", v)
}

func TestInvalidate_DropsOnlyTaggedEntries(t *testing.T) {
	c, _ := newTestCache()
	var a, b int32
	ctx := context.Background()

	_, _ = Fetch(ctx, c, "artworks", testPolicy, []string{"get-artworks"}, counter(&a, "a"))
	_, _ = Fetch(ctx, c, "artists", testPolicy, []string{"get-artists"}, counter(&b, "b"))
	require.Equal(t, 2, c.Len())

	c.Invalidate("get-artworks")
	assert.Equal(t, 1, c.Len())

	v, _ := Fetch(ctx, c, "artworks", testPolicy, []string{"get-artworks"}, counter(&a, "a"))
	assert.Equal(t, "a-2", v)

	v, _ = Fetch(ctx, c, "artists", testPolicy, []string{"get-artists"}, counter(&b, "b"))
	assert.Equal(t, "b-1", v)
}

func TestInvalidate_EntityTagHitsEveryEntryCarryingIt(t *testing.T) {
	c, _ := newTestCache()
	var calls int32
	ctx := context.Background()

	_, _ = Fetch(ctx, c, "artist:1", testPolicy, []string{"get-artist", "artist-1"}, counter(&calls, "x"))
	_, _ = Fetch(ctx, c, "related:1:a", testPolicy, []string{"get-related-artworks", "artist-1"}, counter(&calls, "x"))
	_, _ = Fetch(ctx, c, "artist:2", testPolicy, []string{"get-artist", "artist-2"}, counter(&calls, "x"))

	c.Invalidate("artist-1")
	assert.Equal(t, 1, c.Len())
}

func TestFetch_InvalidatedDuringLoadIsNotStored(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	v, err := Fetch(ctx, c, "k", testPolicy, []string{"t"}, func(context.Context) (string, error) {
		c.Invalidate("t")
		return "old", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "old", v)
	assert.Equal(t, 0, c.Len())
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()
	boom := errors.New("db down")

	_, err := Fetch(ctx, c, "k", testPolicy, nil, func(context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestFetch_FailedRevalidationKeepsStaleValue(t *testing.T) {
	c, clock := newTestCache()
	ctx := context.Background()

	_, err := Fetch(ctx, c, "k", testPolicy, nil, func(context.Context) (string, error) { return "v", nil })
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	v, err := Fetch(ctx, c, "k", testPolicy, nil, func(context.Context) (string, error) {
		return "", errors.New("db down")
	})
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	c.Wait()
	assert.Equal(t, 1, c.Len())
}

func TestPolicy_CacheControl(t *testing.T) {
	p := Policy{Stale: 5 * time.Minute, Expire: 20 * time.Minute}
	assert.Equal(t, "public, s-maxage=300, stale-while-revalidate=900", p.CacheControl())
}
