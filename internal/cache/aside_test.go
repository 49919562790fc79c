package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	prev := client
	client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		client = prev
	})
	return mr
}

func TestAside_PopulatesAndServesFromCache(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			loads++
			*dest = cachedThing{Name: "guide", Count: 3}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "test:thing", &first, UserTTL, load(&first)))
	assert.Equal(t, 1, loads)

	var second cachedThing
	require.NoError(t, Aside(ctx, "test:thing", &second, UserTTL, load(&second)))
	assert.Equal(t, 1, loads, "second read should be served from cache")
	assert.Equal(t, first, second)
}

func TestAside_LoaderErrorIsNotCached(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var out cachedThing
	wantErr := errors.New("db down")
	err := Aside(ctx, "test:err", &out, UserTTL, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	loads := 0
	require.NoError(t, Aside(ctx, "test:err", &out, UserTTL, func() error {
		loads++
		out = cachedThing{Name: "ok"}
		return nil
	}))
	assert.Equal(t, 1, loads, "failed load must not leave a cache entry behind")
}

func TestAside_NilClientFallsThrough(t *testing.T) {
	prev := client
	client = nil
	t.Cleanup(func() { client = prev })

	loads := 0
	var out cachedThing
	require.NoError(t, Aside(context.Background(), "test:nil", &out, UserTTL, func() error {
		loads++
		return nil
	}))
	require.NoError(t, Aside(context.Background(), "test:nil", &out, UserTTL, func() error {
		loads++
		return nil
	}))
	assert.Equal(t, 2, loads)
}
