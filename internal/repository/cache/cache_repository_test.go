package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCmdable answers Get/Set/Del from a map, other commands are not used
type fakeCmdable struct {
	redis.Cmdable
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCmdable) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		repo := NewCacheRepositoryWithClient(newFakeCmdable(), zap.NewNop())

		val, err := repo.Get(ctx, "tripapi:metrics:")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set get delete", func(t *testing.T) {
		client := newFakeCmdable()
		repo := NewCacheRepositoryWithClient(client, zap.NewNop())

		require.NoError(t, repo.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))
		assert.Equal(t, time.Minute, client.ttls["k"])

		val, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), val)

		require.NoError(t, repo.Delete(ctx, "k"))
		val, err = repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("client errors are wrapped", func(t *testing.T) {
		client := newFakeCmdable()
		client.err = errors.New("connection refused")
		repo := NewCacheRepositoryWithClient(client, zap.NewNop())

		_, err := repo.Get(ctx, "k")
		assert.ErrorContains(t, err, "cache get error")
		assert.ErrorContains(t, repo.Set(ctx, "k", []byte("v"), time.Second), "cache set error")
		assert.ErrorContains(t, repo.Delete(ctx, "k"), "cache delete error")
	})
}
