package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VasaraSujal/king-hub/internal/catalog"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	c := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return c, mr, cleanup
}

func TestGet_Success(t *testing.T) {
	sut, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	items := []catalog.Item{
		{ID: "1", Name: "Pizza Margherita", Price: 200},
		{ID: "2", Name: "Veg Pizza", Price: 180},
	}
	data, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, mr.Set("menu:pizza", string(data)))

	got, err := sut.Get(context.Background(), "Pizza")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Pizza Margherita", got[0].Name)
}

func TestGet_Miss(t *testing.T) {
	sut, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := sut.Get(context.Background(), "Pizza")
	assert.ErrorIs(t, err, catalog.ErrCacheMiss)
}

func TestGet_CorruptEntry(t *testing.T) {
	sut, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set("menu:pizza", "not json"))

	_, err := sut.Get(context.Background(), "Pizza")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestSet_StoresWithTTL(t *testing.T) {
	sut, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	items := []catalog.Item{{ID: "1", Name: "Burger", Price: 130}}
	require.NoError(t, sut.Set(context.Background(), "Burger", items))

	assert.True(t, mr.Exists("menu:burger"))
	assert.Greater(t, mr.TTL("menu:burger").Minutes(), 14.0)

	got, err := sut.Get(context.Background(), "Burger")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Burger", got[0].Name)
}

func TestDelete(t *testing.T) {
	sut, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, sut.Set(context.Background(), "Pizza", []catalog.Item{{ID: "1"}}))
	require.NoError(t, sut.Delete(context.Background(), "Pizza"))
	assert.False(t, mr.Exists("menu:pizza"))
}
