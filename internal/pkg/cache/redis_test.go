package cache_test

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/pkg/cache"
)

func TestRedisCache_GenerateKey(t *testing.T) {
	c := cache.NewRedisCache("localhost:6379", "ordertaking")
	defer func() { _ = c.Close() }()

	assert.Equal(t, "ordertaking:address:abc", c.GenerateKey("address", "abc"))
}

func TestRedisCache_Close(t *testing.T) {
	t.Run("should close the client it wraps", func(t *testing.T) {
		// Given
		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		c := cache.NewRedisCacheWithClient(client, "ordertaking")

		// When
		require.NoError(t, c.Close())

		// Then
		_, err := c.Get(context.Background(), "anything")
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
