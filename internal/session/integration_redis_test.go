package session

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisURL string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container := mustStartRedis(ctx)
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustStartRedis(ctx context.Context) *tcredis.RedisContainer {
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}

	redisURL, err = container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container connection string: %s", err)
	}
	return container
}

func newRedisRegistry(t *testing.T, ttl time.Duration) *Redis {
	t.Helper()
	registry, err := NewRedis(redisURL, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { registry.Close() })
	return registry
}

func TestRedisSaveResolve(t *testing.T) {
	registry := newRedisRegistry(t, 0)

	require.NoError(t, registry.Save("redis-token-1", 42))

	voterId, err := registry.Resolve("redis-token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), voterId)
}

func TestRedisUnknownToken(t *testing.T) {
	registry := newRedisRegistry(t, 0)

	_, err := registry.Resolve("never-issued")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisDelete(t *testing.T) {
	registry := newRedisRegistry(t, 0)

	require.NoError(t, registry.Save("redis-token-2", 42))
	require.NoError(t, registry.Delete("redis-token-2"))

	_, err := registry.Resolve("redis-token-2")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// deleting an unknown token is not an error
	assert.NoError(t, registry.Delete("redis-token-2"))
}

func TestRedisExpiry(t *testing.T) {
	registry := newRedisRegistry(t, 100*time.Millisecond)

	require.NoError(t, registry.Save("redis-token-3", 42))

	_, err := registry.Resolve("redis-token-3")
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = registry.Resolve("redis-token-3")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisZeroTTLNeverExpires(t *testing.T) {
	registry := newRedisRegistry(t, 0)

	require.NoError(t, registry.Save("redis-token-4", 42))
	time.Sleep(200 * time.Millisecond)

	voterId, err := registry.Resolve("redis-token-4")
	require.NoError(t, err)
	assert.Equal(t, int64(42), voterId)
}

func TestRedisBadURL(t *testing.T) {
	_, err := NewRedis("not-a-redis-url", 0)
	assert.Error(t, err)
}
