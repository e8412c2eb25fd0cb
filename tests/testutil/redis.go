package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// GetTestRedisAddr returns the address of the Redis used by integration tests.
func GetTestRedisAddr() string {
	if addr := os.Getenv("REDIS_TEST_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// SetupRedisTest connects to the test Redis, flushes the selected database
// and returns a cleanup function.
func SetupRedisTest(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr: GetTestRedisAddr(),
		DB:   15,
	})
	require.NoError(t, client.Ping(ctx).Err(), "redis not reachable")
	require.NoError(t, client.FlushDB(ctx).Err(), "failed to flush redis")

	cleanup := func() {
		client.FlushDB(ctx)
		client.Close()
	}
	return client, cleanup
}
