package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionStoreWithoutRedisAllowsEverything(t *testing.T) {
	store := NewRedisSessionStore(nil)
	ctx := context.Background()

	n, err := store.RegisterFailedLogin(ctx, "a@b.c", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	revoked, err := store.IsTokenRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionStoreRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer container.Terminate(ctx)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	defer rdb.Close()
	store := NewRedisSessionStore(rdb)

	for i := 1; i <= 3; i++ {
		n, err := store.RegisterFailedLogin(ctx, "Owner@Example.com", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, err := store.LoginAttempts(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ttl, err := rdb.TTL(ctx, "login_attempts:owner@example.com").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.ResetLoginAttempts(ctx, "owner@example.com"))
	n, err = store.LoginAttempts(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.RevokeToken(ctx, "abc", time.Minute))
	revoked, err := store.IsTokenRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}
