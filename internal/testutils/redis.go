// Package testutils provides helpers shared by redis-backed tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Esderin/Standard-of-Iron/internal/redis"
)

// CreateTestRedisClient starts an in-memory redis and returns a client for
// it. The server is closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
