// Package redis builds the go-redis client used for level storage.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance. Connections are
// opened lazily; use Ping to check reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		DialTimeout:     opts.DialTimeout,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping verifies the server answers within ctx.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
