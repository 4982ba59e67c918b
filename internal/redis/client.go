// Package redis builds the go-redis clients used to persist simulation snapshots.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

// Config configures a Redis connection. A single address connects to one node;
// several addresses connect to a cluster.
type Config struct {
	Addrs           []string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// ReadOnly routes cluster reads to replicas
	ReadOnly bool
}

// Validate ensures the connection can be attempted
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Addrs) == 0 {
		vb.RequiredField("Addrs")
	}
	for _, addr := range c.Addrs {
		if addr == "" {
			vb.InvalidField("Addrs", "addresses cannot be empty")
			break
		}
	}

	return vb.Build()
}

// NewClient creates a client for a single node
func NewClient(addr string, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	single := *cfg
	single.Addrs = []string{addr}
	return New(&single)
}

// New creates a single-node or cluster client. Connections are opened lazily.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	var tlsConfig *tls.Config
	if cfg.UseTLS {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	if len(cfg.Addrs) > 1 {
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           cfg.Addrs,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			MaxRetries:      cfg.MaxRetries,
			ReadOnly:        cfg.ReadOnly,
			TLSConfig:       tlsConfig,
		}), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:            cfg.Addrs[0],
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		MaxRetries:      cfg.MaxRetries,
		TLSConfig:       tlsConfig,
	}), nil
}

// Ping checks the connection
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
