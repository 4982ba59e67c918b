package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the Redis surface the snapshot store depends on. Single-node and cluster
// clients both satisfy it.
type Client interface {
	redis.UniversalClient
}
