package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the service depends on. It is the full
// UniversalClient so single, cluster and failover clients all satisfy it.
type Client interface {
	redis.UniversalClient
}
