package documents

import (
	"github.com/redis/go-redis/v9"

	"github.com/marvelous-hawke/runeforge/internal/events"
)

// NewRedis creates a new Redis-backed document repository
func NewRedis(client redis.UniversalClient, bus *events.Bus) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:   client,
		EventBus: bus,
	})
}
