// Package cache provides the optional Redis cache for player profile
// responses. The players pipeline issues one HTTP round-trip per player;
// caching profile bodies lets an operator re-run after a failed load
// without re-crawling the whole league.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProfileTTL bounds how stale a cached profile may be.
const ProfileTTL = 12 * time.Hour

// ProfileCache stores raw player profile payloads keyed by player id.
type ProfileCache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(redisURL string) (*ProfileCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ProfileCache{client: client}, nil
}

// Close closes the Redis connection.
func (pc *ProfileCache) Close() error {
	return pc.client.Close()
}

// Get returns the cached payload for a player, or (nil, false) on a miss.
// Redis errors are treated as misses; the cache is an optimization, never
// a source of failure.
func (pc *ProfileCache) Get(ctx context.Context, playerID int) ([]byte, bool) {
	body, err := pc.client.Get(ctx, profileKey(playerID)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set stores a player's payload with the standard TTL.
func (pc *ProfileCache) Set(ctx context.Context, playerID int, body []byte) {
	pc.client.Set(ctx, profileKey(playerID), body, ProfileTTL)
}

func profileKey(playerID int) string {
	return fmt.Sprintf("rinkside:profile:%d", playerID)
}
