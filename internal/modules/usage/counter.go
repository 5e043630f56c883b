// README: Destination popularity counter backed by a Redis sorted set.
package usage

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const destinationsKey = "usage:destinations"

type Counter struct {
	redis *redis.Client
}

func NewCounter(redis *redis.Client) *Counter {
	return &Counter{redis: redis}
}

func (c *Counter) Incr(ctx context.Context, destination string) error {
	return c.redis.ZIncrBy(ctx, destinationsKey, 1, normalizeDestination(destination)).Err()
}

// Top returns the n most requested destinations, highest count first.
func (c *Counter) Top(ctx context.Context, n int) ([]DestinationCount, error) {
	results, err := c.redis.ZRevRangeWithScores(ctx, destinationsKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]DestinationCount, 0, len(results))
	for _, z := range results {
		name, _ := z.Member.(string)
		out = append(out, DestinationCount{Destination: name, Count: int64(z.Score)})
	}
	return out, nil
}

func normalizeDestination(d string) string {
	return strings.ToLower(strings.Join(strings.Fields(d), " "))
}
