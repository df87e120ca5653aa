package reviewinfra

import (
	"context"
	"fmt"

	"github.com/interviewmate/backend/marketplace/review"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboardCache implements review.Cache on a redis sorted set
type RedisLeaderboardCache struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboardCache creates a new redis-backed leaderboard cache
func NewRedisLeaderboardCache(client *redis.Client, key string) review.Cache {
	return &RedisLeaderboardCache{
		client: client,
		key:    key,
	}
}

// IncrementScore folds a new score into the cached ranking
func (c *RedisLeaderboardCache) IncrementScore(ctx context.Context, email kernel.Email, score int) error {
	if err := c.client.ZIncrBy(ctx, c.key, float64(score), email.String()).Err(); err != nil {
		return fmt.Errorf("increment leaderboard score: %w", err)
	}
	return nil
}

// TopN retrieves the highest-ranked candidates with their totals
func (c *RedisLeaderboardCache) TopN(ctx context.Context, n int64) ([]review.RankedCandidate, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key, 0, n-1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("read leaderboard top: %w", err)
	}

	ranked := make([]review.RankedCandidate, 0, len(results))
	for _, z := range results {
		email, ok := z.Member.(string)
		if !ok {
			continue
		}
		ranked = append(ranked, review.RankedCandidate{
			CandidateEmail: kernel.Email(email),
			TotalScore:     int64(z.Score),
		})
	}

	return ranked, nil
}

// Rebuild replaces the cached ranking wholesale
func (c *RedisLeaderboardCache) Rebuild(ctx context.Context, entries []review.LeaderboardEntry) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.key)
	for i := range entries {
		pipe.ZAdd(ctx, c.key, redis.Z{
			Score:  float64(entries[i].TotalScore),
			Member: entries[i].CandidateEmail.String(),
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("rebuild leaderboard cache: %w", err)
	}

	return nil
}
