package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository backs the optional two-factor attempt limiter.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// IncrAttempts bumps the counter under key and returns the new value. The
// TTL is set when the counter is created so attempts age out with the code.
func (r *RedisRepository) IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, "2fa-attempts:"+key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, "2fa-attempts:"+key, ttl)
	}
	return count, nil
}

func (r *RedisRepository) ClearAttempts(ctx context.Context, key string) error {
	return r.client.Del(ctx, "2fa-attempts:"+key).Err()
}
