package redis

import (
	"context"
	"learning-service/internal/config"
	"log"

	"github.com/redis/go-redis/v9"
)

// Connect returns nil when no address is configured; callers treat a nil
// client as "limiter disabled".
func Connect(cfg *config.Config) *redis.Client {
	if cfg.Redis.Address == "" {
		log.Println("Redis not configured, verification attempt limiting is disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %s", err)
	}
	return client
}
