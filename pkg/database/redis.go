package database

import (
	"context"
	"fmt"
	"log"
	"pathfinder_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis opens the client used for OTP codes and the assessment
// definition cache, and verifies connectivity with a ping.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
