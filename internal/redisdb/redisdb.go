package redisdb

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/itzlabs/clientdesk/internal/config"
)

func NewClient(cfg *config.Config) *redis.Client {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	return redis.NewClient(opt)
}
