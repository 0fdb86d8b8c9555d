package cache

import (
	"Nova/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Auth,
		DB:       conf.Redis.Database,
	})
}
