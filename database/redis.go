package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shvendra/bookmyworker-back/config"
)

var rdb *redis.Client

var rctx = context.Background()

func GetRedisDB() *redis.Client {
	return rdb
}

func ConnectRedis(cfg *config.Config) {
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(rctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
}

// SetRedisValue stores a key with an explicit TTL. Captcha and OTP state
// live here instead of in process memory so they expire and survive restarts.
func SetRedisValue(key, val string, exp time.Duration) error {
	return rdb.Set(rctx, key, val, exp).Err()
}

// GetRedisValue returns (value, found, error); an expired or missing key is
// found=false, not an error.
func GetRedisValue(key string) (string, bool, error) {
	val, err := rdb.Get(rctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func DeleteRedisKey(key string) error {
	return rdb.Del(rctx, key).Err()
}
