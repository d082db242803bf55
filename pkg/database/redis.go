package database

import (
	"context"
	"fmt"
	"time"

	"retreat-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the availability cache client. Returns nil when the
// cache is disabled in config.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if !config.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
