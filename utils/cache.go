package utils

import (
	"context"
	"log"
	"time"

	"medicore/config"

	"github.com/go-redis/redis/v8"
)

// EventClient is the Redis client backing the realtime event fan-out.
var EventClient *redis.Client

// InitRedis initializes the Redis event client.
func InitRedis() {
	EventClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := EventClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (events): %v", err)
	}
}

// GetEventClient returns the event client, initializing it on first use.
func GetEventClient() *redis.Client {
	if EventClient == nil {
		InitRedis()
	}
	return EventClient
}
