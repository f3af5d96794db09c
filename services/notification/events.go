package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"medicore/models"

	"github.com/go-redis/redis/v8"
)

// RedisEventPublisher publishes realtime events on role-addressed channels
// ("room:<role>:<id>"). Socket gateways subscribe to the rooms of the users
// they hold connections for.
type RedisEventPublisher struct {
	Client *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{Client: client}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, role, entityID string, event models.RealtimeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}
	channel := fmt.Sprintf("room:%s:%s", role, entityID)
	if err := p.Client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
