package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes status updates onto Redis pub/sub channels for
// dashboard consumers. Delivery is best-effort; callers decide what to do
// with a publish error (the workflow swallows it).
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisPublisher{rdb: redis.NewClient(opts)}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, topic, data).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
