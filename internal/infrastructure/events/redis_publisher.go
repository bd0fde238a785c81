package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[events][redis] error parsing connection string: %v", err)
		return nil, err
	}
	return redis.NewClient(opt), nil
}

// RedisPublisher publishes change events as JSON on a pub/sub channel.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev entities.ChangeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}
