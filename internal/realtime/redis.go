package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisBroker - Pub/Sub поверх Redis, канал на каждый тип ресурса
type RedisBroker struct {
	redisClient *redis.Client
	prefix      string
	logger      *logrus.Logger
}

func NewRedisBroker(client *redis.Client, prefix string, logger *logrus.Logger) *RedisBroker {
	return &RedisBroker{
		redisClient: client,
		prefix:      prefix,
		logger:      logger,
	}
}

func (b *RedisBroker) channel(resource string) string {
	return fmt.Sprintf("%s:%s", b.prefix, resource)
}

// Publish публикует событие в канал ресурса
func (b *RedisBroker) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime event: %w", err)
	}
	if err := b.redisClient.Publish(ctx, b.channel(event.Resource), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish realtime event to Redis: %w", err)
	}
	return nil
}

// Subscribe подписывается на канал ресурса
func (b *RedisBroker) Subscribe(ctx context.Context, resource string) (<-chan Event, func() error, error) {
	pubsub := b.redisClient.Subscribe(ctx, b.channel(resource))
	// Receive дожидается подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", resource, err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.WithError(err).WithField("channel", msg.Channel).Warn("Failed to unmarshal realtime event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, pubsub.Close, nil
}
