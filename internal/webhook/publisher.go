package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_reporting_system/internal/models"
)

const (
	queueKey      = "safety:webhooks"
	deadLetterKey = "safety:webhooks:dead"

	EventIncidentCreated       = "incident.created"
	EventIncidentStatusChanged = "incident.status_changed"
)

// WebhookEvent - уведомление внешней системы об изменении инцидента
type WebhookEvent struct {
	DeliveryID uuid.UUID        `json:"delivery_id"`
	Type       string           `json:"type"`
	Incident   *models.Incident `json:"incident"`
	Actor      *models.Actor    `json:"actor,omitempty"` // пусто для новых инцидентов
	Timestamp  time.Time        `json:"timestamp"`
}

// WebhookPublisher ставит событие в очередь доставки
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - очередь доставки на списке Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{redisClient: client}
}

// Publish кладёт событие в голову очереди, воркер забирает его с хвоста.
// DeliveryID присваивается здесь и не меняется между повторными попытками.
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	if event.DeliveryID == uuid.Nil {
		event.DeliveryID = uuid.New()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event %s: %w", event.Type, err)
	}
	if err := p.redisClient.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue webhook event %s: %w", event.DeliveryID, err)
	}
	return nil
}

// DisabledPublisher используется без WEBHOOK_URL: события не копятся в очереди, которую никто не читает
type DisabledPublisher struct{}

func (DisabledPublisher) Publish(context.Context, WebhookEvent) error { return nil }
