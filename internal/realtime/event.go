package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ResourceIncidents = "incidents"
	ResourceAlerts    = "alerts"

	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
)

// Event - изменение ресурса после успешного коммита
type Event struct {
	Resource  string          `json:"resource"`
	Type      string          `json:"type"`
	ID        uuid.UUID       `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewEvent(resource, eventType string, id uuid.UUID, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s event payload: %w", resource, err)
	}
	return Event{
		Resource:  resource,
		Type:      eventType,
		ID:        id,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// IsKnownResource проверяет, что на ресурс можно подписаться
func IsKnownResource(resource string) bool {
	return resource == ResourceIncidents || resource == ResourceAlerts
}

// Publisher публикует события изменений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber выдаёт канал событий одного ресурса; канал закрывается после отмены ctx или вызова cancel
type Subscriber interface {
	Subscribe(ctx context.Context, resource string) (<-chan Event, func() error, error)
}
