package models

import (
	"time"

	"github.com/google/uuid"
)

// LogAction - тег действия в журнале аудита
type LogAction string

const (
	ActionUpdated    LogAction = "updated"
	ActionDispatched LogAction = "dispatched"
	ActionResolved   LogAction = "resolved"
	ActionDismissed  LogAction = "dismissed"
	ActionFalseAlarm LogAction = "false_alarm"
)

// IncidentLog - неизменяемая запись журнала аудита инцидента
type IncidentLog struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	UserID     uuid.UUID `json:"user_id"`
	Action     LogAction `json:"action"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActionForStatus сопоставляет целевой статус тегу журнала.
// Всё, что не имеет собственного тега, пишется как "updated".
func ActionForStatus(status IncidentStatus) LogAction {
	switch status {
	case StatusDismissed:
		return ActionDismissed
	case StatusDispatched:
		return ActionDispatched
	case StatusResolved:
		return ActionResolved
	case StatusFalseAlarm:
		return ActionFalseAlarm
	default:
		return ActionUpdated
	}
}

// DefaultStatusNote - текст записи, если заметка не передана
func DefaultStatusNote(status IncidentStatus) string {
	return "Status changed to " + string(status)
}
