package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

type ChatMessage struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Role       ChatRole   `json:"role"`
	Content    string     `json:"content"`
	IncidentID *uuid.UUID `json:"incident_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
