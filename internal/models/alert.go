package models

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	ID         uuid.UUID  `json:"id"`
	IncidentID *uuid.UUID `json:"incident_id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Severity   int        `json:"severity"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}
