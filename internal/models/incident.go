package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusPending    IncidentStatus = "pending"
	StatusReviewing  IncidentStatus = "reviewing"
	StatusDispatched IncidentStatus = "dispatched"
	StatusResolved   IncidentStatus = "resolved"
	StatusDismissed  IncidentStatus = "dismissed"
	StatusFalseAlarm IncidentStatus = "false_alarm"
)

// ValidStatuses перечисляет все допустимые статусы в порядке естественного потока
var ValidStatuses = []IncidentStatus{
	StatusPending,
	StatusReviewing,
	StatusDispatched,
	StatusResolved,
	StatusDismissed,
	StatusFalseAlarm,
}

func (s IncidentStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsOpen - инцидент ещё требует реакции
func (s IncidentStatus) IsOpen() bool {
	return s == StatusPending || s == StatusReviewing || s == StatusDispatched
}

// IncidentCategory - категория инцидента
type IncidentCategory string

const (
	CategoryTheft              IncidentCategory = "theft"
	CategoryVandalism          IncidentCategory = "vandalism"
	CategoryAssault            IncidentCategory = "assault"
	CategorySuspiciousActivity IncidentCategory = "suspicious_activity"
	CategoryTraffic            IncidentCategory = "traffic"
	CategoryNoise              IncidentCategory = "noise"
	CategoryOther              IncidentCategory = "other"
)

var ValidCategories = []IncidentCategory{
	CategoryTheft,
	CategoryVandalism,
	CategoryAssault,
	CategorySuspiciousActivity,
	CategoryTraffic,
	CategoryNoise,
	CategoryOther,
}

func (c IncidentCategory) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Incident struct {
	ID                  uuid.UUID        `json:"id"`
	UserID              *uuid.UUID       `json:"user_id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Category            IncidentCategory `json:"category"`
	Severity            int              `json:"severity"`
	RiskScore           *float64         `json:"risk_score"`
	Latitude            float64          `json:"latitude"`
	Longitude           float64          `json:"longitude"`
	Address             *string          `json:"address"`
	IsAnonymous         bool             `json:"is_anonymous"`
	Status              IncidentStatus   `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	RespondedAt         *time.Time       `json:"responded_at"`
	ResolvedAt          *time.Time       `json:"resolved_at"`
	ResponseTimeMinutes *int             `json:"response_time_minutes"`
}

// IncidentFilter - параметры выборки списка инцидентов
type IncidentFilter struct {
	Status   IncidentStatus
	Category IncidentCategory
	Page     int
	PageSize int
}

// StatusChange - набор полей, которые переход статуса записывает в инцидент.
// Nil-поля не меняются.
type StatusChange struct {
	Status              IncidentStatus
	UpdatedAt           time.Time
	RespondedAt         *time.Time
	ResolvedAt          *time.Time
	ResponseTimeMinutes *int
}

// PlanStatusChange вычисляет изменения для перехода current -> target в момент now.
// Однажды записанные responded_at/resolved_at/response_time_minutes не перезаписываются.
func PlanStatusChange(current *Incident, target IncidentStatus, now time.Time) StatusChange {
	change := StatusChange{
		Status:    target,
		UpdatedAt: now,
	}

	if target == StatusDispatched && current.RespondedAt == nil {
		respondedAt := now
		change.RespondedAt = &respondedAt
	}

	if target == StatusResolved && current.ResolvedAt == nil {
		resolvedAt := now
		change.ResolvedAt = &resolvedAt
		if current.RespondedAt != nil {
			minutes := ResponseMinutes(*current.RespondedAt, resolvedAt)
			change.ResponseTimeMinutes = &minutes
		}
	}
	return change
}

// Apply переносит изменения на копию инцидента
func (c StatusChange) Apply(incident *Incident) *Incident {
	updated := *incident
	updated.Status = c.Status
	updated.UpdatedAt = c.UpdatedAt
	if c.RespondedAt != nil && updated.RespondedAt == nil {
		updated.RespondedAt = c.RespondedAt
	}
	if c.ResolvedAt != nil && updated.ResolvedAt == nil {
		updated.ResolvedAt = c.ResolvedAt
		if c.ResponseTimeMinutes != nil && updated.ResponseTimeMinutes == nil {
			updated.ResponseTimeMinutes = c.ResponseTimeMinutes
		}
	}
	return &updated
}

// ResponseMinutes - время реакции в целых минутах, округление как у math.Round
func ResponseMinutes(respondedAt, resolvedAt time.Time) int {
	return int(math.Round(resolvedAt.Sub(respondedAt).Minutes()))
}

// StatusUpdateResult - результат успешной смены статуса
type StatusUpdateResult struct {
	Incident  *Incident `json:"incident"`
	UpdatedBy Actor     `json:"updated_by"`
	Message   string    `json:"message"`
}
