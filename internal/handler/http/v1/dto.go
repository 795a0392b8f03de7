package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Description string  `json:"description" validate:"required,min=5,max=5000"`
	Category    string  `json:"category" validate:"required,oneof=theft vandalism assault suspicious_activity traffic noise other"`
	Severity    int     `json:"severity" validate:"required,min=1,max=5"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	IsAnonymous bool    `json:"is_anonymous"`
}

// UpdateStatusRequest DTO для смены статуса инцидента.
// Допустимость статуса проверяет сервис, чтобы ответ содержал список статусов.
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

// AnalyzeIncidentRequest DTO для оценки риска без сохранения
// @Description DTO для оценки риска
type AnalyzeIncidentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Severity    int    `json:"severity" validate:"required,min=1,max=5"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              *uuid.UUID `json:"user_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Severity            int        `json:"severity"`
	RiskScore           *float64   `json:"risk_score"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Address             *string    `json:"address"`
	IsAnonymous         bool       `json:"is_anonymous"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	RespondedAt         *time.Time `json:"responded_at"`
	ResolvedAt          *time.Time `json:"resolved_at"`
	ResponseTimeMinutes *int       `json:"response_time_minutes"`
}

// ActorResponse - кто выполнил операцию
type ActorResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// UpdateStatusResponse DTO успешной смены статуса
// @Description DTO успешной смены статуса
type UpdateStatusResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Incident  *IncidentResponse `json:"incident"`
	UpdatedBy ActorResponse     `json:"updated_by"`
}

// ErrorResponse - тело ответа об ошибке
type ErrorResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	Suggestion    string   `json:"suggestion,omitempty"`
	ValidStatuses []string `json:"valid_statuses,omitempty"`
}

// IncidentLogResponse - запись журнала аудита
type IncidentLogResponse struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	UserID     uuid.UUID `json:"user_id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateAlertRequest DTO для ручного оповещения
// @Description DTO для ручного оповещения
type CreateAlertRequest struct {
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	Title      string     `json:"title" validate:"required,min=3,max=255"`
	Message    string     `json:"message" validate:"required,max=2000"`
	Severity   int        `json:"severity" validate:"required,min=1,max=5"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// ChatRequest DTO сообщения ассистенту
// @Description DTO сообщения ассистенту
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatResponse - ответ ассистента
type ChatResponse struct {
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
