package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

// IncidentLogRepository - журнал аудита, записи только добавляются
type IncidentLogRepository struct {
	db      DB
	rlsRole string
}

func NewIncidentLogRepository(db DB, rlsRole string) service.IncidentLogRepository {
	return &IncidentLogRepository{db: db, rlsRole: rlsRole}
}

// Insert добавляет запись в журнал от имени actor
func (r *IncidentLogRepository) Insert(ctx context.Context, actor *models.Actor, entry *models.IncidentLog) error {
	query := `
		INSERT INTO incident_logs (incident_id, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := withActor(ctx, r.db, r.rlsRole, actor, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			entry.IncidentID,
			entry.UserID,
			entry.Action,
			entry.Details,
			entry.CreatedAt,
		).Scan(&entry.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to insert incident log: %w", classifyPgError(err))
	}
	return nil
}

// ListByIncident возвращает журнал инцидента, новые записи первыми
func (r *IncidentLogRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentLog, error) {
	query := `
		SELECT id, incident_id, user_id, action, details, created_at
		FROM incident_logs
		WHERE incident_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident logs: %w", classifyPgError(err))
	}
	defer rows.Close()

	entries := make([]*models.IncidentLog, 0)
	for rows.Next() {
		entry := &models.IncidentLog{}
		if err := rows.Scan(
			&entry.ID,
			&entry.IncidentID,
			&entry.UserID,
			&entry.Action,
			&entry.Details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incident log row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}
