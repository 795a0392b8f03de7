package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

const alertColumns = `id, incident_id, title, message, severity, is_active, created_at, expires_at`

const deactivateAlertQuery = `UPDATE alerts SET is_active = false WHERE id = $1 RETURNING ` + alertColumns + `;`

const expireAlertsQuery = `
	UPDATE alerts SET is_active = false
	WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1
	RETURNING ` + alertColumns + `;`

type AlertRepository struct {
	db      DB
	rlsRole string
}

func NewAlertRepository(db DB, rlsRole string) service.AlertRepository {
	return &AlertRepository{db: db, rlsRole: rlsRole}
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.IncidentID,
		&alert.Title,
		&alert.Message,
		&alert.Severity,
		&alert.IsActive,
		&alert.CreatedAt,
		&alert.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create сохраняет оповещение. Вызывается сервисом от имени системы.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (incident_id, title, message, severity, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.IncidentID,
		alert.Title,
		alert.Message,
		alert.Severity,
		alert.IsActive,
		alert.ExpiresAt,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", classifyPgError(err))
	}
	return nil
}

// List возвращает оповещения, новые первыми; active=true оставляет только действующие
func (r *AlertRepository) List(ctx context.Context, active bool) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts`
	if active {
		query += ` WHERE is_active AND (expires_at IS NULL OR expires_at > NOW())`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", classifyPgError(err))
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM alerts
		WHERE is_active AND (expires_at IS NULL OR expires_at > NOW());
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active alerts: %w", classifyPgError(err))
	}
	return count, nil
}

// Deactivate снимает оповещение от имени actor
func (r *AlertRepository) Deactivate(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Alert, error) {
	var alert *models.Alert
	err := withActor(ctx, r.db, r.rlsRole, actor, func(tx pgx.Tx) error {
		var err error
		alert, err = scanAlert(tx.QueryRow(ctx, deactivateAlertQuery, id))
		return err
	})
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to deactivate alert: %w", classifyPgError(err))
	}
	return nil, missingRowError(ctx, r.db, "alerts", id)
}

// ExpireStale деактивирует оповещения, срок которых истёк к моменту now, и возвращает их
func (r *AlertRepository) ExpireStale(ctx context.Context, now time.Time) ([]*models.Alert, error) {
	rows, err := r.db.Query(ctx, expireAlertsQuery, now)
	if err != nil {
		return nil, fmt.Errorf("failed to expire alerts: %w", classifyPgError(err))
	}
	defer rows.Close()

	expired := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expired alert: %w", err)
		}
		expired = append(expired, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to expire alerts: %w", classifyPgError(err))
	}
	return expired, nil
}
