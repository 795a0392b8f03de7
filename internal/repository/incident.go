package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

const incidentColumns = `
	id,
	user_id,
	title,
	description,
	category,
	severity,
	risk_score,
	latitude,
	longitude,
	address,
	is_anonymous,
	status,
	created_at,
	updated_at,
	responded_at,
	resolved_at,
	response_time_minutes`

type IncidentRepository struct {
	db      DB
	rlsRole string
}

func NewIncidentRepository(db DB, rlsRole string) service.IncidentRepository {
	return &IncidentRepository{
		db:      db,
		rlsRole: rlsRole,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.UserID,
		&incident.Title,
		&incident.Description,
		&incident.Category,
		&incident.Severity,
		&incident.RiskScore,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Address,
		&incident.IsAnonymous,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&incident.RespondedAt,
		&incident.ResolvedAt,
		&incident.ResponseTimeMinutes,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Create создает новую запись об инциденте в бд от имени actor
func (r *IncidentRepository) Create(ctx context.Context, actor *models.Actor, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (user_id, title, description, category, severity, risk_score,
			latitude, longitude, location, address, is_anonymous, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			ST_SetSRID(ST_MakePoint($8, $7), 4326)::geography, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := withActor(ctx, r.db, r.rlsRole, actor, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			incident.UserID,
			incident.Title,
			incident.Description,
			incident.Category,
			incident.Severity,
			incident.RiskScore,
			incident.Latitude,
			incident.Longitude,
			incident.Address,
			incident.IsAnonymous,
			incident.Status,
		).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", classifyPgError(err))
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", classifyPgError(err))
	}
	return incident, nil
}

// List возвращает список инцидентов с фильтрами и пагинацией
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + incidentColumns + ` FROM incidents`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	// рассчитываем смещение
	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", classifyPgError(err))
	}
	return collectIncidents(rows)
}

// FindOpenNearby находит открытые инциденты в радиусе от точки
func (r *IncidentRepository) FindOpenNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE
			status IN ('pending', 'reviewing', 'dispatched')
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find open incidents by location: %w", classifyPgError(err))
	}
	return collectIncidents(rows)
}

// ListCreatedBetween возвращает инциденты, созданные в полуинтервале [from, to)
func (r *IncidentRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by period: %w", classifyPgError(err))
	}
	return collectIncidents(rows)
}

// ListWithResponseTime возвращает решённые инциденты с известным временем реакции
func (r *IncidentRepository) ListWithResponseTime(ctx context.Context, since time.Time) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE response_time_minutes IS NOT NULL AND created_at >= $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list response times: %w", classifyPgError(err))
	}
	return collectIncidents(rows)
}

// updateStatusQuery: responded_at и resolved_at пишутся один раз,
// минуты реакции берутся от responded_at, уже сохранённого в строке.
const updateStatusQuery = `
	UPDATE incidents SET
		status = $2,
		updated_at = $3,
		responded_at = COALESCE(responded_at, $4::timestamptz),
		resolved_at = COALESCE(resolved_at, $5::timestamptz),
		response_time_minutes = CASE
			WHEN resolved_at IS NULL AND $5::timestamptz IS NOT NULL AND responded_at IS NOT NULL
			THEN ROUND((EXTRACT(EPOCH FROM ($5::timestamptz - responded_at)) / 60)::numeric)::int
			ELSE response_time_minutes
		END
	WHERE id = $1
	RETURNING ` + incidentColumns + `;`

// UpdateStatus применяет смену статуса одним условным UPDATE.
// Уже записанные responded_at/resolved_at не перезаписываются даже при гонке двух запросов,
// время реакции считается по значению responded_at в самой строке.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, actor *models.Actor, id uuid.UUID, change models.StatusChange) (*models.Incident, error) {
	var updated *models.Incident
	err := withActor(ctx, r.db, r.rlsRole, actor, func(tx pgx.Tx) error {
		var err error
		updated, err = scanIncident(tx.QueryRow(ctx, updateStatusQuery,
			id,
			change.Status,
			change.UpdatedAt,
			change.RespondedAt,
			change.ResolvedAt,
		))
		return err
	})
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update incident status: %w", classifyPgError(err))
	}

	return nil, missingRowError(ctx, r.db, "incidents", id)
}

