package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

type InsightRepository struct {
	db DB
}

func NewInsightRepository(db DB) service.InsightRepository {
	return &InsightRepository{db: db}
}

// Upsert пересчитывает агрегаты за день: повторный запуск перезаписывает строку (date, category)
func (r *InsightRepository) Upsert(ctx context.Context, insights []*models.IncidentInsight) error {
	query := `
		INSERT INTO incident_insights (date, category, incident_count, avg_severity, avg_risk_score, high_risk_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date, category) DO UPDATE SET
			incident_count = EXCLUDED.incident_count,
			avg_severity = EXCLUDED.avg_severity,
			avg_risk_score = EXCLUDED.avg_risk_score,
			high_risk_count = EXCLUDED.high_risk_count
		RETURNING id, created_at;
	`
	batch := &pgx.Batch{}
	for _, insight := range insights {
		batch.Queue(query,
			insight.Date,
			insight.Category,
			insight.IncidentCount,
			insight.AvgSeverity,
			insight.AvgRiskScore,
			insight.HighRiskCount,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&insight.ID, &insight.CreatedAt)
		})
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert incident insights: %w", classifyPgError(err))
	}
	return nil
}
