package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentInsight - дневной агрегат по категории
type IncidentInsight struct {
	ID            uuid.UUID        `json:"id"`
	Date          time.Time        `json:"date"`
	Category      IncidentCategory `json:"category"`
	IncidentCount int              `json:"incident_count"`
	AvgSeverity   *float64         `json:"avg_severity"`
	AvgRiskScore  *float64         `json:"avg_risk_score"`
	HighRiskCount int              `json:"high_risk_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

type CategoryCount struct {
	Category IncidentCategory `json:"category"`
	Count    int              `json:"count"`
}

type RiskArea struct {
	Category   IncidentCategory `json:"category"`
	Count      int              `json:"count"`
	AvgRiskPct int              `json:"avg_risk_pct"`
}

type AnalyticsSummary struct {
	Total             int             `json:"total"`
	WeekTotal         int             `json:"week_total"`
	Trend             int             `json:"trend"`
	HighRiskCount     int             `json:"high_risk_count"`
	AvgSeverity       float64         `json:"avg_severity"`
	ActiveAlerts      int             `json:"active_alerts"`
	ByCategory        []CategoryCount `json:"by_category"`
	RiskAreas         []RiskArea      `json:"risk_areas"`
	HighRiskIncidents []*Incident     `json:"high_risk_incidents"`
}

type ResponseTimePoint struct {
	IncidentID   uuid.UUID        `json:"incident_id"`
	Category     IncidentCategory `json:"category"`
	CreatedAt    time.Time        `json:"created_at"`
	ResponseTime int              `json:"response_time"`
}

type ResponseTimeStats struct {
	AverageMinutes float64             `json:"average_minutes"`
	TotalResponses int                 `json:"total_responses"`
	Fastest        int                 `json:"fastest"`
	Slowest        int                 `json:"slowest"`
	TrendPct       float64             `json:"trend_pct"`
	Series         []ResponseTimePoint `json:"series"`
}
