package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const highRiskThreshold = 0.7

// InsightRepository хранит дневные агрегаты
type InsightRepository interface {
	Upsert(ctx context.Context, insights []*models.IncidentInsight) error
}

type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	ResponseTimes(ctx context.Context) (*models.ResponseTimeStats, error)
	BuildDailyInsights(ctx context.Context, day time.Time) ([]*models.IncidentInsight, error)
}

type analyticsService struct {
	incidents IncidentRepository
	alerts    AlertRepository
	insights  InsightRepository
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAnalyticsService(incidents IncidentRepository, alerts AlertRepository, insights InsightRepository, logger *logrus.Logger) AnalyticsService {
	return &analyticsService{
		incidents: incidents,
		alerts:    alerts,
		insights:  insights,
		logger:    logger,
		now:       time.Now,
	}
}

// Summary - сводка за последние 30 дней
func (s *analyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Summary",
	})
	now := s.now().UTC()

	incidents, err := s.incidents.ListCreatedBetween(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		log.WithError(err).Error("Failed to load incidents for summary")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}
	activeAlerts, err := s.alerts.CountActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count active alerts")
		return nil, fmt.Errorf("service: could not count alerts: %w", err)
	}

	summary := summarize(incidents, now)
	summary.ActiveAlerts = activeAlerts
	return summary, nil
}

func summarize(incidents []*models.Incident, now time.Time) *models.AnalyticsSummary {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	summary := &models.AnalyticsSummary{
		ByCategory:        []models.CategoryCount{},
		RiskAreas:         []models.RiskArea{},
		HighRiskIncidents: []*models.Incident{},
	}

	var severitySum, prevWeek int
	counts := make(map[models.IncidentCategory]int)
	riskTotals := make(map[models.IncidentCategory]float64)

	for _, inc := range incidents {
		summary.Total++
		severitySum += inc.Severity
		counts[inc.Category]++
		if inc.RiskScore != nil {
			riskTotals[inc.Category] += *inc.RiskScore
			if *inc.RiskScore > highRiskThreshold {
				summary.HighRiskCount++
				summary.HighRiskIncidents = append(summary.HighRiskIncidents, inc)
			}
		}
		switch {
		case !inc.CreatedAt.Before(weekAgo):
			summary.WeekTotal++
		case !inc.CreatedAt.Before(twoWeeksAgo):
			prevWeek++
		}
	}

	summary.Trend = summary.WeekTotal - prevWeek
	if summary.Total > 0 {
		summary.AvgSeverity = math.Round(float64(severitySum)/float64(summary.Total)*10) / 10
	}

	for _, category := range models.ValidCategories {
		count, ok := counts[category]
		if !ok {
			continue
		}
		summary.ByCategory = append(summary.ByCategory, models.CategoryCount{Category: category, Count: count})
		summary.RiskAreas = append(summary.RiskAreas, models.RiskArea{
			Category:   category,
			Count:      count,
			AvgRiskPct: int(math.Round(riskTotals[category] / float64(count) * 100)),
		})
	}
	sort.SliceStable(summary.RiskAreas, func(i, j int) bool {
		return summary.RiskAreas[i].AvgRiskPct > summary.RiskAreas[j].AvgRiskPct
	})
	return summary
}

// ResponseTimes - статистика времени реакции за 30 дней
func (s *analyticsService) ResponseTimes(ctx context.Context) (*models.ResponseTimeStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "ResponseTimes",
	})
	now := s.now().UTC()

	incidents, err := s.incidents.ListWithResponseTime(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		log.WithError(err).Error("Failed to load incidents with response times")
		return nil, fmt.Errorf("service: could not load response times: %w", err)
	}
	return responseTimeStats(incidents, now), nil
}

func responseTimeStats(incidents []*models.Incident, now time.Time) *models.ResponseTimeStats {
	stats := &models.ResponseTimeStats{Series: []models.ResponseTimePoint{}}
	cutoff := now.AddDate(0, 0, -15)

	var total, recentSum, olderSum, recentN, olderN int
	for _, inc := range incidents {
		if inc.ResponseTimeMinutes == nil {
			continue
		}
		minutes := *inc.ResponseTimeMinutes
		if stats.TotalResponses == 0 || minutes < stats.Fastest {
			stats.Fastest = minutes
		}
		if minutes > stats.Slowest {
			stats.Slowest = minutes
		}
		stats.TotalResponses++
		total += minutes

		if inc.CreatedAt.Before(cutoff) {
			olderSum += minutes
			olderN++
		} else {
			recentSum += minutes
			recentN++
		}

		stats.Series = append(stats.Series, models.ResponseTimePoint{
			IncidentID:   inc.ID,
			Category:     inc.Category,
			CreatedAt:    inc.CreatedAt,
			ResponseTime: minutes,
		})
	}

	if stats.TotalResponses > 0 {
		stats.AverageMinutes = math.Round(float64(total)/float64(stats.TotalResponses)*10) / 10
	}
	// отрицательный тренд - реакция стала быстрее
	if recentN > 0 && olderN > 0 {
		recentAvg := float64(recentSum) / float64(recentN)
		olderAvg := float64(olderSum) / float64(olderN)
		if olderAvg > 0 {
			stats.TrendPct = math.Round((recentAvg-olderAvg)/olderAvg*1000) / 10
		}
	}
	return stats
}

// BuildDailyInsights агрегирует инциденты за сутки по категориям и сохраняет результат
func (s *analyticsService) BuildDailyInsights(ctx context.Context, day time.Time) ([]*models.IncidentInsight, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "BuildDailyInsights",
		"day":     from.Format(time.DateOnly),
	})

	incidents, err := s.incidents.ListCreatedBetween(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load incidents for insights")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	insights := aggregateInsights(incidents, from)
	if len(insights) == 0 {
		log.Info("No incidents to aggregate")
		return insights, nil
	}
	if err := s.insights.Upsert(ctx, insights); err != nil {
		log.WithError(err).Error("Failed to store incident insights")
		return nil, fmt.Errorf("service: could not store insights: %w", err)
	}
	log.WithField("categories", len(insights)).Info("Daily insights stored")
	return insights, nil
}

func aggregateInsights(incidents []*models.Incident, day time.Time) []*models.IncidentInsight {
	type acc struct {
		count, severitySum, riskN, highRisk int
		riskSum                             float64
	}
	byCategory := make(map[models.IncidentCategory]*acc)
	for _, inc := range incidents {
		a, ok := byCategory[inc.Category]
		if !ok {
			a = &acc{}
			byCategory[inc.Category] = a
		}
		a.count++
		a.severitySum += inc.Severity
		if inc.RiskScore != nil {
			a.riskN++
			a.riskSum += *inc.RiskScore
			if *inc.RiskScore > highRiskThreshold {
				a.highRisk++
			}
		}
	}

	insights := make([]*models.IncidentInsight, 0, len(byCategory))
	for _, category := range models.ValidCategories {
		a, ok := byCategory[category]
		if !ok {
			continue
		}
		avgSeverity := float64(a.severitySum) / float64(a.count)
		insight := &models.IncidentInsight{
			Date:          day,
			Category:      category,
			IncidentCount: a.count,
			AvgSeverity:   &avgSeverity,
			HighRiskCount: a.highRisk,
		}
		if a.riskN > 0 {
			avgRisk := a.riskSum / float64(a.riskN)
			insight.AvgRiskScore = &avgRisk
		}
		insights = append(insights, insight)
	}
	return insights
}
