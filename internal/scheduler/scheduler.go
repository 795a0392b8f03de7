package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Scheduler запускает фоновые задачи: истечение оповещений и дневную аналитику
type Scheduler struct {
	cron      *cron.Cron
	alerts    service.AlertService
	analytics service.AnalyticsService
	logger    *logrus.Logger
	now       func() time.Time

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

func New(cfg *config.Config, alerts service.AlertService, analytics service.AnalyticsService, logger *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		alerts:    alerts,
		analytics: analytics,
		logger:    logger,
		now:       time.Now,
		ctx:       context.Background(),
	}

	if _, err := s.cron.AddFunc(cfg.AlertExpiryCron, s.expireAlerts); err != nil {
		return nil, fmt.Errorf("invalid alert expiry schedule %q: %w", cfg.AlertExpiryCron, err)
	}
	if _, err := s.cron.AddFunc(cfg.InsightsCron, s.buildInsights); err != nil {
		return nil, fmt.Errorf("invalid insights schedule %q: %w", cfg.InsightsCron, err)
	}
	return s, nil
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.cron.Start()
	s.logger.WithField("jobs", len(s.cron.Entries())).Info("Scheduler started")
}

// Stop останавливает планировщик и ждёт завершения выполняющихся задач или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	done := s.cron.Stop()
	cancel()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) jobContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

func (s *Scheduler) expireAlerts() {
	if _, err := s.alerts.ExpireAlerts(s.jobContext()); err != nil {
		s.logger.WithError(err).WithField("job", "expire_alerts").Error("Scheduled job failed")
	}
}

// buildInsights агрегирует прошедшие сутки
func (s *Scheduler) buildInsights() {
	yesterday := s.now().UTC().AddDate(0, 0, -1)
	if _, err := s.analytics.BuildDailyInsights(s.jobContext(), yesterday); err != nil {
		s.logger.WithError(err).WithField("job", "daily_insights").Error("Scheduled job failed")
	}
}
