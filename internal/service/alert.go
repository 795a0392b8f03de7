package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт хранилища оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context, active bool) ([]*models.Alert, error)
	CountActive(ctx context.Context) (int, error)
	Deactivate(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Alert, error)
	ExpireStale(ctx context.Context, now time.Time) ([]*models.Alert, error)
}

type AlertService interface {
	ListAlerts(ctx context.Context, active bool) ([]*models.Alert, error)
	CreateAlert(ctx context.Context, actor *models.Actor, alert *models.Alert) error
	DismissAlert(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Alert, error)
	ExpireAlerts(ctx context.Context) (int64, error)
}

type alertService struct {
	repo       AlertRepository
	authorizer Authorizer
	publisher  realtime.Publisher
	logger     *logrus.Logger
	cfg        *config.Config
	now        func() time.Time
}

func NewAlertService(repo AlertRepository, authorizer Authorizer, publisher realtime.Publisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:       repo,
		authorizer: authorizer,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *alertService) ListAlerts(ctx context.Context, active bool) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
		"active":  active,
	})

	alerts, err := s.repo.List(ctx, active)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// CreateAlert создаёт оповещение вручную
func (s *alertService) CreateAlert(ctx context.Context, actor *models.Actor, alert *models.Alert) error {
	if actor == nil {
		return ErrAuthenticationRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CreateAlert",
		"actor_id": actor.ID,
	})

	if !s.authorizer.Allowed(actor.Role, ResourceAlert, ActionCreate) {
		log.Warn("Actor is not allowed to create alerts")
		return fmt.Errorf("service: role %q cannot create alerts: %w", actor.Role, ErrPermissionDenied)
	}
	if alert.Severity < 1 || alert.Severity > 5 {
		return fmt.Errorf("service: severity %d out of range 1..5: %w", alert.Severity, ErrInvalidInput)
	}

	alert.IsActive = true
	if alert.ExpiresAt == nil {
		expiresAt := s.now().Add(s.cfg.AlertTTL)
		alert.ExpiresAt = &expiresAt
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")

	s.publishAlert(ctx, log, realtime.EventInsert, alert)
	return nil
}

// DismissAlert деактивирует оповещение
func (s *alertService) DismissAlert(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Alert, error) {
	if actor == nil {
		return nil, ErrAuthenticationRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DismissAlert",
		"alert_id": id,
		"actor_id": actor.ID,
	})

	if !s.authorizer.Allowed(actor.Role, ResourceAlert, ActionDismiss) {
		log.Warn("Actor is not allowed to dismiss alerts")
		return nil, fmt.Errorf("service: role %q cannot dismiss alerts: %w", actor.Role, ErrPermissionDenied)
	}

	alert, err := s.repo.Deactivate(ctx, actor, id)
	if err != nil {
		log.WithError(err).Warn("Failed to dismiss alert")
		return nil, fmt.Errorf("service: could not dismiss alert: %w", err)
	}
	log.Info("Alert dismissed successfully")

	s.publishAlert(ctx, log, realtime.EventUpdate, alert)
	return alert, nil
}

// ExpireAlerts деактивирует оповещения с истёкшим сроком, вызывается планировщиком
func (s *alertService) ExpireAlerts(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ExpireAlerts",
	})

	expired, err := s.repo.ExpireStale(ctx, s.now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to expire stale alerts")
		return 0, fmt.Errorf("service: could not expire alerts: %w", err)
	}
	if len(expired) > 0 {
		log.WithField("count", len(expired)).Info("Stale alerts expired")
	}
	// подписчики снимают истёкшие оповещения так же, как снятые вручную
	for _, alert := range expired {
		s.publishAlert(ctx, log.WithField("alert_id", alert.ID), realtime.EventUpdate, alert)
	}
	return int64(len(expired)), nil
}

func (s *alertService) publishAlert(ctx context.Context, log *logrus.Entry, eventType string, alert *models.Alert) {
	event, err := realtime.NewEvent(realtime.ResourceAlerts, eventType, alert.ID, alert)
	if err != nil {
		log.WithError(err).Warn("Failed to build realtime event")
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish realtime event")
	}
}
