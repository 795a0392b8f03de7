package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	"github.com/shenikar/safety_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Методы, принимающие actor, выполняются под его идентичностью, чтобы сработали политики RLS.
type IncidentRepository interface {
	Create(ctx context.Context, actor *models.Actor, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	FindOpenNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*models.Incident, error)
	ListWithResponseTime(ctx context.Context, since time.Time) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, actor *models.Actor, id uuid.UUID, change models.StatusChange) (*models.Incident, error)
}

// IncidentLogRepository - журнал аудита, только вставка и чтение
type IncidentLogRepository interface {
	Insert(ctx context.Context, actor *models.Actor, entry *models.IncidentLog) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentLog, error)
}

// IncidentCache - кеш инцидентов; GetIncident возвращает nil, nil при промахе
type IncidentCache interface {
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncident(ctx context.Context, incident *models.Incident) error
	InvalidateIncident(ctx context.Context, id uuid.UUID) error
}

// RiskAnalyzer оценивает риск инцидента. Всегда возвращает оценку, даже при сбое модели.
type RiskAnalyzer interface {
	AnalyzeIncident(ctx context.Context, req models.RiskAnalysisRequest) models.RiskAssessment
}

// Authorizer - единая проверка прав для всех изменяющих операций
type Authorizer interface {
	Allowed(role models.Role, resource, action string) bool
}

const (
	ResourceIncident = "incident"
	ResourceAlert    = "alert"

	ActionTransition = "transition"
	ActionCreate     = "create"
	ActionDismiss    = "dismiss"
)

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, actor *models.Actor, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error)
	ListLogs(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentLog, error)
	AnalyzeIncident(ctx context.Context, req models.RiskAnalysisRequest) models.RiskAssessment
	UpdateStatus(ctx context.Context, actor *models.Actor, id uuid.UUID, target models.IncidentStatus, note string) (*models.StatusUpdateResult, error)
}

type incidentService struct {
	repo       IncidentRepository
	logs       IncidentLogRepository
	alerts     AlertRepository
	cache      IncidentCache
	analyzer   RiskAnalyzer
	authorizer Authorizer
	publisher  realtime.Publisher
	webhooks   webhook.WebhookPublisher
	logger     *logrus.Logger
	cfg        *config.Config
	now        func() time.Time
}

// IncidentDeps собирает зависимости сервиса инцидентов
type IncidentDeps struct {
	Repo       IncidentRepository
	Logs       IncidentLogRepository
	Alerts     AlertRepository
	Cache      IncidentCache
	Analyzer   RiskAnalyzer
	Authorizer Authorizer
	Publisher  realtime.Publisher
	Webhooks   webhook.WebhookPublisher
}

func NewIncidentService(deps IncidentDeps, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:       deps.Repo,
		logs:       deps.Logs,
		alerts:     deps.Alerts,
		cache:      deps.Cache,
		analyzer:   deps.Analyzer,
		authorizer: deps.Authorizer,
		publisher:  deps.Publisher,
		webhooks:   deps.Webhooks,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// CreateIncident регистрирует новое сообщение об инциденте
func (s *incidentService) CreateIncident(ctx context.Context, actor *models.Actor, incident *models.Incident) error {
	if actor == nil {
		return ErrAuthenticationRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"category": incident.Category,
		"severity": incident.Severity,
	})
	log.Info("Attempting to create a new incident")

	if !incident.Category.IsValid() {
		return fmt.Errorf("service: unknown category %q: %w", incident.Category, ErrInvalidInput)
	}
	if incident.Severity < 1 || incident.Severity > 5 {
		return fmt.Errorf("service: severity %d out of range 1..5: %w", incident.Severity, ErrInvalidInput)
	}
	// Именное сообщение ссылается на profiles.id, без профиля его можно отправить только анонимно
	if !incident.IsAnonymous && actor.Role == "" {
		log.WithField("actor_id", actor.ID).Warn("Named report from a user without a profile")
		return fmt.Errorf("service: a profile is required to report under your name, report anonymously instead: %w", ErrInvalidInput)
	}

	if incident.RiskScore == nil {
		assessment := s.analyzer.AnalyzeIncident(ctx, models.RiskAnalysisRequest{
			Title:       incident.Title,
			Description: incident.Description,
			Category:    incident.Category,
			Severity:    incident.Severity,
		})
		score := assessment.RiskScore
		incident.RiskScore = &score
	}

	incident.Status = models.StatusPending
	if incident.IsAnonymous {
		incident.UserID = nil
	} else {
		userID := actor.ID
		incident.UserID = &userID
	}

	if err := s.repo.Create(ctx, actor, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created successfully")

	s.publish(ctx, log, realtime.ResourceIncidents, realtime.EventInsert, incident.ID, incident)
	s.enqueueWebhook(ctx, log, webhook.EventIncidentCreated, incident, nil)

	if s.needsAutoAlert(incident) {
		s.raiseAutoAlert(ctx, log, incident)
	}
	return nil
}

func (s *incidentService) needsAutoAlert(incident *models.Incident) bool {
	if incident.Severity >= s.cfg.AlertSeverityThreshold {
		return true
	}
	return incident.RiskScore != nil && *incident.RiskScore >= s.cfg.AlertRiskThreshold
}

// raiseAutoAlert создаёт оповещение для опасного инцидента; ошибка не влияет на создание инцидента
func (s *incidentService) raiseAutoAlert(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	incidentID := incident.ID
	expiresAt := s.now().Add(s.cfg.AlertTTL)
	alert := &models.Alert{
		IncidentID: &incidentID,
		Title:      fmt.Sprintf("High severity %s reported", humanCategory(incident.Category)),
		Message:    incident.Title,
		Severity:   incident.Severity,
		IsActive:   true,
		ExpiresAt:  &expiresAt,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to create automatic alert")
		return
	}
	log.WithField("alert_id", alert.ID).Info("Automatic alert raised")
	s.publish(ctx, log, realtime.ResourceAlerts, realtime.EventInsert, alert.ID, alert)
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.cache.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.cache.SetIncident(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("service: unknown status filter %q: %w", filter.Status, ErrInvalidStatus)
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, fmt.Errorf("service: unknown category filter %q: %w", filter.Category, ErrInvalidInput)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
		"status":    filter.Status,
		"category":  filter.Category,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// FindNearby находит открытые инциденты в радиусе от точки
func (s *incidentService) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.NearbyDefaultRadius
	}
	if radiusMeters > s.cfg.NearbyMaxRadius {
		radiusMeters = s.cfg.NearbyMaxRadius
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FindNearby",
		"radius":  radiusMeters,
	})
	log.Info("Searching open incidents near location")

	incidents, err := s.repo.FindOpenNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents by location")
		return nil, fmt.Errorf("service: failed to find nearby incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Location search completed")
	return incidents, nil
}

// ListLogs возвращает журнал аудита инцидента
func (s *incidentService) ListLogs(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentLog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ListLogs",
		"incident_id": incidentID,
	})

	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Requested logs of a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	entries, err := s.logs.ListByIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list incident logs")
		return nil, fmt.Errorf("service: could not list incident logs: %w", err)
	}
	return entries, nil
}

func (s *incidentService) AnalyzeIncident(ctx context.Context, req models.RiskAnalysisRequest) models.RiskAssessment {
	return s.analyzer.AnalyzeIncident(ctx, req)
}

// UpdateStatus проверяет и применяет смену статуса, выводит временные метки и пишет запись аудита
func (s *incidentService) UpdateStatus(ctx context.Context, actor *models.Actor, id uuid.UUID, target models.IncidentStatus, note string) (*models.StatusUpdateResult, error) {
	if actor == nil {
		return nil, ErrAuthenticationRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"actor_id":    actor.ID,
		"actor_role":  actor.Role,
		"target":      target,
	})
	log.Info("Attempting to change incident status")

	if !s.authorizer.Allowed(actor.Role, ResourceIncident, ActionTransition) {
		log.Warn("Actor is not allowed to change incident status")
		return nil, fmt.Errorf("service: role %q cannot update incident status: %w", actor.Role, ErrPermissionDenied)
	}

	if !target.IsValid() {
		log.Warn("Rejected unknown target status")
		return nil, fmt.Errorf("service: status %q: %w", target, ErrInvalidStatus)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to load incident for status change")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}

	change := models.PlanStatusChange(current, target, s.now().UTC())

	updated, err := s.repo.UpdateStatus(ctx, actor, id, change)
	if err != nil {
		switch {
		case errors.Is(err, ErrSchemaMismatch):
			log.WithError(err).Error("Database schema rejected status update")
		case errors.Is(err, ErrStorageDenied):
			log.WithError(err).Warn("Row-level policy rejected status update")
		default:
			log.WithError(err).Error("Failed to update incident status in repository")
		}
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	s.writeAuditLog(ctx, log, actor, id, target, note)

	if err := s.cache.InvalidateIncident(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publish(ctx, log, realtime.ResourceIncidents, realtime.EventUpdate, id, updated)
	s.enqueueWebhook(ctx, log, webhook.EventIncidentStatusChanged, updated, actor)

	log.WithField("status", updated.Status).Info("Incident status updated successfully")
	return &models.StatusUpdateResult{
		Incident:  updated,
		UpdatedBy: *actor,
		Message:   fmt.Sprintf("Incident status updated to %s", target),
	}, nil
}

// writeAuditLog пишет запись журнала; сбой не откатывает смену статуса
func (s *incidentService) writeAuditLog(ctx context.Context, log *logrus.Entry, actor *models.Actor, id uuid.UUID, target models.IncidentStatus, note string) {
	details := note
	if details == "" {
		details = models.DefaultStatusNote(target)
	}
	entry := &models.IncidentLog{
		IncidentID: id,
		UserID:     actor.ID,
		Action:     models.ActionForStatus(target),
		Details:    details,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.logs.Insert(ctx, actor, entry); err != nil {
		log.WithError(fmt.Errorf("%w: %v", ErrAuditLog, err)).Warn("Failed to log incident status change")
	}
}

func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, resource, eventType string, id uuid.UUID, payload any) {
	event, err := realtime.NewEvent(resource, eventType, id, payload)
	if err != nil {
		log.WithError(err).Warn("Failed to build realtime event")
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish realtime event")
	}
}

func (s *incidentService) enqueueWebhook(ctx context.Context, log *logrus.Entry, eventType string, incident *models.Incident, actor *models.Actor) {
	event := webhook.WebhookEvent{
		Type:      eventType,
		Incident:  incident,
		Actor:     actor,
		Timestamp: s.now().UTC(),
	}
	if err := s.webhooks.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to enqueue webhook event")
	}
}

func humanCategory(c models.IncidentCategory) string {
	switch c {
	case models.CategorySuspiciousActivity:
		return "suspicious activity"
	case models.CategoryOther:
		return "incident"
	default:
		return string(c)
	}
}
