package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	realtime_mocks "github.com/shenikar/safety_reporting_system/internal/realtime/mocks"
	"github.com/shenikar/safety_reporting_system/internal/service/mocks"
	"github.com/shenikar/safety_reporting_system/internal/webhook"
	webhook_mocks "github.com/shenikar/safety_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type incidentFixture struct {
	service    *incidentService
	repo       *mocks.MockIncidentRepository
	logs       *mocks.MockIncidentLogRepository
	alerts     *mocks.MockAlertRepository
	cache      *mocks.MockIncidentCache
	analyzer   *mocks.MockRiskAnalyzer
	authorizer *mocks.MockAuthorizer
	publisher  *realtime_mocks.MockPublisher
	webhooks   *webhook_mocks.MockWebhookPublisher
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) *incidentFixture {
	ctrl := gomock.NewController(t)
	f := &incidentFixture{
		repo:       mocks.NewMockIncidentRepository(ctrl),
		logs:       mocks.NewMockIncidentLogRepository(ctrl),
		alerts:     mocks.NewMockAlertRepository(ctrl),
		cache:      mocks.NewMockIncidentCache(ctrl),
		analyzer:   mocks.NewMockRiskAnalyzer(ctrl),
		authorizer: mocks.NewMockAuthorizer(ctrl),
		publisher:  realtime_mocks.NewMockPublisher(ctrl),
		webhooks:   webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AlertSeverityThreshold: 4,
		AlertRiskThreshold:     0.7,
		AlertTTL:               24 * time.Hour,
		NearbyDefaultRadius:    1000,
		NearbyMaxRadius:        20000,
	}

	svc := NewIncidentService(IncidentDeps{
		Repo:       f.repo,
		Logs:       f.logs,
		Alerts:     f.alerts,
		Cache:      f.cache,
		Analyzer:   f.analyzer,
		Authorizer: f.authorizer,
		Publisher:  f.publisher,
		Webhooks:   f.webhooks,
	}, logger, cfg)
	f.service = svc.(*incidentService)
	f.service.now = func() time.Time { return testNow }
	return f
}

func officer() *models.Actor {
	return &models.Actor{ID: uuid.New(), Email: "officer@example.com", Role: models.RoleOfficer}
}

// expectStatusSideEffects: инвалидация кеша, realtime и вебхук после успешной смены статуса
func (f *incidentFixture) expectStatusSideEffects(id uuid.UUID) {
	f.cache.EXPECT().InvalidateIncident(gomock.Any(), id).Return(nil).Times(1)
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e realtime.Event) error {
			if e.Resource != realtime.ResourceIncidents || e.Type != realtime.EventUpdate || e.ID != id {
				return fmt.Errorf("unexpected event %s/%s", e.Resource, e.Type)
			}
			return nil
		}).Times(1)
	f.webhooks.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.WebhookEvent) error {
			if e.Type != webhook.EventIncidentStatusChanged {
				return fmt.Errorf("unexpected webhook %s", e.Type)
			}
			return nil
		}).Times(1)
}

// applyChange имитирует хранилище: применяет изменение к текущему инциденту
func applyChange(current *models.Incident) func(context.Context, *models.Actor, uuid.UUID, models.StatusChange) (*models.Incident, error) {
	return func(_ context.Context, _ *models.Actor, _ uuid.UUID, change models.StatusChange) (*models.Incident, error) {
		return change.Apply(current), nil
	}
}

func TestUpdateStatus_AuthenticationRequired(t *testing.T) {
	f := newTestIncidentService(t)

	result, err := f.service.UpdateStatus(context.Background(), nil, uuid.New(), models.StatusResolved, "")

	assert.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.Nil(t, result)
}

func TestUpdateStatus_MemberIsDenied(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	member := &models.Actor{ID: uuid.New(), Role: models.RoleMember}

	// Ожидания: хранилище не вызывается
	f.authorizer.EXPECT().Allowed(models.RoleMember, ResourceIncident, ActionTransition).Return(false).Times(1)

	// Действие
	result, err := f.service.UpdateStatus(context.Background(), member, uuid.New(), models.StatusResolved, "")

	// Проверки
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, result)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)

	result, err := f.service.UpdateStatus(context.Background(), actor, uuid.New(), models.IncidentStatus("closed"), "")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, result)
}

func TestUpdateStatus_DispatchSetsRespondedAt(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	actor := officer()
	current := &models.Incident{ID: uuid.New(), Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)}
	var loggedEntry *models.IncidentLog

	// Ожидания
	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).
		DoAndReturn(applyChange(current)).
		Times(1)
	f.logs.EXPECT().
		Insert(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Actor, entry *models.IncidentLog) error {
			loggedEntry = entry
			return nil
		}).Times(1)
	f.expectStatusSideEffects(current.ID)

	// Действие
	result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusDispatched, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, result.Incident.Status)
	require.NotNil(t, result.Incident.RespondedAt)
	assert.Equal(t, testNow, *result.Incident.RespondedAt)
	assert.Equal(t, testNow, result.Incident.UpdatedAt)
	assert.Nil(t, result.Incident.ResolvedAt)
	assert.Equal(t, *actor, result.UpdatedBy)
	assert.Equal(t, "Incident status updated to dispatched", result.Message)

	require.NotNil(t, loggedEntry)
	assert.Equal(t, models.ActionDispatched, loggedEntry.Action)
	assert.Equal(t, "Status changed to dispatched", loggedEntry.Details)
	assert.Equal(t, actor.ID, loggedEntry.UserID)
}

func TestUpdateStatus_ResolveComputesResponseTime(t *testing.T) {
	// Подготовка: dispatched в T0+5m, resolved в T0+35m
	f := newTestIncidentService(t)
	actor := officer()
	t0 := testNow.Add(-35 * time.Minute)
	respondedAt := t0.Add(5 * time.Minute)
	current := &models.Incident{ID: uuid.New(), Status: models.StatusDispatched, CreatedAt: t0, RespondedAt: &respondedAt}

	// Ожидания
	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).DoAndReturn(applyChange(current)).Times(1)
	f.logs.EXPECT().Insert(gomock.Any(), actor, gomock.Any()).Return(nil).Times(1)
	f.expectStatusSideEffects(current.ID)

	// Действие
	result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusResolved, "Suspect detained")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.Incident.ResolvedAt)
	assert.Equal(t, testNow, *result.Incident.ResolvedAt)
	assert.Equal(t, respondedAt, *result.Incident.RespondedAt)
	require.NotNil(t, result.Incident.ResponseTimeMinutes)
	assert.Equal(t, 30, *result.Incident.ResponseTimeMinutes)
}

func TestUpdateStatus_ResolveAgainKeepsTimestamps(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()
	respondedAt := testNow.Add(-2 * time.Hour)
	resolvedAt := testNow.Add(-time.Hour)
	minutes := 60
	current := &models.Incident{
		ID:                  uuid.New(),
		Status:              models.StatusResolved,
		RespondedAt:         &respondedAt,
		ResolvedAt:          &resolvedAt,
		ResponseTimeMinutes: &minutes,
		UpdatedAt:           resolvedAt,
	}

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Actor, id uuid.UUID, change models.StatusChange) (*models.Incident, error) {
			assert.Nil(t, change.ResolvedAt)
			assert.Nil(t, change.ResponseTimeMinutes)
			return applyChange(current)(ctx, a, id, change)
		}).Times(1)
	f.logs.EXPECT().Insert(gomock.Any(), actor, gomock.Any()).Return(nil).Times(1)
	f.expectStatusSideEffects(current.ID)

	result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusResolved, "")

	require.NoError(t, err)
	assert.Equal(t, resolvedAt, *result.Incident.ResolvedAt)
	assert.Equal(t, 60, *result.Incident.ResponseTimeMinutes)
	assert.Equal(t, testNow, result.Incident.UpdatedAt)
}

func TestUpdateStatus_ResolveWithoutDispatch(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()
	current := &models.Incident{ID: uuid.New(), Status: models.StatusReviewing}

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).DoAndReturn(applyChange(current)).Times(1)
	f.logs.EXPECT().Insert(gomock.Any(), actor, gomock.Any()).Return(nil).Times(1)
	f.expectStatusSideEffects(current.ID)

	result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusResolved, "")

	require.NoError(t, err)
	require.NotNil(t, result.Incident.ResolvedAt)
	assert.Nil(t, result.Incident.RespondedAt)
	assert.Nil(t, result.Incident.ResponseTimeMinutes)
}

func TestUpdateStatus_AuditLogFailureIsSwallowed(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()
	current := &models.Incident{ID: uuid.New(), Status: models.StatusPending}

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).DoAndReturn(applyChange(current)).Times(1)
	f.logs.EXPECT().Insert(gomock.Any(), actor, gomock.Any()).Return(errors.New("insert denied")).Times(1)
	f.expectStatusSideEffects(current.ID)

	result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusDismissed, "")

	require.NoError(t, err)
	assert.Equal(t, models.StatusDismissed, result.Incident.Status)
}

func TestUpdateStatus_NoteIsUsedAsDetails(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()
	current := &models.Incident{ID: uuid.New(), Status: models.StatusPending}

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).DoAndReturn(applyChange(current)).Times(1)
	f.logs.EXPECT().
		Insert(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Actor, entry *models.IncidentLog) error {
			assert.Equal(t, models.ActionUpdated, entry.Action)
			assert.Equal(t, "Looking into it", entry.Details)
			return nil
		}).Times(1)
	f.expectStatusSideEffects(current.ID)

	_, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusReviewing, "Looking into it")

	require.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newTestIncidentService(t)
	actor := officer()
	id := uuid.New()

	f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
	f.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, fmt.Errorf("incident with id %s: %w", id, ErrNotFound)).Times(1)

	result, err := f.service.UpdateStatus(context.Background(), actor, id, models.StatusResolved, "")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestUpdateStatus_StorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "row-level policy rejection", repoErr: fmt.Errorf("update matched no rows: %w", ErrStorageDenied)},
		{name: "schema behind service", repoErr: fmt.Errorf("check violation: %w", ErrSchemaMismatch)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			f := newTestIncidentService(t)
			actor := officer()
			current := &models.Incident{ID: uuid.New(), Status: models.StatusPending}

			// Ожидания: ни журнала, ни побочных эффектов
			f.authorizer.EXPECT().Allowed(actor.Role, ResourceIncident, ActionTransition).Return(true).Times(1)
			f.repo.EXPECT().GetByID(gomock.Any(), current.ID).Return(current, nil).Times(1)
			f.repo.EXPECT().UpdateStatus(gomock.Any(), actor, current.ID, gomock.Any()).Return(nil, tt.repoErr).Times(1)

			// Действие
			result, err := f.service.UpdateStatus(context.Background(), actor, current.ID, models.StatusFalseAlarm, "")

			// Проверки
			assert.ErrorIs(t, err, tt.repoErr)
			assert.Nil(t, result)
		})
	}
}

func TestCreateIncident_AnonymousHighSeverityRaisesAlert(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleMember}
	incident := &models.Incident{
		Title:       "Armed robbery",
		Description: "Two people threatened a cashier",
		Category:    models.CategoryTheft,
		Severity:    5,
		IsAnonymous: true,
	}
	incidentID := uuid.New()
	var createdAlert *models.Alert

	// Ожидания
	f.analyzer.EXPECT().
		AnalyzeIncident(gomock.Any(), gomock.Any()).
		Return(models.RiskAssessment{RiskScore: 0.9, Recommendation: "Avoid the area"}).
		Times(1)
	f.repo.EXPECT().
		Create(gomock.Any(), actor, incident).
		DoAndReturn(func(_ context.Context, _ *models.Actor, inc *models.Incident) error {
			inc.ID = incidentID
			return nil
		}).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.webhooks.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.alerts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			createdAlert = a
			return nil
		}).Times(1)

	// Действие
	err := f.service.CreateIncident(context.Background(), actor, incident)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, incident.UserID)
	assert.Equal(t, models.StatusPending, incident.Status)
	require.NotNil(t, incident.RiskScore)
	assert.Equal(t, 0.9, *incident.RiskScore)

	require.NotNil(t, createdAlert)
	assert.Equal(t, incidentID, *createdAlert.IncidentID)
	assert.Equal(t, "High severity theft reported", createdAlert.Title)
	assert.True(t, createdAlert.IsActive)
	assert.Equal(t, testNow.Add(24*time.Hour), *createdAlert.ExpiresAt)
}

func TestCreateIncident_LowRiskNoAlert(t *testing.T) {
	f := newTestIncidentService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleMember}
	risk := 0.2
	incident := &models.Incident{
		Title:       "Loud music",
		Description: "Party next door past midnight",
		Category:    models.CategoryNoise,
		Severity:    1,
		RiskScore:   &risk,
	}

	// Ожидания: оценка уже есть, анализатор и оповещения не вызываются
	f.repo.EXPECT().Create(gomock.Any(), actor, incident).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.webhooks.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	err := f.service.CreateIncident(context.Background(), actor, incident)

	require.NoError(t, err)
	require.NotNil(t, incident.UserID)
	assert.Equal(t, actor.ID, *incident.UserID)
}

func TestCreateIncident_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		incident *models.Incident
	}{
		{name: "unknown category", incident: &models.Incident{Category: "fire", Severity: 3}},
		{name: "severity too high", incident: &models.Incident{Category: models.CategoryTheft, Severity: 6}},
		{name: "severity zero", incident: &models.Incident{Category: models.CategoryTheft, Severity: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestIncidentService(t)

			err := f.service.CreateIncident(context.Background(), officer(), tt.incident)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateIncident_NamedReportRequiresProfile(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	noProfile := &models.Actor{ID: uuid.New(), Email: "new@example.com"}
	incident := &models.Incident{Title: "Broken light", Category: models.CategoryOther, Severity: 2}

	// Ожидания: до анализатора и репозитория запрос не доходит

	// Действие
	err := f.service.CreateIncident(context.Background(), noProfile, incident)

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "profile is required")
}

func TestCreateIncident_AnonymousReportWithoutProfile(t *testing.T) {
	f := newTestIncidentService(t)
	noProfile := &models.Actor{ID: uuid.New()}
	risk := 0.1
	incident := &models.Incident{Category: models.CategoryOther, Severity: 2, RiskScore: &risk, IsAnonymous: true}

	f.repo.EXPECT().Create(gomock.Any(), noProfile, incident).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.webhooks.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	err := f.service.CreateIncident(context.Background(), noProfile, incident)

	require.NoError(t, err)
	assert.Nil(t, incident.UserID)
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	f := newTestIncidentService(t)
	risk := 0.1
	incident := &models.Incident{Category: models.CategoryOther, Severity: 2, RiskScore: &risk}

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), incident).Return(errors.New("connection refused")).Times(1)

	err := f.service.CreateIncident(context.Background(), officer(), incident)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create incident")
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Title: "Тестовый инцидент из кеша"}

	// Ожидания
	f.cache.EXPECT().GetIncident(ctx, incidentID).Return(expectedIncident, nil).Times(1)

	// Действие
	incident, err := f.service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	f := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Title: "Тестовый инцидент из БД"}

	// Ожидания
	// 1. Промах кеша
	f.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	f.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil).Times(1)
	// 3. Запись в кеш
	f.cache.EXPECT().SetIncident(ctx, expectedIncident).Return(nil).Times(1)

	// Действие
	incident, err := f.service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	f := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID}

	f.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, errors.New("redis down")).Times(1)
	f.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil).Times(1)
	f.cache.EXPECT().SetIncident(ctx, expectedIncident).Return(errors.New("redis down")).Times(1)

	incident, err := f.service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	f := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	f.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, nil).Times(1)
	f.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, ErrNotFound).Times(1)

	incident, err := f.service.GetIncident(ctx, incidentID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, incident)
}

func TestListIncidents_NormalizesPagination(t *testing.T) {
	f := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{{ID: uuid.New()}}

	f.repo.EXPECT().
		List(ctx, models.IncidentFilter{Page: 1, PageSize: 20, Status: models.StatusPending}).
		Return(expected, nil).
		Times(1)

	incidents, err := f.service.ListIncidents(ctx, models.IncidentFilter{Page: 0, PageSize: 500, Status: models.StatusPending})

	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListIncidents_InvalidStatusFilter(t *testing.T) {
	f := newTestIncidentService(t)

	_, err := f.service.ListIncidents(context.Background(), models.IncidentFilter{Status: "open"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestFindNearby_ClampsRadius(t *testing.T) {
	tests := []struct {
		name     string
		radius   int
		expected int
	}{
		{name: "default radius", radius: 0, expected: 1000},
		{name: "max radius", radius: 50000, expected: 20000},
		{name: "as requested", radius: 300, expected: 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestIncidentService(t)
			f.repo.EXPECT().FindOpenNearby(gomock.Any(), 55.75, 37.61, tt.expected).Return([]*models.Incident{}, nil).Times(1)

			incidents, err := f.service.FindNearby(context.Background(), 55.75, 37.61, tt.radius)

			require.NoError(t, err)
			assert.Empty(t, incidents)
		})
	}
}

func TestListLogs_UnknownIncident(t *testing.T) {
	f := newTestIncidentService(t)
	id := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound).Times(1)

	entries, err := f.service.ListLogs(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, entries)
}

func TestListLogs_Success(t *testing.T) {
	f := newTestIncidentService(t)
	id := uuid.New()
	expected := []*models.IncidentLog{{ID: uuid.New(), IncidentID: id, Action: models.ActionResolved}}

	f.repo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Incident{ID: id}, nil).Times(1)
	f.logs.EXPECT().ListByIncident(gomock.Any(), id).Return(expected, nil).Times(1)

	entries, err := f.service.ListLogs(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
