package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	realtime_mocks "github.com/shenikar/safety_reporting_system/internal/realtime/mocks"
	"github.com/shenikar/safety_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockAuthorizer, *realtime_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	authorizerMock := mocks.NewMockAuthorizer(ctrl)
	publisherMock := realtime_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAlertService(repoMock, authorizerMock, publisherMock, logger, &config.Config{AlertTTL: 24 * time.Hour})
	s := svc.(*alertService)
	s.now = func() time.Time { return testNow }
	return s, repoMock, authorizerMock, publisherMock
}

func TestCreateAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock, authorizerMock, publisherMock := newTestAlertService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleLeader}
	alert := &models.Alert{Title: "Road closed", Message: "Flooding on Main St", Severity: 3}

	// Ожидания
	authorizerMock.EXPECT().Allowed(models.RoleLeader, ResourceAlert, ActionCreate).Return(true).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), alert).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e realtime.Event) error {
			assert.Equal(t, realtime.ResourceAlerts, e.Resource)
			assert.Equal(t, realtime.EventInsert, e.Type)
			return nil
		}).Times(1)

	// Действие
	err := service.CreateAlert(context.Background(), actor, alert)

	// Проверки
	require.NoError(t, err)
	assert.True(t, alert.IsActive)
	require.NotNil(t, alert.ExpiresAt)
	assert.Equal(t, testNow.Add(24*time.Hour), *alert.ExpiresAt)
}

func TestCreateAlert_MemberDenied(t *testing.T) {
	service, _, authorizerMock, _ := newTestAlertService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleMember}

	authorizerMock.EXPECT().Allowed(models.RoleMember, ResourceAlert, ActionCreate).Return(false).Times(1)

	err := service.CreateAlert(context.Background(), actor, &models.Alert{Severity: 3})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateAlert_InvalidSeverity(t *testing.T) {
	service, _, authorizerMock, _ := newTestAlertService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleAdmin}

	authorizerMock.EXPECT().Allowed(models.RoleAdmin, ResourceAlert, ActionCreate).Return(true).Times(1)

	err := service.CreateAlert(context.Background(), actor, &models.Alert{Severity: 9})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDismissAlert_Success(t *testing.T) {
	service, repoMock, authorizerMock, publisherMock := newTestAlertService(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleOfficer}
	id := uuid.New()
	dismissed := &models.Alert{ID: id, IsActive: false}

	authorizerMock.EXPECT().Allowed(models.RoleOfficer, ResourceAlert, ActionDismiss).Return(true).Times(1)
	repoMock.EXPECT().Deactivate(gomock.Any(), actor, id).Return(dismissed, nil).Times(1)
	// сбой публикации не влияет на результат
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	alert, err := service.DismissAlert(context.Background(), actor, id)

	require.NoError(t, err)
	assert.Equal(t, dismissed, alert)
}

func TestDismissAlert_NoActor(t *testing.T) {
	service, _, _, _ := newTestAlertService(t)

	_, err := service.DismissAlert(context.Background(), nil, uuid.New())

	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestExpireAlerts(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestAlertService(t)
	expired := []*models.Alert{
		{ID: uuid.New(), Title: "Road closed", Severity: 3},
		{ID: uuid.New(), Title: "Power outage", Severity: 4},
	}
	published := make([]uuid.UUID, 0, len(expired))

	// Ожидания
	repoMock.EXPECT().ExpireStale(gomock.Any(), testNow).Return(expired, nil).Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e realtime.Event) error {
			assert.Equal(t, realtime.ResourceAlerts, e.Resource)
			assert.Equal(t, realtime.EventUpdate, e.Type)
			published = append(published, e.ID)
			return nil
		}).Times(2)

	// Действие
	count, err := service.ExpireAlerts(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, []uuid.UUID{expired[0].ID, expired[1].ID}, published)
}

func TestExpireAlerts_NothingExpired(t *testing.T) {
	service, repoMock, _, _ := newTestAlertService(t)

	repoMock.EXPECT().ExpireStale(gomock.Any(), testNow).Return([]*models.Alert{}, nil).Times(1)

	count, err := service.ExpireAlerts(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExpireAlerts_PublishFailureIsNotFatal(t *testing.T) {
	service, repoMock, _, publisherMock := newTestAlertService(t)

	repoMock.EXPECT().ExpireStale(gomock.Any(), testNow).Return([]*models.Alert{{ID: uuid.New()}}, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	count, err := service.ExpireAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
