package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertRows(alerts ...*models.Alert) *pgxmock.Rows {
	rows := pgxmock.NewRows(columnNames(alertColumns))
	for _, a := range alerts {
		rows.AddRow(a.ID, a.IncidentID, a.Title, a.Message, a.Severity, a.IsActive, a.CreatedAt, a.ExpiresAt)
	}
	return rows
}

func TestAlertRepository_Deactivate(t *testing.T) {
	// Подготовка
	mock := newMockDB(t)
	repo := NewAlertRepository(mock, testRLSRole)
	leader := &models.Actor{ID: uuid.New(), Role: models.RoleLeader}
	dismissed := &models.Alert{ID: uuid.New(), Title: "Road closed", Severity: 3, CreatedAt: reportedAt}

	// Ожидания
	expectActor(mock, leader)
	mock.ExpectQuery(deactivateAlertQuery).
		WithArgs(dismissed.ID).
		WillReturnRows(alertRows(dismissed))
	mock.ExpectCommit()

	// Действие
	alert, err := repo.Deactivate(context.Background(), leader, dismissed.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, dismissed.ID, alert.ID)
	assert.False(t, alert.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Deactivate_NoRows(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		expected error
	}{
		{name: "missing alert", exists: false, expected: service.ErrNotFound},
		{name: "alert hidden by row-level security", exists: true, expected: service.ErrStorageDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			mock := newMockDB(t)
			repo := NewAlertRepository(mock, testRLSRole)
			member := &models.Actor{ID: uuid.New(), Role: models.RoleMember}
			id := uuid.New()

			// Ожидания
			expectActor(mock, member)
			mock.ExpectQuery(deactivateAlertQuery).
				WithArgs(id).
				WillReturnRows(alertRows())
			mock.ExpectRollback()
			mock.ExpectQuery(existsQuery("alerts")).
				WithArgs(id).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			// Действие
			alert, err := repo.Deactivate(context.Background(), member, id)

			// Проверки
			assert.Nil(t, alert)
			assert.ErrorIs(t, err, tt.expected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_ExpireStale(t *testing.T) {
	// Подготовка
	mock := newMockDB(t)
	repo := NewAlertRepository(mock, testRLSRole)
	now := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)
	expiredAt := now.Add(-time.Hour)
	first := &models.Alert{ID: uuid.New(), Title: "Road closed", Severity: 3, CreatedAt: reportedAt, ExpiresAt: &expiredAt}
	second := &models.Alert{ID: uuid.New(), Title: "Power outage", Severity: 4, CreatedAt: reportedAt, ExpiresAt: &expiredAt}

	// Ожидания
	mock.ExpectQuery(expireAlertsQuery).
		WithArgs(now).
		WillReturnRows(alertRows(first, second))

	// Действие
	expired, err := repo.ExpireStale(context.Background(), now)

	// Проверки
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, first.ID, expired[0].ID)
	assert.Equal(t, second.ID, expired[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ExpireStale_Nothing(t *testing.T) {
	mock := newMockDB(t)
	repo := NewAlertRepository(mock, testRLSRole)
	now := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(expireAlertsQuery).WithArgs(now).WillReturnRows(alertRows())

	expired, err := repo.ExpireStale(context.Background(), now)

	require.NoError(t, err)
	assert.Empty(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
