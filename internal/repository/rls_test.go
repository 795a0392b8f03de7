package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRLSRole = "authenticated"

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// columnNames разбирает список колонок из SELECT/RETURNING
func columnNames(columns string) []string {
	names := strings.Split(columns, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// claimsFor проверяет JSON, который уходит в request.jwt.claims
type claimsFor struct {
	actor *models.Actor
	role  string
}

func (c claimsFor) Match(v any) bool {
	raw, ok := v.(string)
	if !ok {
		return false
	}
	var claims map[string]string
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return false
	}
	return claims["sub"] == c.actor.ID.String() &&
		claims["role"] == c.role &&
		claims["user_role"] == string(c.actor.Role)
}

// expectActor ожидает начало транзакции от имени actor с ролью testRLSRole
func expectActor(mock pgxmock.PgxPoolIface, actor *models.Actor) {
	mock.ExpectBegin()
	mock.ExpectExec(setClaimsQuery).
		WithArgs(claimsFor{actor: actor, role: testRLSRole}).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(`SET LOCAL ROLE "authenticated"`).
		WillReturnResult(pgxmock.NewResult("SET", 0))
}

func existsQuery(table string) string {
	return `SELECT EXISTS(SELECT 1 FROM "` + table + `" WHERE id = $1);`
}

func TestWithActor_CommitsOnSuccess(t *testing.T) {
	// Подготовка
	mock := newMockDB(t)
	actor := &models.Actor{ID: uuid.New(), Email: "officer@example.com", Role: models.RoleOfficer}

	// Ожидания
	expectActor(mock, actor)
	mock.ExpectCommit()

	// Действие
	err := withActor(context.Background(), mock, testRLSRole, actor, func(pgx.Tx) error { return nil })

	// Проверки
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithActor_RollsBackOnError(t *testing.T) {
	mock := newMockDB(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleMember}
	fnErr := errors.New("boom")

	expectActor(mock, actor)
	mock.ExpectRollback()

	err := withActor(context.Background(), mock, testRLSRole, actor, func(pgx.Tx) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithActor_WithoutRoleKeepsConnectionRole(t *testing.T) {
	mock := newMockDB(t)
	actor := &models.Actor{ID: uuid.New(), Role: models.RoleAdmin}

	// SET LOCAL ROLE не выполняется
	mock.ExpectBegin()
	mock.ExpectExec(setClaimsQuery).
		WithArgs(claimsFor{actor: actor, role: ""}).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	err := withActor(context.Background(), mock, "", actor, func(pgx.Tx) error { return nil })

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
