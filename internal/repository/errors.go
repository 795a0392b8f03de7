package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

// Ограничения, которые миграция 000002 расширяет новыми статусами и действиями
var migratedConstraints = map[string]bool{
	"incidents_status_check":     true,
	"incident_logs_action_check": true,
}

// classifyPgError сопоставляет отказы БД ошибкам сервиса.
// Неизвестная колонка, значение enum или отказ CHECK статуса означают, что схема отстаёт от кода.
// Прочие нарушения CHECK и FK - некорректные данные запроса.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.CheckViolation:
		if migratedConstraints[pgErr.ConstraintName] {
			return fmt.Errorf("%w: %s (SQLSTATE %s)", service.ErrSchemaMismatch, pgErr.Message, pgErr.Code)
		}
		return fmt.Errorf("%w: value violates constraint %s", service.ErrInvalidInput, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: referenced record does not exist (%s)", service.ErrInvalidInput, pgErr.ConstraintName)
	case pgerrcode.UndefinedColumn,
		pgerrcode.UndefinedTable,
		pgerrcode.InvalidTextRepresentation:
		return fmt.Errorf("%w: %s (SQLSTATE %s)", service.ErrSchemaMismatch, pgErr.Message, pgErr.Code)
	case pgerrcode.InsufficientPrivilege:
		return fmt.Errorf("%w: %s", service.ErrStorageDenied, pgErr.Message)
	}
	return err
}
