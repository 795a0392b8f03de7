package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

// DB - методы пула, которыми пользуются репозитории; его реализует *pgxpool.Pool
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const setClaimsQuery = `SELECT set_config('request.jwt.claims', $1, true)`

// withActor выполняет fn в транзакции от имени пользователя: claims попадают в
// request.jwt.claims, роль переключается на rlsRole, и политики RLS проверяют запрос заново.
func withActor(ctx context.Context, db DB, rlsRole string, actor *models.Actor, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = actAs(ctx, tx, rlsRole, actor)
	if err == nil {
		err = fn(tx)
	}
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classifyPgError(err))
	}
	return nil
}

func actAs(ctx context.Context, tx pgx.Tx, rlsRole string, actor *models.Actor) error {
	claims, err := json.Marshal(map[string]string{
		"sub":       actor.ID.String(),
		"email":     actor.Email,
		"role":      rlsRole,
		"user_role": string(actor.Role),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}
	if _, err := tx.Exec(ctx, setClaimsQuery, string(claims)); err != nil {
		return fmt.Errorf("failed to set request claims: %w", err)
	}
	if rlsRole != "" {
		if _, err := tx.Exec(ctx, "SET LOCAL ROLE "+pgx.Identifier{rlsRole}.Sanitize()); err != nil {
			return fmt.Errorf("failed to switch to role %s: %w", rlsRole, err)
		}
	}
	return nil
}

// missingRowError объясняет UPDATE без строк: запись либо отсутствует, либо скрыта политикой RLS.
// Проверка идёт через пул, то есть под ролью сервиса, а не пользователя.
func missingRowError(ctx context.Context, db DB, table string, id uuid.UUID) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM ` + pgx.Identifier{table}.Sanitize() + ` WHERE id = $1);`
	if err := db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, classifyPgError(err))
	}
	if !exists {
		return fmt.Errorf("%s with id %s: %w", table, id, service.ErrNotFound)
	}
	return fmt.Errorf("update of %s %s matched no rows: %w", table, id, service.ErrStorageDenied)
}
