package service

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrNotFound               = errors.New("not found")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidInput           = errors.New("invalid input")

	// ErrStorageDenied - отказ политики доступа на уровне строк в БД,
	// отличается от ErrPermissionDenied, который выдаёт сам сервис.
	ErrStorageDenied = errors.New("storage denied")

	// ErrSchemaMismatch - БД отвергла значение или колонку, которые сервис уже считает допустимыми:
	// схема отстаёт от кода, нужно применить миграции.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrAuditLog никогда не возвращается вызывающему, только логируется.
	ErrAuditLog = errors.New("audit log write failed")
)
