package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service"
)

type ChatRepository struct {
	db DB
}

func NewChatRepository(db DB) service.ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Insert(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (user_id, role, content, incident_id, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		msg.UserID,
		msg.Role,
		msg.Content,
		msg.IncidentID,
		msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", classifyPgError(err))
	}
	return nil
}

// Recent возвращает последние limit сообщений пользователя, новые первыми
func (r *ChatRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, user_id, role, content, incident_id, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", classifyPgError(err))
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(
			&msg.ID,
			&msg.UserID,
			&msg.Role,
			&msg.Content,
			&msg.IncidentID,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return messages, nil
}

func (r *ChatRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chat history: %w", classifyPgError(err))
	}
	return cmdTag.RowsAffected(), nil
}
