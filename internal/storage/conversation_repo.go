package storage

import (
	"context"
	"fmt"

	"legalyze/internal/models"
)

// ConversationRepo is an append-only per-user message log. Each append is a
// single row insert, so the cost of a turn does not grow with history length.
type ConversationRepo struct {
	db *DB
}

func NewConversationRepo(db *DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

func (r *ConversationRepo) Append(ctx context.Context, userID, role, content string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO messages (user_id, role, content) VALUES ($1, $2, $3)`, userID, role, content)
	if err != nil {
		return wrapStorage("append message", err)
	}
	return nil
}

func (r *ConversationRepo) History(ctx context.Context, userID string) ([]models.Message, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT role, content, created_at FROM messages WHERE user_id=$1 ORDER BY seq`, userID)
	if err != nil {
		return nil, wrapStorage("load history", err)
	}
	defer rows.Close()

	out := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, wrapStorage("scan message", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}
