package conversation

import (
	"context"

	"legalyze/internal/models"
)

// Log is an ordered, append-only per-user message store. Entries are never
// edited or removed; the transcript is reconstructed by replaying them.
type Log interface {
	Append(ctx context.Context, userID, role, content string) error
	History(ctx context.Context, userID string) ([]models.Message, error)
}

// LastTurns returns the trailing n messages of a history. n <= 0 returns nil.
func LastTurns(msgs []models.Message, n int) []models.Message {
	if n <= 0 || len(msgs) == 0 {
		return nil
	}
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
