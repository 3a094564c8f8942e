package conversation

import (
	"context"
	"fmt"
	"testing"

	"legalyze/internal/models"
	"legalyze/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	log := storage.NewMemoryConversationLog()
	ctx := context.Background()

	const n = 7
	for i := 0; i < n; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		require.NoError(t, log.Append(ctx, "u1", role, fmt.Sprintf("message %d", i)))
	}

	msgs, err := log.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, n)
	for i, m := range msgs {
		require.Equal(t, fmt.Sprintf("message %d", i), m.Content)
		wantRole := models.RoleUser
		if i%2 == 1 {
			wantRole = models.RoleAssistant
		}
		require.Equal(t, wantRole, m.Role)
	}
}

func TestHistoryIsolatedPerUser(t *testing.T) {
	log := storage.NewMemoryConversationLog()
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, "a", models.RoleUser, "hello"))
	require.NoError(t, log.Append(ctx, "b", models.RoleUser, "namaste"))

	msgs, err := log.History(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "hello", msgs[0].Content)
}

func TestLastTurns(t *testing.T) {
	msgs := []models.Message{
		{Role: models.RoleUser, Content: "one"},
		{Role: models.RoleAssistant, Content: "two"},
		{Role: models.RoleUser, Content: "three"},
	}
	require.Nil(t, LastTurns(msgs, 0))
	require.Len(t, LastTurns(msgs, 2), 2)
	require.Equal(t, "two", LastTurns(msgs, 2)[0].Content)
	require.Len(t, LastTurns(msgs, 10), 3)
}
