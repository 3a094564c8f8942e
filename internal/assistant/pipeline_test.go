package assistant

import (
	"context"
	"errors"
	"testing"

	"legalyze/internal/models"
	"legalyze/internal/profile"
	"legalyze/internal/providers"
	"legalyze/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type failingProvider struct {
	err error
}

func (f *failingProvider) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	_ = ctx
	_ = req
	return providers.GenerateResponse{}, providers.ProviderInfo{Name: "failing"}, f.err
}

type capturingProvider struct {
	lastPrompt string
	reply      string
}

func (c *capturingProvider) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	_ = ctx
	c.lastPrompt = req.Prompt
	return providers.GenerateResponse{Text: c.reply}, providers.ProviderInfo{Name: "capturing"}, nil
}

func newTestAssistant(p providers.LLMProvider) (*Assistant, *profile.Service, *storage.MemoryConversationLog) {
	profiles := profile.NewService(storage.NewMemoryProfileStore())
	log := storage.NewMemoryConversationLog()
	a := New(p, profiles, log, Options{}, zerolog.Nop())
	return a, profiles, log
}

func TestRespondRecordsBothSides(t *testing.T) {
	cp := &capturingProvider{reply: "Personal Greeting\nNamaste."}
	a, _, log := newTestAssistant(cp)
	ctx := context.Background()

	res, err := a.Respond(ctx, TurnInput{UserID: "u1", Query: "What are my rights"})
	require.NoError(t, err)
	require.Equal(t, "Personal Greeting\nNamaste.", res.Reply)
	require.Equal(t, "en", res.Lang)
	require.Equal(t, 0, res.RiskScore)
	require.False(t, res.NeedsLawyer)

	msgs, err := log.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, models.RoleUser, msgs[0].Role)
	require.Equal(t, "What are my rights", msgs[0].Content)
	require.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestRespondPromptCarriesContextAndSections(t *testing.T) {
	cp := &capturingProvider{reply: "ok"}
	a, profiles, _ := newTestAssistant(cp)
	ctx := context.Background()

	_, err := profiles.Update(ctx, "u2", map[string]any{"name": "Asha", "location": "Pune"})
	require.NoError(t, err)
	_, err = profiles.AddCase(ctx, "u2", profile.CaseInfo{Type: "property", Description: "land grab, we have proof"})
	require.NoError(t, err)

	_, err = a.Respond(ctx, TurnInput{UserID: "u2", Query: "Neighbor filed a property dispute and sent a court notice", Extra: "[PDF Content]\nsale deed text"})
	require.NoError(t, err)

	require.Contains(t, cp.lastPrompt, "- Name: Asha")
	require.Contains(t, cp.lastPrompt, "- Active Cases: 1")
	require.Contains(t, cp.lastPrompt, "Lawyer Recommendation")
	require.NotContains(t, cp.lastPrompt, "Self-Help Guidance")
	require.Contains(t, cp.lastPrompt, "Additional Context:\n[PDF Content]\nsale deed text")
	require.Contains(t, cp.lastPrompt, "User Question:\nNeighbor filed a property dispute")
	require.Contains(t, cp.lastPrompt, "Transfer of Property Act")
}

func TestRespondSelfHelpSection(t *testing.T) {
	cp := &capturingProvider{reply: "ok"}
	a, _, _ := newTestAssistant(cp)

	_, err := a.Respond(context.Background(), TurnInput{UserID: "u3", Query: "How do I renew my passport"})
	require.NoError(t, err)
	require.Contains(t, cp.lastPrompt, "Self-Help Guidance")
	require.NotContains(t, cp.lastPrompt, "Lawyer Recommendation")
}

func TestRespondReplaysRecentHistory(t *testing.T) {
	cp := &capturingProvider{reply: "reply"}
	a, _, log := newTestAssistant(cp)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, "u4", models.RoleUser, "earlier question about rent"))
	require.NoError(t, log.Append(ctx, "u4", models.RoleAssistant, "earlier answer about deposit"))

	_, err := a.Respond(ctx, TurnInput{UserID: "u4", Query: "and what about interest"})
	require.NoError(t, err)
	require.Contains(t, cp.lastPrompt, "Recent Conversation:")
	require.Contains(t, cp.lastPrompt, "user: earlier question about rent")
	require.Contains(t, cp.lastPrompt, "assistant: earlier answer about deposit")
}

func TestRespondModelFailureKeepsLogClean(t *testing.T) {
	fp := &failingProvider{err: errors.New("gemini generate error 429: rate limit")}
	a, _, log := newTestAssistant(fp)
	ctx := context.Background()

	res, err := a.Respond(ctx, TurnInput{UserID: "u5", Query: "What are my rights"})
	require.Error(t, err)
	require.Equal(t, providers.ErrorRate, res.ErrKind)
	require.Empty(t, res.Reply)

	// The user message is recorded; no assistant entry is written.
	msgs, herr := log.History(ctx, "u5")
	require.NoError(t, herr)
	require.Len(t, msgs, 1)
	require.Equal(t, models.RoleUser, msgs[0].Role)
}

func TestRespondStorageFailureAbortsTurn(t *testing.T) {
	cp := &capturingProvider{reply: "ok"}
	profiles := profile.NewService(storage.NewMemoryProfileStore())
	log := storage.NewMemoryConversationLog()
	log.FailAppend = true
	a := New(cp, profiles, log, Options{}, zerolog.Nop())

	_, err := a.Respond(context.Background(), TurnInput{UserID: "u6", Query: "anything"})
	require.Error(t, err)
	require.Empty(t, cp.lastPrompt, "dispatch must not run when the user message cannot be recorded")
}
