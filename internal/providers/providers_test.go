package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legalyze/internal/config"

	"github.com/stretchr/testify/require"
)

func TestParseProviderList(t *testing.T) {
	refs := ParseProviderList("mock|gemini:primary|openai:backup")
	if len(refs) != 3 {
		t.Fatalf("expected 3 providers got %d", len(refs))
	}
	if refs[1].Name != "gemini" || refs[1].KeyAlias != "primary" {
		t.Fatalf("unexpected parse result: %+v", refs[1])
	}
}

func TestParseProviderListEmptyFallsBackToMock(t *testing.T) {
	refs := ParseProviderList("")
	require.Len(t, refs, 1)
	require.Equal(t, "mock", refs[0].Name)
}

func TestManagerRejectsUnknownProvider(t *testing.T) {
	cfg := config.Config{LLMProviders: "carrierpigeon"}
	_, err := NewManager(cfg)
	require.Error(t, err)
}

func TestManagerFindByName(t *testing.T) {
	cfg := config.Config{LLMProviders: "mock|gemini"}
	m, err := NewManager(cfg)
	require.NoError(t, err)
	require.Equal(t, 2, m.Count())
	_, ref, ok := m.FindByName("gemini")
	require.True(t, ok)
	require.Equal(t, "gemini", ref.Name)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{errors.New("gemini generate error 429: rate limit"), ErrorRate},
		{errors.New("openai generate error 401: bad auth"), ErrorAuth},
		{errors.New("insufficient_quota for project"), ErrorQuota},
		{errors.New("context deadline exceeded"), ErrorTimeout},
		{errors.New("prompt too long for model"), ErrorContext},
		{errors.New("something else entirely"), ErrorPermanent},
	}
	for _, tc := range tests {
		if got := ClassifyError(tc.err); got != tc.want {
			t.Fatalf("ClassifyError(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
	require.Equal(t, ErrorType(""), ClassifyError(nil))
}

func TestMockProviderChatShape(t *testing.T) {
	p := NewMockProvider()
	resp, info, err := p.Generate(context.Background(), GenerateRequest{
		Operation: "chat",
		Prompt:    "persona with Lawyer Recommendation section\n\nUser Question:\nfir help",
	})
	require.NoError(t, err)
	require.Equal(t, "mock", info.Name)
	require.True(t, strings.Contains(resp.Text, "Lawyer Recommendation"))
	require.True(t, strings.Contains(resp.Text, "Case Analysis"))
}
