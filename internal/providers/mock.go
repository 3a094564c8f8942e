package providers

import (
	"context"
	"strings"
)

// MockProvider returns deterministic replies shaped like the real assistant
// output. It backs tests and runs the chat end to end when no key is set.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	_ = ctx
	info := ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}

	text := "Mock reply."
	op := strings.ToLower(req.Operation)
	if strings.Contains(op, "chat") {
		b := strings.Builder{}
		b.WriteString("Personal Greeting\nNamaste! I reviewed your question.\n\n")
		b.WriteString("Case Analysis\nDeterministic mock analysis of the described situation.\n\n")
		b.WriteString("Relevant Legal Acts\n- Indian Contract Act\n\n")
		b.WriteString("Practical Advice\n- Collect every document related to the matter.\n\n")
		b.WriteString("Next Steps\n- Reply with more details to continue.")
		if strings.Contains(strings.ToLower(req.Prompt), "lawyer recommendation") {
			b.WriteString("\n\nLawyer Recommendation\nConsult a practicing advocate in your district.")
		} else {
			b.WriteString("\n\nSelf-Help Guidance\nThis looks manageable without formal representation for now.")
		}
		text = b.String()
	}
	return GenerateResponse{Text: text}, info, nil
}
