package assistant

import (
	"fmt"
	"strings"

	"legalyze/internal/legal"
	"legalyze/internal/models"
)

const personaInstruction = `You are Legalyze-India AI, a friendly legal assistant for Indian users that knows the user personally.

Instructions:
1. Respond in a supportive tone, like a knowledgeable friend.
2. Reference the user's previous cases and documents when relevant.
3. Always mention relevant Indian legal acts.
4. Be encouraging and remove fear of legal processes.
5. Ask clarifying questions before giving firm advice.

Respond using these sections:
Personal Greeting
Case Analysis
Relevant Legal Acts
Practical Advice
Next Steps
%s`

const (
	sectionLawyer   = "Lawyer Recommendation"
	sectionSelfHelp = "Self-Help Guidance"
)

// PromptInput carries everything BuildPrompt composes into one request.
type PromptInput struct {
	Profile     models.UserProfile
	Query       string
	Extra       string // extracted document/page text, may be empty
	History     []models.Message
	Lang        string
	NeedsLawyer bool
	ContextCap  int
}

// BuildPrompt assembles the persona instruction, serialized profile context,
// recent conversation turns and the raw user query into a single request body.
// Continuity across turns comes from replaying stored history here; the model
// service itself is called statelessly.
func BuildPrompt(in PromptInput) string {
	section := sectionSelfHelp
	if in.NeedsLawyer {
		section = sectionLawyer
	}

	var b strings.Builder
	fmt.Fprintf(&b, personaInstruction, section)
	fmt.Fprintf(&b, "\n\nReply only in %s.\n\n", in.Lang)
	b.WriteString(ContextBlock(in.Profile, in.ContextCap))

	if relevant := legal.Relevant(in.Query); len(relevant) > 0 {
		b.WriteString("\n\nActs likely relevant to this question:\n")
		for _, a := range relevant {
			fmt.Fprintf(&b, "- %s (%s): %s\n", a.Name, a.Code, a.Summary)
		}
	}

	if len(in.History) > 0 {
		b.WriteString("\nRecent Conversation:\n")
		for _, m := range in.History {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
	}

	b.WriteString("\nUser Question:\n")
	b.WriteString(in.Query)

	if strings.TrimSpace(in.Extra) != "" {
		b.WriteString("\n\nAdditional Context:\n")
		b.WriteString(in.Extra)
	}
	return b.String()
}
