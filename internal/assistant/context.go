package assistant

import (
	"fmt"
	"strings"

	"legalyze/internal/models"
	"legalyze/internal/util"
)

// ContextBlock renders the profile into the fixed-format summary injected into
// each model request. History and document entries are selected most recent
// first so the block stays inside budgetChars no matter how large the profile
// has grown.
func ContextBlock(p models.UserProfile, budgetChars int) string {
	name := p.Name
	if name == "" {
		name = "User"
	}
	location := p.Location
	if location == "" {
		location = "India"
	}

	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", name)
	fmt.Fprintf(&b, "- Location: %s\n", location)
	fmt.Fprintf(&b, "- Active Cases: %d\n", len(p.Cases))
	fmt.Fprintf(&b, "- Legal History: %s\n", joinRecent(p.LegalHistory, 5))
	fmt.Fprintf(&b, "- Documents Available: %s\n", joinRecent(p.Documents, 5))
	fmt.Fprintf(&b, "- Risk Profile: %s", p.RiskProfile)

	return util.Truncate(b.String(), budgetChars)
}

// joinRecent keeps the trailing max entries, newest last.
func joinRecent(entries []string, max int) string {
	if len(entries) == 0 {
		return "none"
	}
	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	return strings.Join(entries, "; ")
}
