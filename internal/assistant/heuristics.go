package assistant

import "strings"

// highRiskKeywords is the fixed referral keyword set. Matching is
// case-insensitive substring containment; each keyword counts once.
var highRiskKeywords = []string{
	"court notice", "arrest", "police", "fir", "criminal case",
	"property dispute", "divorce", "custody", "bail", "warrant",
}

// AssessLawyerNeed decides whether to recommend professional consultation.
// Deterministic in (query, activeCases): two or more keyword hits, or two or
// more active cases, trigger the referral.
func AssessLawyerNeed(query string, activeCases int) (riskScore int, needsLawyer bool) {
	q := strings.ToLower(query)
	for _, kw := range highRiskKeywords {
		if strings.Contains(q, kw) {
			riskScore++
		}
	}
	return riskScore, riskScore >= 2 || activeCases >= 2
}
