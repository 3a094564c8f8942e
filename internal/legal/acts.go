package legal

import "strings"

// Act is one entry of the static Indian legal-acts knowledge base fed into
// the assistant prompt.
type Act struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Summary string `json:"summary"`

	keywords []string
}

var acts = []Act{
	{
		Code:     "IPC",
		Name:     "Indian Penal Code",
		Summary:  "Criminal offenses and punishments, including cheating (S.420), criminal intimidation (S.506) and cruelty (S.498A).",
		keywords: []string{"criminal", "theft", "cheat", "cheated", "fraud", "fir", "police", "arrest", "intimidation", "dowry", "cruelty"},
	},
	{
		Code:     "CrPC",
		Name:     "Criminal Procedure Code",
		Summary:  "Criminal court procedures, FIR registration (S.154) and anticipatory bail (S.438).",
		keywords: []string{"fir", "bail", "warrant", "police", "arrest", "court notice", "criminal"},
	},
	{
		Code:     "CPC",
		Name:     "Civil Procedure Code",
		Summary:  "Civil court procedures for suits, appeals and execution of decrees.",
		keywords: []string{"civil", "suit", "appeal", "decree", "injunction"},
	},
	{
		Code:     "Evidence Act",
		Name:     "Indian Evidence Act",
		Summary:  "Rules of evidence: admissibility, burden of proof and witness testimony.",
		keywords: []string{"evidence", "witness", "proof", "testimony", "document"},
	},
	{
		Code:     "Contract Act",
		Name:     "Indian Contract Act",
		Summary:  "Formation, performance and breach of contracts; remedies for breach.",
		keywords: []string{"contract", "agreement", "breach", "deposit", "rent", "landlord", "tenant"},
	},
	{
		Code:     "Property Act",
		Name:     "Transfer of Property Act",
		Summary:  "Sale, mortgage, lease and gift of immovable property.",
		keywords: []string{"property", "land", "sale deed", "mortgage", "lease", "possession", "encroach"},
	},
	{
		Code:     "Consumer Protection",
		Name:     "Consumer Protection Act",
		Summary:  "Consumer rights and complaint forums for defective goods and deficient services.",
		keywords: []string{"consumer", "refund", "defective", "service", "warranty", "builder", "delivery"},
	},
	{
		Code:     "RTI",
		Name:     "Right to Information Act",
		Summary:  "Access to information held by public authorities.",
		keywords: []string{"rti", "information", "public authority", "government record"},
	},
	{
		Code:     "HMA",
		Name:     "Hindu Marriage Act",
		Summary:  "Marriage, divorce, maintenance and custody for parties governed by the Act.",
		keywords: []string{"divorce", "custody", "maintenance", "alimony", "marriage"},
	},
}

// All returns the full knowledge base.
func All() []Act {
	out := make([]Act, len(acts))
	copy(out, acts)
	return out
}

// Relevant returns the acts whose keywords appear in the query, most matches
// first. An empty result means no act obviously applies; the prompt then
// carries no act hints rather than guessing.
func Relevant(query string) []Act {
	q := strings.ToLower(query)
	type scored struct {
		act   Act
		score int
	}
	matches := make([]scored, 0, len(acts))
	for _, a := range acts {
		score := 0
		for _, kw := range a.keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{act: a, score: score})
		}
	}
	// Insertion sort keeps the knowledge-base order stable between equals.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].score > matches[j-1].score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	out := make([]Act, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.act)
	}
	return out
}
