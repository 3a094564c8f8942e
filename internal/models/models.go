package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	CaseStatusActive = "active"

	CaseStrengthStrong = "strong"
	CaseStrengthMedium = "medium"
	CaseStrengthWeak   = "weak"
)

// UserProfile is the per-user document persisted by the profile store.
// Documents and LegalHistory are loosely structured entries; the store does
// not validate them.
type UserProfile struct {
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	Cases               []Case    `json:"cases"`
	Documents           []string  `json:"documents"`
	LegalHistory        []string  `json:"legal_history"`
	DigiLockerConnected bool      `json:"digilocker_connected"`
	RiskProfile         string    `json:"risk_profile"`
	CreatedAt           time.Time `json:"created_at"`
}

// Case is a user-reported legal matter. ID is sequential within one profile.
// Strength is derived once at creation and never recomputed.
type Case struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Strength    string    `json:"strength"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is one entry of a per-user conversation log. Entries are append-only
// and never edited.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
