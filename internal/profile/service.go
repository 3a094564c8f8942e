package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legalyze/internal/models"
)

// Store is the document-store contract the service runs on. Both the Postgres
// repo and the in-memory store satisfy it.
type Store interface {
	Get(ctx context.Context, userID string) (models.UserProfile, bool, error)
	Insert(ctx context.Context, p models.UserProfile) error
	Update(ctx context.Context, userID string, fields map[string]any) error
	Upsert(ctx context.Context, p models.UserProfile) error
}

type CaseInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// LoadOrCreate returns the stored profile for userID, creating and persisting
// the default shape on first contact. Calling it again with the same ID
// returns the same record.
func (s *Service) LoadOrCreate(ctx context.Context, userID string) (models.UserProfile, error) {
	p, ok, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	if ok {
		return p, nil
	}

	p = models.UserProfile{
		UserID:       userID,
		Cases:        []models.Case{},
		Documents:    []string{},
		LegalHistory: []string{},
		RiskProfile:  "unknown",
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.Insert(ctx, p); err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// Update merges fields into the stored document and returns the refreshed
// profile. Fields are not validated against the profile schema.
func (s *Service) Update(ctx context.Context, userID string, fields map[string]any) (models.UserProfile, error) {
	if _, err := s.LoadOrCreate(ctx, userID); err != nil {
		return models.UserProfile{}, err
	}
	if err := s.store.Update(ctx, userID, fields); err != nil {
		return models.UserProfile{}, err
	}
	p, ok, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	if !ok {
		return models.UserProfile{}, fmt.Errorf("profile vanished for user %s", userID)
	}
	return p, nil
}

// AddCase appends a case with a derived strength label. IDs are sequential
// within the profile.
func (s *Service) AddCase(ctx context.Context, userID string, info CaseInfo) (models.Case, error) {
	p, err := s.LoadOrCreate(ctx, userID)
	if err != nil {
		return models.Case{}, err
	}
	c := models.Case{
		ID:          len(p.Cases) + 1,
		Type:        info.Type,
		Description: info.Description,
		Status:      models.CaseStatusActive,
		Strength:    CaseStrength(info.Description),
		CreatedAt:   s.now().UTC(),
	}
	cases := append(p.Cases, c)
	if err := s.store.Update(ctx, userID, map[string]any{"cases": cases}); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

// AddDocument records an uploaded document reference on the profile.
func (s *Service) AddDocument(ctx context.Context, userID, entry string) error {
	p, err := s.LoadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	docs := append(p.Documents, entry)
	return s.store.Update(ctx, userID, map[string]any{"documents": docs})
}

// ConnectDigiLocker flips the DigiLocker flag on the profile.
func (s *Service) ConnectDigiLocker(ctx context.Context, userID string) error {
	if _, err := s.LoadOrCreate(ctx, userID); err != nil {
		return err
	}
	return s.store.Update(ctx, userID, map[string]any{"digilocker_connected": true})
}

var (
	strongKeywords = []string{"evidence", "witness", "document", "proof"}
	weakKeywords   = []string{"maybe", "think", "probably"}
)

// CaseStrength derives a strength label from the case description. Strong
// keywords are checked before weak ones, so a description matching both comes
// out strong.
func CaseStrength(description string) string {
	d := strings.ToLower(description)
	for _, kw := range strongKeywords {
		if strings.Contains(d, kw) {
			return models.CaseStrengthStrong
		}
	}
	for _, kw := range weakKeywords {
		if strings.Contains(d, kw) {
			return models.CaseStrengthWeak
		}
	}
	return models.CaseStrengthMedium
}
