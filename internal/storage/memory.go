package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"legalyze/internal/models"
	"legalyze/internal/util"
)

// MemoryProfileStore is an in-process document store with the same contract as
// ProfileRepo. It backs tests and the no-Postgres development mode.
type MemoryProfileStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemoryProfileStore) Get(ctx context.Context, userID string) (models.UserProfile, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.docs[userID]
	if !ok {
		return models.UserProfile{}, false, nil
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.UserProfile{}, false, wrapStorage("decode profile", err)
	}
	return p, true, nil
}

func (s *MemoryProfileStore) Insert(ctx context.Context, p models.UserProfile) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[p.UserID]; ok {
		return wrapStorage("insert profile", fmt.Errorf("duplicate user %s", p.UserID))
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return wrapStorage("encode profile", err)
	}
	s.docs[p.UserID] = raw
	return nil
}

func (s *MemoryProfileStore) Update(ctx context.Context, userID string, fields map[string]any) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.docs[userID]
	if !ok {
		return wrapStorage("update profile", fmt.Errorf("no profile for user %s", userID))
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return wrapStorage("decode profile", err)
	}
	// Shallow field merge, matching JSONB || semantics.
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return wrapStorage("encode profile", err)
	}
	s.docs[userID] = merged
	return nil
}

func (s *MemoryProfileStore) Upsert(ctx context.Context, p models.UserProfile) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(p)
	if err != nil {
		return wrapStorage("encode profile", err)
	}
	s.docs[p.UserID] = raw
	return nil
}

// MemoryConversationLog is the in-process counterpart of ConversationRepo.
type MemoryConversationLog struct {
	mu   sync.Mutex
	logs map[string][]models.Message

	// FailAppend forces append errors; used to exercise storage failure paths.
	FailAppend bool
}

func NewMemoryConversationLog() *MemoryConversationLog {
	return &MemoryConversationLog{logs: make(map[string][]models.Message)}
}

func (l *MemoryConversationLog) Append(ctx context.Context, userID, role, content string) error {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailAppend {
		return fmt.Errorf("append message: %w: forced failure", util.ErrStorage)
	}
	l.logs[userID] = append(l.logs[userID], models.Message{Role: role, Content: content})
	return nil
}

func (l *MemoryConversationLog) History(ctx context.Context, userID string) ([]models.Message, error) {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Message, len(l.logs[userID]))
	copy(out, l.logs[userID])
	return out, nil
}
