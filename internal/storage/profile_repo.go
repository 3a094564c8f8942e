package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"legalyze/internal/models"
	"legalyze/internal/util"

	"github.com/jackc/pgx/v5"
)

// ProfileRepo keeps one JSONB document per user, keyed by user_id. The caller
// owns the document schema; the store only guarantees key uniqueness.
type ProfileRepo struct {
	db *DB
}

func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (models.UserProfile, bool, error) {
	var raw []byte
	err := r.db.Pool.QueryRow(ctx, `SELECT doc FROM profiles WHERE user_id=$1`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UserProfile{}, false, nil
	}
	if err != nil {
		return models.UserProfile{}, false, wrapStorage("get profile", err)
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.UserProfile{}, false, wrapStorage("decode profile", err)
	}
	return p, true, nil
}

func (r *ProfileRepo) Insert(ctx context.Context, p models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return wrapStorage("encode profile", err)
	}
	if _, err := r.db.Pool.Exec(ctx, `INSERT INTO profiles (user_id, doc) VALUES ($1, $2)`, p.UserID, raw); err != nil {
		return wrapStorage("insert profile", err)
	}
	return nil
}

// Update merges the given fields into the stored document. Merge happens at
// the JSONB level, so unknown keys pass through unvalidated.
func (r *ProfileRepo) Update(ctx context.Context, userID string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return wrapStorage("encode profile update", err)
	}
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE profiles SET doc = doc || $2::jsonb, updated_at = NOW() WHERE user_id = $1`, userID, raw)
	if err != nil {
		return wrapStorage("update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStorage("update profile", fmt.Errorf("no profile for user %s", userID))
	}
	return nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, p models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return wrapStorage("encode profile", err)
	}
	_, err = r.db.Pool.Exec(ctx, `
INSERT INTO profiles (user_id, doc) VALUES ($1, $2)
ON CONFLICT (user_id)
DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`, p.UserID, raw)
	if err != nil {
		return wrapStorage("upsert profile", err)
	}
	return nil
}

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, util.ErrStorage, err)
}
