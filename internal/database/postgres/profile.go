package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// ProfileRepository persists profile documents as jsonb rows
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile returns the stored document, or (nil, nil) when none exists.
func (r *ProfileRepository) GetProfile(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	query := `
		SELECT document
		FROM profiles
		WHERE account_id = $1 AND profile_id = $2
	`
	var doc []byte
	err := r.db.QueryRow(ctx, query, accountID, profileID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to query profile: %v", domain.ErrStoreUnavailable, err)
	}

	var p domain.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("%w: failed to decode profile document: %v", domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}

// SaveProfile upserts the document, keeping the revision column in step for
// operator-side queries.
func (r *ProfileRepository) SaveProfile(ctx context.Context, accountID, profileID string, p *domain.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: failed to encode profile document: %v", domain.ErrStoreUnavailable, err)
	}

	query := `
		INSERT INTO profiles (account_id, profile_id, document, revision, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (account_id, profile_id)
		DO UPDATE SET document = EXCLUDED.document, revision = EXCLUDED.revision, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, accountID, profileID, doc, p.Revision); err != nil {
		return fmt.Errorf("%w: failed to upsert profile: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
