package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
)

// JournalRepository records operation commit markers
type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

// BeginOperation inserts the marker row for a commit sequence.
func (r *JournalRepository) BeginOperation(ctx context.Context, entry repository.JournalEntry) error {
	query := `
		INSERT INTO operation_journal (id, account_id, operation, profile_ids, started_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.AccountID, entry.Operation, entry.ProfileIDs, entry.StartedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert journal entry: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// CommitOperation deletes the marker once every touched profile is saved.
func (r *JournalRepository) CommitOperation(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM operation_journal WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete journal entry: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// PendingOperations lists markers that were begun but never committed.
func (r *JournalRepository) PendingOperations(ctx context.Context) ([]repository.JournalEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, operation, profile_ids, started_at
		FROM operation_journal
		ORDER BY started_at
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query journal: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pending []repository.JournalEntry
	for rows.Next() {
		var e repository.JournalEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Operation, &e.ProfileIDs, &e.StartedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan journal entry: %v", domain.ErrStoreUnavailable, err)
		}
		pending = append(pending, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read journal rows: %v", domain.ErrStoreUnavailable, err)
	}
	return pending, nil
}
