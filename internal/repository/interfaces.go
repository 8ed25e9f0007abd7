package repository

import (
	"context"
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// Profile is the persistence contract for profile documents. Last write
// wins per (account, profile) document; serialization is the caller's job.
type Profile interface {
	// GetProfile returns the stored document, or (nil, nil) when none exists.
	GetProfile(ctx context.Context, accountID, profileID string) (*domain.Profile, error)
	// SaveProfile overwrites the stored document.
	SaveProfile(ctx context.Context, accountID, profileID string, p *domain.Profile) error
}

// JournalEntry is the durable marker written before a multi-profile commit
// sequence starts. An entry still present after a crash identifies an
// operation that may have partially committed.
type JournalEntry struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	Operation  string    `json:"operation"`
	ProfileIDs []string  `json:"profileIds"`
	StartedAt  time.Time `json:"startedAt"`
}

// Journal records operation commit markers.
type Journal interface {
	BeginOperation(ctx context.Context, entry JournalEntry) error
	CommitOperation(ctx context.Context, id string) error
	// PendingOperations lists entries that were begun but never committed.
	PendingOperations(ctx context.Context) ([]JournalEntry, error)
}
