package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// FileStore persists profile documents and journal markers as JSON files
// under a root directory. One file per (account, profile) document.
type FileStore struct {
	root string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "accounts"), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "journal"), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &FileStore{root: dir}, nil
}

func (s *FileStore) profilePath(accountID, profileID string) string {
	return filepath.Join(s.root, "accounts", accountID, profileID+".json")
}

func (s *FileStore) journalPath(id string) string {
	return filepath.Join(s.root, "journal", id+".json")
}

// GetProfile returns the stored document, or (nil, nil) when none exists.
func (s *FileStore) GetProfile(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	var p domain.Profile
	err := utils.LoadJSON(s.profilePath(accountID, profileID), &p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}

// SaveProfile overwrites the stored document.
func (s *FileStore) SaveProfile(ctx context.Context, accountID, profileID string, p *domain.Profile) error {
	if err := utils.SaveJSON(s.profilePath(accountID, profileID), p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// BeginOperation writes the journal marker for an operation commit sequence.
func (s *FileStore) BeginOperation(ctx context.Context, entry JournalEntry) error {
	if err := utils.SaveJSON(s.journalPath(entry.ID), entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// CommitOperation removes the marker once every touched profile is saved.
func (s *FileStore) CommitOperation(ctx context.Context, id string) error {
	if err := os.Remove(s.journalPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// PendingOperations lists markers that were begun but never committed.
func (s *FileStore) PendingOperations(ctx context.Context) ([]JournalEntry, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "journal"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var pending []JournalEntry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		var je JournalEntry
		if err := utils.LoadJSON(filepath.Join(s.root, "journal", e.Name()), &je); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		pending = append(pending, je)
	}
	return pending, nil
}
