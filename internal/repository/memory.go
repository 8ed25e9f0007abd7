package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// Memory is an in-memory Profile and Journal implementation for tests and
// ephemeral dev runs. Documents are deep-copied on the way in and out so
// callers cannot mutate stored state behind the store's back.
type Memory struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	journal  map[string]JournalEntry

	// SaveHook, when set, runs before every SaveProfile; returning an error
	// makes the save fail. Used to exercise partial-commit paths.
	SaveHook func(accountID, profileID string) error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]*domain.Profile),
		journal:  make(map[string]JournalEntry),
	}
}

func memKey(accountID, profileID string) string {
	return accountID + "/" + profileID
}

// GetProfile returns a copy of the stored document, or (nil, nil) when absent.
func (m *Memory) GetProfile(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[memKey(accountID, profileID)]
	if !ok {
		return nil, nil
	}
	out, err := p.Clone()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}

// SaveProfile stores a copy of the document.
func (m *Memory) SaveProfile(ctx context.Context, accountID, profileID string, p *domain.Profile) error {
	if m.SaveHook != nil {
		if err := m.SaveHook(accountID, profileID); err != nil {
			return err
		}
	}

	stored, err := p.Clone()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[memKey(accountID, profileID)] = stored
	return nil
}

// BeginOperation records a journal marker.
func (m *Memory) BeginOperation(ctx context.Context, entry JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal[entry.ID] = entry
	return nil
}

// CommitOperation drops the marker.
func (m *Memory) CommitOperation(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.journal, id)
	return nil
}

// PendingOperations lists uncommitted markers.
func (m *Memory) PendingOperations(ctx context.Context) ([]JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]JournalEntry, 0, len(m.journal))
	for _, e := range m.journal {
		out = append(out, e)
	}
	return out, nil
}
