package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

func TestFileStoreProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := fs.GetProfile(ctx, "acct-1", domain.ProfileCampaign)
	require.NoError(t, err)
	assert.Nil(t, got, "absent profile reads as nil, nil")

	p := &domain.Profile{
		ProfileID:       domain.ProfileCampaign,
		AccountID:       "acct-1",
		Revision:        3,
		CommandRevision: 3,
		Items: map[string]*domain.Item{
			"it-1": {TemplateID: domain.TemplateGold, Quantity: 250},
		},
	}
	require.NoError(t, fs.SaveProfile(ctx, "acct-1", domain.ProfileCampaign, p))

	got, err = fs.GetProfile(ctx, "acct-1", domain.ProfileCampaign)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.Revision)
	assert.Equal(t, 250, got.Items["it-1"].Quantity)
}

func TestFileStoreJournal(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	entry := JournalEntry{
		ID:         "op-1",
		AccountID:  "acct-1",
		Operation:  "PurchaseCatalogEntry",
		ProfileIDs: []string{domain.ProfileCampaign, domain.ProfileCommonCore},
		StartedAt:  time.Now().UTC(),
	}
	require.NoError(t, fs.BeginOperation(ctx, entry))

	pending, err := fs.PendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "PurchaseCatalogEntry", pending[0].Operation)

	require.NoError(t, fs.CommitOperation(ctx, "op-1"))

	pending, err = fs.PendingOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Committing twice is harmless.
	assert.NoError(t, fs.CommitOperation(ctx, "op-1"))
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := &domain.Profile{
		ProfileID: domain.ProfileCampaign,
		Items:     map[string]*domain.Item{"it-1": {TemplateID: domain.TemplateGold, Quantity: 5}},
	}
	require.NoError(t, m.SaveProfile(ctx, "a", domain.ProfileCampaign, p))

	// Mutating the caller's copy must not reach stored state.
	p.Items["it-1"].Quantity = 999

	got, err := m.GetProfile(ctx, "a", domain.ProfileCampaign)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Items["it-1"].Quantity)
}
