package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/logger"
	"github.com/Aorux01/Neodyme-sub003/internal/profile"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
)

// Dispatcher runs the shared operation contract: resolve the handler, lock
// every profile the operation may touch, load the primary, execute the
// handler in memory, then commit all touched profiles and assemble the
// response envelope.
type Dispatcher struct {
	store    *profile.Store
	registry *Registry
	journal  repository.Journal
	now      func() time.Time
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(store *profile.Store, registry *Registry, journal repository.Journal) *Dispatcher {
	return &Dispatcher{
		store:    store,
		registry: registry,
		journal:  journal,
		now:      time.Now,
	}
}

// Dispatch applies one named operation to the caller's primary profile.
// clientRevision is the profile revision the client believes it has; -1
// means not supplied. A stale value is logged, never rejected, and never
// overwrites the stored revision.
func (d *Dispatcher) Dispatch(ctx context.Context, accountID, profileID, opName string, payload json.RawMessage, clientRevision int64) (*domain.OperationResponse, error) {
	log := logger.FromContext(ctx)

	reg, ok := d.registry.Get(opName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, opName)
	}

	// Serialize against every profile this operation may touch. LockAll
	// sorts keys, so overlapping operations cannot deadlock.
	lockIDs := append([]string{profileID}, reg.Secondaries...)
	release := d.store.Lock(accountID, lockIDs...)
	defer release()

	primary, err := d.store.Load(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}

	baseRevision := primary.Revision

	if clientRevision >= 0 && clientRevision != baseRevision {
		// Staleness is flagged but tolerated for client compatibility.
		log.Warn("Client revision does not match stored revision",
			"account_id", accountID, "profile_id", profileID,
			"client_rvn", clientRevision, "stored_rvn", baseRevision)
	}

	allowed := make(map[string]bool, len(reg.Secondaries))
	for _, id := range reg.Secondaries {
		allowed[id] = true
	}

	op := &Op{
		AccountID:   accountID,
		ProfileID:   profileID,
		Name:        opName,
		Payload:     payload,
		Now:         d.now().UTC(),
		Primary:     NewMutator(primary),
		store:       d.store,
		allowed:     allowed,
		secondaries: make(map[string]*secondaryState),
	}

	if err := reg.Handler(ctx, op); err != nil {
		log.Debug("Operation rejected", "operation", opName, "account_id", accountID, "error", err)
		return nil, err
	}

	if err := d.commit(ctx, op); err != nil {
		return nil, err
	}

	log.Info("Operation applied",
		"operation", opName, "account_id", accountID, "profile_id", profileID,
		"rvn", primary.Revision, "changes", len(op.Primary.Changes()))

	return assembleResponse(op, baseRevision, d.now().UTC()), nil
}

// commit persists every touched profile: mutated secondaries first, in
// canonical order, then the primary. Multi-profile sequences are bracketed
// by a journal marker so a crash mid-sequence is detectable. A failure
// after at least one save surfaces as ErrPartialCommit; the marker is left
// in place for reconciliation.
func (d *Dispatcher) commit(ctx context.Context, op *Op) error {
	dirty := op.dirtySecondaryIDs()

	journalID := ""
	if len(dirty) > 0 {
		journalID = uuid.NewString()
		entry := repository.JournalEntry{
			ID:         journalID,
			AccountID:  op.AccountID,
			Operation:  op.Name,
			ProfileIDs: append(append([]string{}, dirty...), op.ProfileID),
			StartedAt:  op.Now,
		}
		if err := d.journal.BeginOperation(ctx, entry); err != nil {
			return err
		}
	}

	saved := 0
	for _, id := range dirty {
		if err := d.store.Commit(ctx, op.secondaries[id].mutator.Profile()); err != nil {
			return d.commitFailure(ctx, op, journalID, saved, id, err)
		}
		saved++
	}

	if err := d.store.Commit(ctx, op.Primary.Profile()); err != nil {
		return d.commitFailure(ctx, op, journalID, saved, op.ProfileID, err)
	}

	if journalID != "" {
		if err := d.journal.CommitOperation(ctx, journalID); err != nil {
			// The operation itself is fully persisted; a stale marker only
			// costs a spurious reconciliation pass.
			logger.FromContext(ctx).Warn("Failed to clear journal marker",
				"journal_id", journalID, "error", err)
		}
	}
	return nil
}

func (d *Dispatcher) commitFailure(ctx context.Context, op *Op, journalID string, saved int, failedProfileID string, err error) error {
	if saved == 0 {
		// Nothing persisted; drop the marker and surface the plain error.
		if journalID != "" {
			if cErr := d.journal.CommitOperation(ctx, journalID); cErr != nil {
				logger.FromContext(ctx).Warn("Failed to clear journal marker",
					"journal_id", journalID, "error", cErr)
			}
		}
		return err
	}

	logger.FromContext(ctx).Error("Multi-profile commit failed after partial save",
		"operation", op.Name, "account_id", op.AccountID,
		"failed_profile", failedProfileID, "saved_profiles", saved,
		"journal_id", journalID, "error", err)
	return fmt.Errorf("%w: operation %s failed saving %s after %d profile(s) committed: %v",
		domain.ErrPartialCommit, op.Name, failedProfileID, saved, err)
}
