package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/concurrency"
	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/logger"
	"github.com/Aorux01/Neodyme-sub003/internal/metrics"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
)

// Store owns profile loading, first-use bootstrap from templates, and
// persistence. All revision bumping happens here, at commit time; handlers
// and dispatcher never mutate revisions directly.
//
// Callers must hold the per-(account, profile) lock from Lock around every
// Load/Commit sequence. The store exposes the lock rather than taking it
// internally so one operation can hold several profile locks across its
// whole load-mutate-save window.
type Store struct {
	repo      repository.Profile
	templates TemplateSource
	locks     *concurrency.LockManager
	now       func() time.Time
}

// NewStore creates a Store over the given repository and template source.
func NewStore(repo repository.Profile, templates TemplateSource) *Store {
	return &Store{
		repo:      repo,
		templates: templates,
		locks:     concurrency.NewLockManager(),
		now:       time.Now,
	}
}

func lockKey(accountID, profileID string) string {
	return accountID + "|" + profileID
}

// Lock acquires the serialization locks for every given profile of one
// account, in canonical order, and returns the release function.
func (s *Store) Lock(accountID string, profileIDs ...string) (release func()) {
	keys := make([]string, 0, len(profileIDs))
	for _, id := range profileIDs {
		keys = append(keys, lockKey(accountID, id))
	}
	return s.locks.LockAll(keys...)
}

// Load returns the persisted profile, bootstrapping it from the template on
// first access. The caller must hold the profile's lock.
func (s *Store) Load(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return s.bootstrap(ctx, accountID, profileID)
}

// bootstrap clones the whitelisted template, stamps it for the account, and
// persists it before returning.
func (s *Store) bootstrap(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	tpl, err := s.templates.Template(profileID)
	if err != nil {
		return nil, err
	}

	p, err := tpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	now := s.now().UTC()
	p.ProfileID = profileID
	p.AccountID = accountID
	p.Created = now
	p.Updated = now
	p.Revision = 1
	p.CommandRevision = 1
	if p.Items == nil {
		p.Items = make(map[string]*domain.Item)
	}
	if p.Stats.Attributes == nil {
		p.Stats.Attributes = make(map[string]any)
	}

	if err := s.repo.SaveProfile(ctx, accountID, profileID, p); err != nil {
		return nil, err
	}

	metrics.ProfilesBootstrapped.WithLabelValues(profileID).Inc()
	logger.FromContext(ctx).Info("Bootstrapped profile from template",
		"account_id", accountID, "profile_id", profileID)
	return p, nil
}

// Commit bumps both revision counters by exactly one, stamps the update
// time, and persists the document. The caller must hold the profile's lock.
func (s *Store) Commit(ctx context.Context, p *domain.Profile) error {
	p.Revision++
	p.CommandRevision++
	p.Updated = s.now().UTC()

	if err := s.repo.SaveProfile(ctx, p.AccountID, p.ProfileID, p); err != nil {
		// Roll the in-memory counters back so a retry does not double-bump.
		p.Revision--
		p.CommandRevision--
		return err
	}
	return nil
}
