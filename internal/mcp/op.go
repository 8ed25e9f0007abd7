package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/profile"
)

var validate = validator.New()

// secondaryState tracks one secondary profile pulled in by a handler.
type secondaryState struct {
	mutator      *Mutator
	baseRevision int64
}

// Op is the per-request bundle a handler executes against: the caller's
// account, the decoded payload, the primary profile behind a Mutator, and
// lazy access to the secondary profiles the operation registered for.
type Op struct {
	AccountID string
	ProfileID string
	Name      string
	Payload   json.RawMessage
	Now       time.Time
	Primary   *Mutator

	store         *profile.Store
	allowed       map[string]bool
	secondaries   map[string]*secondaryState
	notifications []domain.Notification
}

// Decode unmarshals the payload into v and validates its tags. Any failure
// is an ErrInvalidPayload; handlers call Decode before touching state.
func (o *Op) Decode(v any) error {
	if err := json.Unmarshal(o.Payload, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

// Secondary loads another of the caller's profiles. Only profiles the
// operation declared at registration are reachable; their locks are already
// held by the dispatcher.
func (o *Op) Secondary(ctx context.Context, profileID string) (*Mutator, error) {
	if profileID == o.ProfileID {
		return o.Primary, nil
	}
	if !o.allowed[profileID] {
		return nil, fmt.Errorf("%w: operation %s did not register profile %s", domain.ErrProfileNotFound, o.Name, profileID)
	}
	if s, ok := o.secondaries[profileID]; ok {
		return s.mutator, nil
	}

	p, err := o.store.Load(ctx, o.AccountID, profileID)
	if err != nil {
		return nil, err
	}

	s := &secondaryState{
		mutator:      NewMutator(p),
		baseRevision: p.Revision,
	}
	o.secondaries[profileID] = s
	return s.mutator, nil
}

// Notify queues a user-facing notification for the response.
func (o *Op) Notify(n domain.Notification) {
	o.notifications = append(o.notifications, n)
}

// dirtySecondaryIDs returns the profile ids of mutated secondaries in
// canonical commit order.
func (o *Op) dirtySecondaryIDs() []string {
	ids := make([]string, 0, len(o.secondaries))
	for id, s := range o.secondaries {
		if s.mutator.Dirty() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
