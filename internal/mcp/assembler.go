package mcp

import (
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// assembleResponse turns a committed operation into the wire envelope,
// folding mutated secondaries into the multi-profile update list.
func assembleResponse(op *Op, baseRevision int64, serverTime time.Time) *domain.OperationResponse {
	primary := op.Primary.Profile()

	resp := &domain.OperationResponse{
		ProfileRevision:            primary.Revision,
		ProfileID:                  op.ProfileID,
		ProfileChangesBaseRevision: baseRevision,
		ProfileChanges:             op.Primary.Changes(),
		Notifications:              op.notifications,
		ProfileCommandRevision:     primary.CommandRevision,
		ServerTime:                 serverTime,
		ResponseVersion:            domain.ResponseVersion,
	}
	if resp.ProfileChanges == nil {
		resp.ProfileChanges = []domain.ProfileChange{}
	}

	for _, id := range op.dirtySecondaryIDs() {
		s := op.secondaries[id]
		p := s.mutator.Profile()
		resp.MultiUpdate = append(resp.MultiUpdate, domain.MultiProfileUpdate{
			ProfileID:                  id,
			ProfileRevision:            p.Revision,
			ProfileCommandRevision:     p.CommandRevision,
			ProfileChangesBaseRevision: s.baseRevision,
			ProfileChanges:             s.mutator.Changes(),
		})
	}
	return resp
}
