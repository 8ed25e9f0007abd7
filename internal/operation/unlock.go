package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type unlockRewardNodeRequest struct {
	NodeID string `json:"nodeId" validate:"required"`
}

// UnlockRewardNode marks a reward graph node as claimed on the profile.
// A node can only ever be unlocked once.
func (h *handlers) UnlockRewardNode(ctx context.Context, op *mcp.Op) error {
	var req unlockRewardNodeRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	nodes := op.Primary.Profile().StatMap(domain.StatUnlockedNodes)
	if unlocked, _ := nodes[req.NodeID].(bool); unlocked {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyUnlocked, req.NodeID)
	}

	nodes[req.NodeID] = true
	op.Primary.SetStat(domain.StatUnlockedNodes, nodes)
	return nil
}
