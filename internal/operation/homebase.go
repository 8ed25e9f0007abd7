package operation

import (
	"context"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type setHomebaseNameRequest struct {
	HomebaseName string `json:"homebaseName" validate:"required,min=3,max=16,printascii"`
}

// SetHomebaseName renames the account's homebase. The name lives on the
// outpost profile regardless of which profile the client addressed.
func (h *handlers) SetHomebaseName(ctx context.Context, op *mcp.Op) error {
	var req setHomebaseNameRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	target := op.Primary
	if op.ProfileID != domain.ProfileOutpost {
		outpost, err := op.Secondary(ctx, domain.ProfileOutpost)
		if err != nil {
			return err
		}
		target = outpost
	}

	target.SetStat(domain.StatHomebaseName, req.HomebaseName)
	return nil
}
