package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// AttrItemLevel is the per-item upgrade level attribute.
const AttrItemLevel = "level"

// UpgradeCostPerLevel scales the upgrade-point price of each item level.
const UpgradeCostPerLevel = 5

type upgradeItemLevelRequest struct {
	TargetItemID string `json:"targetItemId" validate:"required"`
}

// UpgradeItemLevel raises one item's level attribute by one, spending
// upgrade points.
func (h *handlers) UpgradeItemLevel(ctx context.Context, op *mcp.Op) error {
	var req upgradeItemLevelRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	profile := op.Primary.Profile()
	item, err := profile.Item(req.TargetItemID)
	if err != nil {
		return err
	}

	level := int(item.FloatAttr(AttrItemLevel))
	if level >= domain.MaxItemLevel {
		return fmt.Errorf("%w: item %s is at level %d", domain.ErrMaxLevelReached, req.TargetItemID, level)
	}

	cost := (level + 1) * UpgradeCostPerLevel
	walletID := profile.FindByTemplate(domain.TemplateUpgradePoints)
	if walletID == "" || profile.Items[walletID].Quantity < cost {
		return fmt.Errorf("%w: item level %d costs %d upgrade points", domain.ErrInsufficientFunds, level+1, cost)
	}

	if err := op.Primary.Consume(walletID, cost); err != nil {
		return err
	}
	op.Primary.SetItemAttribute(req.TargetItemID, AttrItemLevel, float64(level+1))
	return nil
}
