package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// RecycleRefundPerUnit is the gold refunded per destroyed item unit.
const RecycleRefundPerUnit = 25

type recycleItemsRequest struct {
	TargetItemIDs []string `json:"targetItemIds" validate:"required,min=1,dive,required"`
}

// RecycleItems destroys a batch of items and refunds gold in proportion to
// the destroyed quantity. Favorited items are protected; every id is
// validated before anything is destroyed.
func (h *handlers) RecycleItems(ctx context.Context, op *mcp.Op) error {
	var req recycleItemsRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	profile := op.Primary.Profile()
	refund := 0
	seen := make(map[string]bool, len(req.TargetItemIDs))
	for _, itemID := range req.TargetItemIDs {
		if seen[itemID] {
			return fmt.Errorf("%w: duplicate target item %s", domain.ErrInvalidPayload, itemID)
		}
		seen[itemID] = true
		item, err := profile.Item(itemID)
		if err != nil {
			return err
		}
		if favorite, _ := item.Attr(AttrFavorite).(bool); favorite {
			return fmt.Errorf("%w: %s is favorited", domain.ErrInvalidPayload, itemID)
		}
		if domain.TemplateType(item.TemplateID) == domain.TemplateTypeCurrency {
			return fmt.Errorf("%w: %s is currency", domain.ErrInvalidPayload, itemID)
		}
		refund += item.Quantity * RecycleRefundPerUnit
	}

	for _, itemID := range req.TargetItemIDs {
		op.Primary.RemoveItem(itemID)
	}

	goldID := op.Primary.Grant(domain.TemplateGold, refund, nil)
	op.Notify(domain.Notification{
		Type:    "recycleResult",
		Primary: true,
		Loot:    []domain.LootEntry{lootEntry(domain.TemplateGold, goldID, refund)},
	})
	return nil
}
