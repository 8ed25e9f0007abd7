package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// AttrTransformOptions lists the template ids an item can be transformed
// into. Items without it cannot be transformed.
const AttrTransformOptions = "transform_options"

type transmogItemRequest struct {
	TargetItemID string `json:"targetItemId" validate:"required"`
}

// TransmogItem converts an item into one of its transform options, chosen
// at random. The source item is destroyed; the result keeps its quantity.
func (h *handlers) TransmogItem(ctx context.Context, op *mcp.Op) error {
	var req transmogItemRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	item, err := op.Primary.Profile().Item(req.TargetItemID)
	if err != nil {
		return err
	}

	options := stringSliceAttr(item, AttrTransformOptions)
	if len(options) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoTransformOptions, req.TargetItemID)
	}

	idx := int(h.rnd() * float64(len(options)))
	if idx >= len(options) {
		idx = len(options) - 1
	}
	result := options[idx]
	quantity := item.Quantity

	op.Primary.RemoveItem(req.TargetItemID)
	itemID := op.Primary.Grant(result, quantity, nil)

	op.Notify(domain.Notification{
		Type:    "transmogResult",
		Primary: true,
		Loot:    []domain.LootEntry{lootEntry(result, itemID, quantity)},
	})
	return nil
}
