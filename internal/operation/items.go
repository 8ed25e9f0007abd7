package operation

import (
	"context"

	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// Item attribute keys for client-side bookkeeping flags.
const (
	AttrFavorite = "favorite"
	AttrItemSeen = "item_seen"
)

type setItemFavoriteStatusRequest struct {
	TargetItemID string `json:"targetItemId" validate:"required"`
	Favorite     bool   `json:"bFavorite"`
}

// SetItemFavoriteStatus flips the favorite flag on one item.
func (h *handlers) SetItemFavoriteStatus(ctx context.Context, op *mcp.Op) error {
	var req setItemFavoriteStatusRequest
	if err := op.Decode(&req); err != nil {
		return err
	}
	if _, err := op.Primary.Profile().Item(req.TargetItemID); err != nil {
		return err
	}
	op.Primary.SetItemAttribute(req.TargetItemID, AttrFavorite, req.Favorite)
	return nil
}

type markItemSeenRequest struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,required"`
}

// MarkItemSeen marks a batch of items as seen in the client UI. Every id
// is checked before the first flag is set.
func (h *handlers) MarkItemSeen(ctx context.Context, op *mcp.Op) error {
	var req markItemSeenRequest
	if err := op.Decode(&req); err != nil {
		return err
	}
	for _, itemID := range req.ItemIDs {
		if _, err := op.Primary.Profile().Item(itemID); err != nil {
			return err
		}
	}
	for _, itemID := range req.ItemIDs {
		op.Primary.SetItemAttribute(itemID, AttrItemSeen, true)
	}
	return nil
}
