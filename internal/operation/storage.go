package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type storageTransferEntry struct {
	ItemID    string `json:"itemId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	ToStorage bool   `json:"toStorage"`
}

type storageTransferRequest struct {
	Transfers []storageTransferEntry `json:"transferOperations" validate:"required,min=1,dive"`
}

// StorageTransfer moves a batch of items between the primary profile and
// the outpost storage profile, in either direction per entry. The whole
// batch is validated against current state before the first move so a bad
// entry rejects the request without touching anything.
func (h *handlers) StorageTransfer(ctx context.Context, op *mcp.Op) error {
	var req storageTransferRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	storage, err := op.Secondary(ctx, domain.ProfileOutpost)
	if err != nil {
		return err
	}

	// Duplicate entries for one item must be checked against the stack as a
	// whole, not one at a time, or a batch could debit more than it holds.
	type transferKey struct {
		itemID    string
		toStorage bool
	}
	requested := make(map[transferKey]int)
	for _, entry := range req.Transfers {
		source := op.Primary
		if !entry.ToStorage {
			source = storage
		}
		item, err := source.Profile().Item(entry.ItemID)
		if err != nil {
			return err
		}
		key := transferKey{itemID: entry.ItemID, toStorage: entry.ToStorage}
		requested[key] += entry.Quantity
		if item.Quantity < requested[key] {
			return fmt.Errorf("%w: item %s has %d, transfers want %d",
				domain.ErrInsufficientQuantity, entry.ItemID, item.Quantity, requested[key])
		}
	}

	for _, entry := range req.Transfers {
		source, dest := op.Primary, storage
		if !entry.ToStorage {
			source, dest = storage, op.Primary
		}
		if err := transferQuantity(source, dest, entry.ItemID, entry.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// transferQuantity moves quantity units of an item across profiles.
// Stackable templates merge into the destination; a full-stack move of
// anything else carries the item and its attributes over intact.
func transferQuantity(from, to *mcp.Mutator, itemID string, quantity int) error {
	item, err := from.Profile().Item(itemID)
	if err != nil {
		return err
	}

	if !domain.IsStackable(item.TemplateID) && item.Quantity == quantity {
		moveItem(from, to, itemID, item)
		return nil
	}

	templateID := item.TemplateID
	var attributes map[string]any
	if !domain.IsStackable(templateID) {
		// A split of a non-stackable item keeps its attributes on both halves.
		attributes = make(map[string]any, len(item.Attributes))
		for k, v := range item.Attributes {
			attributes[k] = v
		}
	}
	if err := from.Consume(itemID, quantity); err != nil {
		return err
	}
	to.Grant(templateID, quantity, attributes)
	return nil
}
