package operation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// AttrPersonality distinguishes worker variants that share a base
// template. Two workers collide in the collection book only when both
// base template and personality match.
const AttrPersonality = "personality"

type slotItemRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

// SlotItemInCollectionBook moves an item from the primary profile into the
// matching collection-book profile. Before inserting, any existing entry
// with the same base template (and personality, for workers) is deleted so
// the book never holds two copies of one base.
func (h *handlers) SlotItemInCollectionBook(ctx context.Context, op *mcp.Op) error {
	var req slotItemRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	item, err := op.Primary.Profile().Item(req.ItemID)
	if err != nil {
		return err
	}

	book, err := op.Secondary(ctx, collectionBookFor(item.TemplateID))
	if err != nil {
		return err
	}

	// Dedup scan first so at most one instance of the base survives.
	base := domain.BaseTemplate(item.TemplateID)
	personality := item.StringAttr(AttrPersonality)
	for existingID, existing := range book.Profile().Items {
		if domain.BaseTemplate(existing.TemplateID) != base {
			continue
		}
		if domain.IsWorker(item.TemplateID) && existing.StringAttr(AttrPersonality) != personality {
			continue
		}
		book.RemoveItem(existingID)
	}

	moveItem(op.Primary, book, req.ItemID, item)
	return nil
}

// UnslotItemFromCollectionBook moves an item out of whichever collection
// book holds it, back into the primary profile. A colliding item id in the
// destination gets a freshly minted id instead.
func (h *handlers) UnslotItemFromCollectionBook(ctx context.Context, op *mcp.Op) error {
	var req slotItemRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	for _, bookID := range []string{domain.ProfileCollectionSchematic, domain.ProfileCollectionPeople} {
		book, err := op.Secondary(ctx, bookID)
		if err != nil {
			return err
		}
		if item, ok := book.Profile().Items[req.ItemID]; ok {
			moveItem(book, op.Primary, req.ItemID, item)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not slotted", domain.ErrItemNotFound, req.ItemID)
}

// collectionBookFor picks the destination book by template prefix.
func collectionBookFor(templateID string) string {
	if domain.IsSchematic(templateID) {
		return domain.ProfileCollectionSchematic
	}
	return domain.ProfileCollectionPeople
}

// moveItem transfers one item between profiles: delete from the source,
// insert into the destination. The item id is preserved unless the
// destination already uses it, in which case a fresh id is minted.
func moveItem(from, to *mcp.Mutator, itemID string, item *domain.Item) {
	from.RemoveItem(itemID)

	targetID := itemID
	if _, exists := to.Profile().Items[targetID]; exists {
		targetID = uuid.NewString()
	}
	to.AddItem(targetID, &domain.Item{
		TemplateID: item.TemplateID,
		Attributes: item.Attributes,
		Quantity:   item.Quantity,
	})
}
