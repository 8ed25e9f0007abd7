package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/lootbox"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// AttrChoiceOptions holds the pre-rolled options on a choice container.
const AttrChoiceOptions = "options"

type openCardPackRequest struct {
	CardPackItemID string `json:"cardPackItemId" validate:"required"`
	// SelectionIdx picks one option out of a choice container. Required
	// for choice packs, ignored for standard packs.
	SelectionIdx *int `json:"selectionIdx"`
}

// OpenCardPack opens a loot pack. A standard pack mints ten drops from its
// template's pool, each drop with a small chance of being a choice
// container instead. A choice container grants only the option the client
// selected. The pack stack decrements by one per opening and is deleted
// when it empties.
func (h *handlers) OpenCardPack(ctx context.Context, op *mcp.Op) error {
	var req openCardPackRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	profile := op.Primary.Profile()
	pack, err := profile.Item(req.CardPackItemID)
	if err != nil {
		return err
	}
	if domain.TemplateType(pack.TemplateID) != domain.TemplateTypeCardPack {
		return fmt.Errorf("%w: %s is not a card pack", domain.ErrInvalidPayload, req.CardPackItemID)
	}

	var loot []domain.LootEntry
	if pack.TemplateID == lootbox.ChoicePackTemplate {
		loot, err = h.openChoicePack(op, pack, req.SelectionIdx)
	} else {
		loot, err = h.openStandardPack(op, pack.TemplateID)
	}
	if err != nil {
		return err
	}

	if err := op.Primary.Consume(req.CardPackItemID, 1); err != nil {
		return err
	}

	op.Notify(domain.Notification{
		Type:    "cardPackResult",
		Primary: true,
		Loot:    loot,
	})
	return nil
}

func (h *handlers) openStandardPack(op *mcp.Op, packTemplateID string) ([]domain.LootEntry, error) {
	drops, err := h.lootbox.RollPack(packTemplateID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	loot := make([]domain.LootEntry, 0, len(drops))
	for _, drop := range drops {
		var attrs map[string]any
		if len(drop.Options) > 0 {
			attrs = map[string]any{AttrChoiceOptions: drop.Options}
		}
		itemID := op.Primary.Grant(drop.TemplateID, drop.Quantity, attrs)
		loot = append(loot, lootEntry(drop.TemplateID, itemID, drop.Quantity))
	}
	return loot, nil
}

func (h *handlers) openChoicePack(op *mcp.Op, pack *domain.Item, selectionIdx *int) ([]domain.LootEntry, error) {
	if selectionIdx == nil {
		return nil, fmt.Errorf("%w: selectionIdx is required for a choice pack", domain.ErrInvalidPayload)
	}

	var options []lootbox.Option
	if err := attrAs(pack.Attr(AttrChoiceOptions), &options); err != nil {
		return nil, err
	}
	if *selectionIdx < 0 || *selectionIdx >= len(options) {
		return nil, fmt.Errorf("%w: selectionIdx %d out of range for %d options", domain.ErrInvalidPayload, *selectionIdx, len(options))
	}

	chosen := options[*selectionIdx]
	itemID := op.Primary.Grant(chosen.TemplateID, chosen.Quantity, nil)
	return []domain.LootEntry{lootEntry(chosen.TemplateID, itemID, chosen.Quantity)}, nil
}
