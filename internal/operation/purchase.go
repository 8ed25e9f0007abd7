package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type purchaseCatalogEntryRequest struct {
	OfferID            string `json:"offerId" validate:"required"`
	PurchaseQuantity   int    `json:"purchaseQuantity" validate:"omitempty,min=1"`
	ExpectedTotalPrice int    `json:"expectedTotalPrice" validate:"min=0"`
}

// PurchaseCatalogEntry buys one catalog offer. The client-claimed price
// must match the offer's advertised price exactly; a mismatch is treated
// as tampering, not as a stale-catalog nicety. Ownership-gated offers are
// rejected when the account already holds any granted template. The debit
// and every grant are validated before the first mutation.
func (h *handlers) PurchaseCatalogEntry(ctx context.Context, op *mcp.Op) error {
	var req purchaseCatalogEntryRequest
	if err := op.Decode(&req); err != nil {
		return err
	}
	quantity := req.PurchaseQuantity
	if quantity == 0 {
		quantity = 1
	}

	offer, err := h.catalog.GetOffer(ctx, req.OfferID)
	if err != nil {
		return err
	}

	totalPrice := offer.Price.FinalPrice * quantity
	if req.ExpectedTotalPrice != totalPrice {
		return fmt.Errorf("%w: offer %s costs %d, client claimed %d",
			domain.ErrPriceMismatch, offer.OfferID, totalPrice, req.ExpectedTotalPrice)
	}

	if offer.DenyOnOwnership {
		for _, grant := range offer.Grants {
			target, err := h.grantTarget(ctx, op, grant.ProfileID)
			if err != nil {
				return err
			}
			if target.Profile().FindByTemplate(grant.TemplateID) != "" {
				return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, grant.TemplateID)
			}
		}
	}

	wallet, currencyItemID, err := h.findCurrency(ctx, op, offer.Price.CurrencyTemplate)
	if err != nil {
		return err
	}
	balance := wallet.Profile().Items[currencyItemID].Quantity
	if balance < totalPrice {
		return fmt.Errorf("%w: need %d %s, have %d",
			domain.ErrInsufficientFunds, totalPrice, offer.Price.CurrencyTemplate, balance)
	}

	if err := wallet.Consume(currencyItemID, totalPrice); err != nil {
		return err
	}

	var loot []domain.LootEntry
	for _, grant := range offer.Grants {
		target, err := h.grantTarget(ctx, op, grant.ProfileID)
		if err != nil {
			return err
		}
		granted := grant.Quantity * quantity
		itemID := target.Grant(grant.TemplateID, granted, nil)
		loot = append(loot, lootEntry(grant.TemplateID, itemID, granted))
	}

	op.Notify(domain.Notification{
		Type:    "catalogPurchase",
		Primary: true,
		Loot:    loot,
	})
	return nil
}

// grantTarget resolves a grant's destination mutator. Empty means the
// operation's primary profile.
func (h *handlers) grantTarget(ctx context.Context, op *mcp.Op, profileID string) (*mcp.Mutator, error) {
	if profileID == "" {
		return op.Primary, nil
	}
	return op.Secondary(ctx, profileID)
}

// findCurrency locates the account's wallet item for a currency template,
// checking the primary profile first and falling back to common_core,
// where shared currencies live.
func (h *handlers) findCurrency(ctx context.Context, op *mcp.Op, currencyTemplate string) (*mcp.Mutator, string, error) {
	if id := op.Primary.Profile().FindByTemplate(currencyTemplate); id != "" {
		return op.Primary, id, nil
	}

	if op.ProfileID != domain.ProfileCommonCore {
		core, err := op.Secondary(ctx, domain.ProfileCommonCore)
		if err != nil {
			return nil, "", err
		}
		if id := core.Profile().FindByTemplate(currencyTemplate); id != "" {
			return core, id, nil
		}
	}

	return nil, "", fmt.Errorf("%w: no %s balance", domain.ErrInsufficientFunds, currencyTemplate)
}
