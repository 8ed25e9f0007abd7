package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/expedition"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type startExpeditionRequest struct {
	ExpeditionID string   `json:"expeditionId" validate:"required"`
	SquadID      string   `json:"squadId" validate:"required"`
	HeroItemIDs  []string `json:"heroItemIds" validate:"required,min=1,dive,required"`
}

// StartExpedition assigns a hero squad to an available expedition and
// computes its success chance from the squad's boosted power. The
// expedition moves to Running with start and end timestamps stamped from
// its definition's duration.
func (h *handlers) StartExpedition(ctx context.Context, op *mcp.Op) error {
	var req startExpeditionRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	item, err := h.expeditionItem(op, req.ExpeditionID)
	if err != nil {
		return err
	}
	if item.StringAttr(expedition.AttrSquadID) != "" {
		return fmt.Errorf("%w: %s", domain.ErrExpeditionAlreadyStarted, req.ExpeditionID)
	}

	def, err := h.expeditions.Definition(item.TemplateID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExpeditionNotFound, err)
	}

	heroes := make([]expedition.Hero, 0, len(req.HeroItemIDs))
	squad := make(map[string]bool, len(req.HeroItemIDs))
	for _, heroID := range req.HeroItemIDs {
		if squad[heroID] {
			return fmt.Errorf("%w: hero %s listed twice", domain.ErrInvalidPayload, heroID)
		}
		squad[heroID] = true
		hero, err := op.Primary.Profile().Item(heroID)
		if err != nil {
			return err
		}
		if domain.TemplateType(hero.TemplateID) != domain.TemplateTypeHero {
			return fmt.Errorf("%w: %s is not a hero", domain.ErrInvalidPayload, heroID)
		}
		if hero.StringAttr(expedition.AttrHeroSquadID) != "" {
			return fmt.Errorf("%w: hero %s is already on a squad", domain.ErrInvalidPayload, heroID)
		}
		heroes = append(heroes, expedition.Hero{
			Class:  hero.StringAttr(expedition.AttrHeroClass),
			Rarity: hero.StringAttr(expedition.AttrHeroRarity),
			Power:  hero.FloatAttr(expedition.AttrHeroPower),
		})
	}

	criteria := stringSliceAttr(item, expedition.AttrCriteria)
	chance := h.expeditions.SuccessChance(heroes, criteria, def.MaxTargetPower)

	for _, heroID := range req.HeroItemIDs {
		op.Primary.SetItemAttribute(heroID, expedition.AttrHeroSquadID, req.SquadID)
	}

	end := op.Now.Add(time.Duration(def.DurationMinutes) * time.Minute)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrSquadID, req.SquadID)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrSuccessChance, chance)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrStartTime, op.Now.Format(time.RFC3339))
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrEndTime, end.Format(time.RFC3339))
	return nil
}

type abandonExpeditionRequest struct {
	ExpeditionID string `json:"expeditionId" validate:"required"`
}

// AbandonExpedition frees the assigned squad. A still-valid expedition
// reverts to Available with its run attributes cleared; an expired one is
// deleted and a fresh expedition is rolled into the same slot.
func (h *handlers) AbandonExpedition(ctx context.Context, op *mcp.Op) error {
	var req abandonExpeditionRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	item, err := h.expeditionItem(op, req.ExpeditionID)
	if err != nil {
		return err
	}
	squadID := item.StringAttr(expedition.AttrSquadID)
	if squadID == "" {
		return fmt.Errorf("%w: %s", domain.ErrExpeditionNotStarted, req.ExpeditionID)
	}

	h.freeSquad(op, squadID)

	expiration := timeAttr(item, expedition.AttrExpiration)
	if !expiration.IsZero() && op.Now.After(expiration) {
		return h.replaceExpedition(op, req.ExpeditionID, item, false)
	}

	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrSquadID, nil)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrSuccessChance, nil)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrStartTime, nil)
	op.Primary.SetItemAttribute(req.ExpeditionID, expedition.AttrEndTime, nil)
	return nil
}

type collectExpeditionRequest struct {
	ExpeditionID string `json:"expeditionId" validate:"required"`
}

// CollectExpedition resolves a finished expedition: rolls success against
// the stored chance, frees the squad, grants one reward per category on
// success, and always replaces the expedition item with a fresh roll. The
// rare slot pool is eligible for the replacement.
func (h *handlers) CollectExpedition(ctx context.Context, op *mcp.Op) error {
	var req collectExpeditionRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	item, err := h.expeditionItem(op, req.ExpeditionID)
	if err != nil {
		return err
	}
	squadID := item.StringAttr(expedition.AttrSquadID)
	if squadID == "" {
		return fmt.Errorf("%w: %s", domain.ErrExpeditionNotStarted, req.ExpeditionID)
	}

	end := timeAttr(item, expedition.AttrEndTime)
	if end.IsZero() || op.Now.Before(end) {
		return fmt.Errorf("%w: %s ends at %s", domain.ErrExpeditionStillRunning, req.ExpeditionID, end.Format(time.RFC3339))
	}

	success := h.rnd() < item.FloatAttr(expedition.AttrSuccessChance)

	var loot []domain.LootEntry
	if success {
		rewards, err := h.expeditions.RollRewards(item.TemplateID)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrExpeditionNotFound, err)
		}
		for _, reward := range rewards {
			target, err := h.grantTarget(ctx, op, reward.ProfileID)
			if err != nil {
				return err
			}
			itemID := target.Grant(reward.TemplateID, reward.Quantity, nil)
			loot = append(loot, lootEntry(reward.TemplateID, itemID, reward.Quantity))
		}
	}

	h.freeSquad(op, squadID)
	if err := h.replaceExpedition(op, req.ExpeditionID, item, true); err != nil {
		return err
	}

	op.Notify(domain.Notification{
		Type:    "expeditionResult",
		Primary: true,
		Success: &success,
		Loot:    loot,
	})
	return nil
}

// expeditionItem resolves an expedition item id on the primary profile.
func (h *handlers) expeditionItem(op *mcp.Op, itemID string) (*domain.Item, error) {
	item, ok := op.Primary.Profile().Items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrExpeditionNotFound, itemID)
	}
	if domain.TemplateType(item.TemplateID) != domain.TemplateTypeExpedition {
		return nil, fmt.Errorf("%w: %s is not an expedition", domain.ErrExpeditionNotFound, itemID)
	}
	return item, nil
}

// freeSquad clears the squad assignment on every hero in the squad.
func (h *handlers) freeSquad(op *mcp.Op, squadID string) {
	profile := op.Primary.Profile()
	for itemID, item := range profile.Items {
		if domain.TemplateType(item.TemplateID) != domain.TemplateTypeHero {
			continue
		}
		if item.StringAttr(expedition.AttrHeroSquadID) == squadID {
			op.Primary.SetItemAttribute(itemID, expedition.AttrHeroSquadID, nil)
		}
	}
}

// replaceExpedition deletes the old expedition item and mints a freshly
// rolled one into the same slot. Expedition slots are a revolving queue;
// an empty slot is never left behind.
func (h *handlers) replaceExpedition(op *mcp.Op, itemID string, old *domain.Item, allowRare bool) error {
	slotID := old.StringAttr(expedition.AttrSlotID)
	rolled, err := h.expeditions.Roll(slotID, allowRare)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExpeditionNotFound, err)
	}

	def, err := h.expeditions.Definition(rolled.TemplateID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExpeditionNotFound, err)
	}

	op.Primary.RemoveItem(itemID)

	attrs := map[string]any{
		expedition.AttrSlotID:     slotID,
		expedition.AttrExpiration: op.Now.Add(time.Duration(def.ExpirationMinutes) * time.Minute).Format(time.RFC3339),
	}
	if len(rolled.Criteria) > 0 {
		attrs[expedition.AttrCriteria] = rolled.Criteria
	}
	op.Primary.Grant(rolled.TemplateID, 1, attrs)
	return nil
}
