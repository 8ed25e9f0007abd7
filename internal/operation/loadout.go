package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

type assignHeroToLoadoutRequest struct {
	LoadoutID  string `json:"loadoutId" validate:"required"`
	SlotName   string `json:"slotName" validate:"required"`
	HeroItemID string `json:"heroItemId" validate:"required"`
}

// AssignHeroToLoadout puts a hero item into one slot of a named loadout.
// The loadout is created on first assignment.
func (h *handlers) AssignHeroToLoadout(ctx context.Context, op *mcp.Op) error {
	var req assignHeroToLoadoutRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	hero, err := op.Primary.Profile().Item(req.HeroItemID)
	if err != nil {
		return err
	}
	if domain.TemplateType(hero.TemplateID) != domain.TemplateTypeHero {
		return fmt.Errorf("%w: %s is not a hero", domain.ErrInvalidPayload, req.HeroItemID)
	}

	loadouts := op.Primary.Profile().StatMap(domain.StatHeroLoadouts)
	slots, _ := loadouts[req.LoadoutID].(map[string]any)
	if slots == nil {
		slots = make(map[string]any)
	}
	slots[req.SlotName] = req.HeroItemID
	loadouts[req.LoadoutID] = slots

	op.Primary.SetStat(domain.StatHeroLoadouts, loadouts)
	return nil
}

type clearHeroLoadoutRequest struct {
	LoadoutID string `json:"loadoutId" validate:"required"`
	// SlotName clears a single slot; empty clears the whole loadout.
	SlotName string `json:"slotName"`
}

// ClearHeroLoadout empties one slot of a loadout, or removes the loadout
// entirely when no slot is named.
func (h *handlers) ClearHeroLoadout(ctx context.Context, op *mcp.Op) error {
	var req clearHeroLoadoutRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	loadouts := op.Primary.Profile().StatMap(domain.StatHeroLoadouts)
	slots, ok := loadouts[req.LoadoutID].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrLoadoutNotFound, req.LoadoutID)
	}

	if req.SlotName == "" {
		delete(loadouts, req.LoadoutID)
	} else {
		delete(slots, req.SlotName)
		loadouts[req.LoadoutID] = slots
	}

	op.Primary.SetStat(domain.StatHeroLoadouts, loadouts)
	return nil
}

type setActiveHeroLoadoutRequest struct {
	LoadoutID string `json:"loadoutId" validate:"required"`
}

// SetActiveHeroLoadout points the active-loadout stat at an existing
// loadout.
func (h *handlers) SetActiveHeroLoadout(ctx context.Context, op *mcp.Op) error {
	var req setActiveHeroLoadoutRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	loadouts := op.Primary.Profile().StatMap(domain.StatHeroLoadouts)
	if _, ok := loadouts[req.LoadoutID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrLoadoutNotFound, req.LoadoutID)
	}

	op.Primary.SetStat(domain.StatActiveLoadout, req.LoadoutID)
	return nil
}
