package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

func TestAssignHeroToLoadout(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, map[string]*domain.Item{
		"hero": soldierHero(100),
	}, nil)

	e.mustDispatch(domain.ProfileCampaign, "AssignHeroToLoadout", map[string]any{
		"loadoutId":  "loadout-1",
		"slotName":   "commander",
		"heroItemId": "hero",
	})

	stored := e.stored(domain.ProfileCampaign)
	loadouts, ok := stored.Stats.Attributes[domain.StatHeroLoadouts].(map[string]any)
	require.True(t, ok)
	slots, ok := loadouts["loadout-1"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hero", slots["commander"])
}

func TestAssignNonHeroRejected(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, map[string]*domain.Item{
		"sword": {TemplateID: "schematic:sword_r_t1", Quantity: 1},
	}, nil)

	_, err := e.dispatch(domain.ProfileCampaign, "AssignHeroToLoadout", map[string]any{
		"loadoutId":  "loadout-1",
		"slotName":   "commander",
		"heroItemId": "sword",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestClearHeroLoadout(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, map[string]*domain.Item{"hero": soldierHero(100)}, map[string]any{
		domain.StatHeroLoadouts: map[string]any{
			"loadout-1": map[string]any{"commander": "hero", "support": "hero"},
		},
	})

	// Clearing one slot keeps the rest of the loadout.
	e.mustDispatch(domain.ProfileCampaign, "ClearHeroLoadout", map[string]any{
		"loadoutId": "loadout-1",
		"slotName":  "support",
	})
	loadouts := e.stored(domain.ProfileCampaign).Stats.Attributes[domain.StatHeroLoadouts].(map[string]any)
	slots := loadouts["loadout-1"].(map[string]any)
	assert.Equal(t, "hero", slots["commander"])
	assert.NotContains(t, slots, "support")

	// No slot name removes the whole loadout.
	e.mustDispatch(domain.ProfileCampaign, "ClearHeroLoadout", map[string]any{
		"loadoutId": "loadout-1",
	})
	loadouts = e.stored(domain.ProfileCampaign).Stats.Attributes[domain.StatHeroLoadouts].(map[string]any)
	assert.NotContains(t, loadouts, "loadout-1")

	_, err := e.dispatch(domain.ProfileCampaign, "ClearHeroLoadout", map[string]any{
		"loadoutId": "loadout-1",
	})
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
}

func TestSetActiveHeroLoadout(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, nil, map[string]any{
		domain.StatHeroLoadouts: map[string]any{
			"loadout-1": map[string]any{},
		},
	})

	e.mustDispatch(domain.ProfileCampaign, "SetActiveHeroLoadout", map[string]any{
		"loadoutId": "loadout-1",
	})
	assert.Equal(t, "loadout-1", e.stored(domain.ProfileCampaign).Stats.Attributes[domain.StatActiveLoadout])

	_, err := e.dispatch(domain.ProfileCampaign, "SetActiveHeroLoadout", map[string]any{
		"loadoutId": "loadout-9",
	})
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
}
