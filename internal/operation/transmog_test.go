package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

func TestTransmogItem(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, map[string]*domain.Item{
		"sword": {
			TemplateID: "schematic:sword_r_t1",
			Quantity:   1,
			Attributes: map[string]any{
				AttrTransformOptions: []string{"schematic:axe_r_t1", "schematic:bow_r_t1"},
			},
		},
	}, nil)

	// constRand(0.5) over two options lands on the second.
	resp := e.mustDispatch(domain.ProfileCampaign, "TransmogItem", map[string]any{
		"targetItemId": "sword",
	})

	stored := e.stored(domain.ProfileCampaign)
	assert.NotContains(t, stored.Items, "sword")
	resultID := stored.FindByTemplate("schematic:bow_r_t1")
	require.NotEmpty(t, resultID)
	assert.Equal(t, 1, stored.Items[resultID].Quantity)

	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "transmogResult", resp.Notifications[0].Type)
	require.Len(t, resp.Notifications[0].Loot, 1)
	assert.Equal(t, "schematic:bow_r_t1", resp.Notifications[0].Loot[0].ItemType)
}

func TestTransmogItemWithoutOptions(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, map[string]*domain.Item{
		"plain": {TemplateID: "schematic:sword_r_t1", Quantity: 1},
	}, nil)

	_, err := e.dispatch(domain.ProfileCampaign, "TransmogItem", map[string]any{
		"targetItemId": "plain",
	})
	assert.ErrorIs(t, err, domain.ErrNoTransformOptions)

	assert.Contains(t, e.stored(domain.ProfileCampaign).Items, "plain")
}

func TestTransmogUnknownItem(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, nil, nil)

	_, err := e.dispatch(domain.ProfileCampaign, "TransmogItem", map[string]any{
		"targetItemId": "ghost",
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUnlockRewardNode(t *testing.T) {
	e := newEnv(t)
	e.seed(domain.ProfileCampaign, nil, nil)

	e.mustDispatch(domain.ProfileCampaign, "UnlockRewardNode", map[string]any{
		"nodeId": "homebase-storage-1",
	})

	nodes := e.stored(domain.ProfileCampaign).StatMap(domain.StatUnlockedNodes)
	assert.Equal(t, true, nodes["homebase-storage-1"])

	// A second unlock of the same node is rejected.
	_, err := e.dispatch(domain.ProfileCampaign, "UnlockRewardNode", map[string]any{
		"nodeId": "homebase-storage-1",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyUnlocked)
}
