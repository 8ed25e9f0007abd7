package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

func newTestMutator() *Mutator {
	return NewMutator(&domain.Profile{
		ProfileID: domain.ProfileCampaign,
		Items: map[string]*domain.Item{
			"gold": {TemplateID: domain.TemplateGold, Quantity: 100},
			"axe":  {TemplateID: "schematic:axe_r_t1", Quantity: 1},
		},
		Stats: domain.ProfileStats{Attributes: map[string]any{}},
	})
}

func TestMutatorRecordsEveryChange(t *testing.T) {
	m := newTestMutator()

	m.AddItem("new", &domain.Item{TemplateID: "hero:ninja_r_t2", Quantity: 1})
	m.SetQuantity("gold", 40)
	m.SetItemAttribute("axe", "level", 3)
	m.SetStat("homebase_name", "Fort Sample")
	m.RemoveItem("axe")

	changes := m.Changes()
	require.Len(t, changes, 5)
	assert.Equal(t, domain.ChangeItemAdded, changes[0].ChangeType)
	assert.Equal(t, domain.ChangeItemQuantityChanged, changes[1].ChangeType)
	assert.Equal(t, 40, *changes[1].Quantity)
	assert.Equal(t, domain.ChangeItemAttrChanged, changes[2].ChangeType)
	assert.Equal(t, domain.ChangeStatModified, changes[3].ChangeType)
	assert.Equal(t, domain.ChangeItemRemoved, changes[4].ChangeType)

	// The profile post-image matches what the changes describe.
	p := m.Profile()
	assert.Contains(t, p.Items, "new")
	assert.NotContains(t, p.Items, "axe")
	assert.Equal(t, 40, p.Items["gold"].Quantity)
	assert.Equal(t, "Fort Sample", p.Stats.Attributes["homebase_name"])
}

func TestMutatorGrantMergesCurrency(t *testing.T) {
	m := newTestMutator()

	id := m.Grant(domain.TemplateGold, 50, nil)
	assert.Equal(t, "gold", id, "currency grants merge into the existing stack")
	assert.Equal(t, 150, m.Profile().Items["gold"].Quantity)

	heroID := m.Grant("hero:ninja_r_t2", 1, nil)
	assert.NotEmpty(t, heroID)
	assert.NotEqual(t, "gold", heroID)
}

func TestMutatorConsume(t *testing.T) {
	m := newTestMutator()

	require.NoError(t, m.Consume("gold", 30))
	assert.Equal(t, 70, m.Profile().Items["gold"].Quantity)

	// Consuming the whole stack removes the item.
	require.NoError(t, m.Consume("gold", 70))
	assert.NotContains(t, m.Profile().Items, "gold")

	err := m.Consume("axe", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	err = m.Consume("ghost", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestMutatorFullUpdate(t *testing.T) {
	m := newTestMutator()
	m.MarkFullUpdate()

	changes := m.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeFullProfileUpdate, changes[0].ChangeType)
	assert.NotNil(t, changes[0].Profile)
	assert.True(t, m.Dirty())
}

func TestMutatorCleanByDefault(t *testing.T) {
	m := newTestMutator()
	assert.False(t, m.Dirty())
	assert.Empty(t, m.Changes())
}
