package mcp

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// Mutator is the only write path handlers get to a profile. Every mutation
// goes through it so the recorded ChangeSet always matches the actual
// difference between the profile's pre- and post-image.
type Mutator struct {
	profile *domain.Profile
	changes []domain.ProfileChange
	full    bool
}

// NewMutator wraps a loaded profile.
func NewMutator(p *domain.Profile) *Mutator {
	return &Mutator{profile: p}
}

// Profile exposes the wrapped profile for reads. Callers must not mutate
// it directly.
func (m *Mutator) Profile() *domain.Profile {
	return m.profile
}

// AddItem inserts a new item and records an itemAdded change.
func (m *Mutator) AddItem(itemID string, item *domain.Item) {
	if m.profile.Items == nil {
		m.profile.Items = make(map[string]*domain.Item)
	}
	m.profile.Items[itemID] = item
	m.changes = append(m.changes, domain.ProfileChange{
		ChangeType: domain.ChangeItemAdded,
		ItemID:     itemID,
		Item:       item,
	})
}

// RemoveItem deletes an item and records an itemRemoved change.
func (m *Mutator) RemoveItem(itemID string) {
	delete(m.profile.Items, itemID)
	m.changes = append(m.changes, domain.ProfileChange{
		ChangeType: domain.ChangeItemRemoved,
		ItemID:     itemID,
	})
}

// SetQuantity updates an item's quantity and records the change.
func (m *Mutator) SetQuantity(itemID string, quantity int) {
	item, ok := m.profile.Items[itemID]
	if !ok {
		return
	}
	item.Quantity = quantity
	q := quantity
	m.changes = append(m.changes, domain.ProfileChange{
		ChangeType: domain.ChangeItemQuantityChanged,
		ItemID:     itemID,
		Quantity:   &q,
	})
}

// SetItemAttribute updates one item attribute and records the change.
func (m *Mutator) SetItemAttribute(itemID, name string, value any) {
	item, ok := m.profile.Items[itemID]
	if !ok {
		return
	}
	if item.Attributes == nil {
		item.Attributes = make(map[string]any)
	}
	if value == nil {
		delete(item.Attributes, name)
	} else {
		item.Attributes[name] = value
	}
	m.changes = append(m.changes, domain.ProfileChange{
		ChangeType:     domain.ChangeItemAttrChanged,
		ItemID:         itemID,
		AttributeName:  name,
		AttributeValue: value,
	})
}

// SetStat updates a stat attribute and records the change.
func (m *Mutator) SetStat(name string, value any) {
	if m.profile.Stats.Attributes == nil {
		m.profile.Stats.Attributes = make(map[string]any)
	}
	m.profile.Stats.Attributes[name] = value
	m.changes = append(m.changes, domain.ProfileChange{
		ChangeType: domain.ChangeStatModified,
		Name:       name,
		Value:      value,
	})
}

// Grant credits quantity of a template. Stackable templates merge into an
// existing stack; everything else mints a fresh item id.
func (m *Mutator) Grant(templateID string, quantity int, attributes map[string]any) (itemID string) {
	if domain.IsStackable(templateID) {
		if existing := m.profile.FindByTemplate(templateID); existing != "" {
			m.SetQuantity(existing, m.profile.Items[existing].Quantity+quantity)
			return existing
		}
	}
	itemID = uuid.NewString()
	m.AddItem(itemID, &domain.Item{TemplateID: templateID, Attributes: attributes, Quantity: quantity})
	return itemID
}

// Consume debits quantity from an item, deleting it when the stack empties.
func (m *Mutator) Consume(itemID string, quantity int) error {
	item, ok := m.profile.Items[itemID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if item.Quantity < quantity {
		return fmt.Errorf("%w: item %s has %d, need %d", domain.ErrInsufficientQuantity, itemID, item.Quantity, quantity)
	}
	if item.Quantity == quantity {
		m.RemoveItem(itemID)
		return nil
	}
	m.SetQuantity(itemID, item.Quantity-quantity)
	return nil
}

// MarkFullUpdate replaces the recorded changes with a single
// fullProfileUpdate record.
func (m *Mutator) MarkFullUpdate() {
	m.full = true
}

// Dirty reports whether any change was recorded.
func (m *Mutator) Dirty() bool {
	return m.full || len(m.changes) > 0
}

// Changes returns the ordered change records for the response.
func (m *Mutator) Changes() []domain.ProfileChange {
	if m.full {
		return []domain.ProfileChange{{
			ChangeType: domain.ChangeFullProfileUpdate,
			Profile:    m.profile,
		}}
	}
	return m.changes
}
