package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Profile is a named per-account document holding items and stat attributes.
// Revision and CommandRevision are bumped together, exactly once per applied
// operation, by the profile store at persistence time. Handlers never touch
// them.
type Profile struct {
	ProfileID       string           `json:"profileId"`
	AccountID       string           `json:"accountId"`
	Created         time.Time        `json:"created"`
	Updated         time.Time        `json:"updated"`
	Revision        int64            `json:"rvn"`
	CommandRevision int64            `json:"commandRevision"`
	Items           map[string]*Item `json:"items"`
	Stats           ProfileStats     `json:"stats"`
	Version         string           `json:"version,omitempty"`
}

// ProfileStats is the open "everything else" bag: levels, XP, favorites,
// loadout pointers, research levels.
type ProfileStats struct {
	Attributes map[string]any `json:"attributes"`
}

// Item returns the item with the given id, or an ErrItemNotFound error.
func (p *Profile) Item(itemID string) (*Item, error) {
	it, ok := p.Items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return it, nil
}

// FindByTemplate returns the id of the first item whose template matches,
// or "" if the profile holds none.
func (p *Profile) FindByTemplate(templateID string) string {
	for id, it := range p.Items {
		if it.TemplateID == templateID {
			return id
		}
	}
	return ""
}

// StatMap returns the named stat attribute as an object, creating it when
// absent. JSON-decoded profiles surface nested objects as map[string]any.
func (p *Profile) StatMap(name string) map[string]any {
	if p.Stats.Attributes == nil {
		p.Stats.Attributes = make(map[string]any)
	}
	if m, ok := p.Stats.Attributes[name].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	p.Stats.Attributes[name] = m
	return m
}

// Clone deep-copies the profile through a JSON round trip. Used when stamping
// bootstrap templates so accounts never share mutable state.
func (p *Profile) Clone() (*Profile, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	var out Profile
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &out, nil
}
