package domain

import "strings"

// Item is a quantity-bearing entry inside a profile. An item belongs to
// exactly one profile at a time; transfers are delete-from-A plus
// insert-into-B, never shared references.
type Item struct {
	TemplateID string         `json:"templateId"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Quantity   int            `json:"quantity"`
}

// Attr returns an item attribute, or nil if unset.
func (i *Item) Attr(name string) any {
	if i.Attributes == nil {
		return nil
	}
	return i.Attributes[name]
}

// StringAttr returns a string attribute, or "" if unset or not a string.
func (i *Item) StringAttr(name string) string {
	s, _ := i.Attr(name).(string)
	return s
}

// FloatAttr returns a numeric attribute. JSON numbers decode as float64.
func (i *Item) FloatAttr(name string) float64 {
	f, _ := i.Attr(name).(float64)
	return f
}

// TemplateType returns the prefix before the first colon, lowercased:
// "Worker:managerexplorer_sr_fire" -> "worker".
func TemplateType(templateID string) string {
	if idx := strings.IndexByte(templateID, ':'); idx >= 0 {
		return strings.ToLower(templateID[:idx])
	}
	return strings.ToLower(templateID)
}

// BaseTemplate strips the trailing rarity/tier suffix (the last 4
// characters by convention) so variants of one base template compare equal.
func BaseTemplate(templateID string) string {
	if len(templateID) <= 4 {
		return templateID
	}
	return templateID[:len(templateID)-4]
}

// IsSchematic reports whether the template is a schematic.
func IsSchematic(templateID string) bool {
	return TemplateType(templateID) == TemplateTypeSchematic
}

// IsWorker reports whether the template is a survivor/worker.
func IsWorker(templateID string) bool {
	return TemplateType(templateID) == TemplateTypeWorker
}

// IsStackable reports whether grants of this template merge into an
// existing stack instead of minting a new item.
func IsStackable(templateID string) bool {
	return TemplateType(templateID) == TemplateTypeCurrency
}
