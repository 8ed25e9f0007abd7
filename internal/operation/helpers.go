package operation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
)

// timeAttr parses an RFC3339 item attribute. The zero time means the
// attribute is unset or malformed.
func timeAttr(item *domain.Item, name string) time.Time {
	s := item.StringAttr(name)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// stringSliceAttr reads a string-array item attribute. JSON-decoded
// profiles surface arrays as []any.
func stringSliceAttr(item *domain.Item, name string) []string {
	switch v := item.Attr(name).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// attrAs round-trips an attribute value through JSON into a typed struct.
// Attribute values set in-process and values reloaded from storage then
// decode identically.
func attrAs(value any, out any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

// lootEntry builds the notification row for one granted item.
func lootEntry(templateID, itemID string, quantity int) domain.LootEntry {
	return domain.LootEntry{ItemType: templateID, ItemGUID: itemID, Quantity: quantity}
}
