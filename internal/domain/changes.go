package domain

import "time"

// Change type discriminators used on the wire.
const (
	ChangeItemAdded           = "itemAdded"
	ChangeItemRemoved         = "itemRemoved"
	ChangeItemQuantityChanged = "itemQuantityChanged"
	ChangeItemAttrChanged     = "itemAttrChanged"
	ChangeStatModified        = "statModified"
	ChangeFullProfileUpdate   = "fullProfileUpdate"
)

// ProfileChange is one discrete change record. The client applies the
// ordered sequence to its local cache to stay in sync without re-fetching
// the whole profile. Exactly the fields for the given ChangeType are set.
type ProfileChange struct {
	ChangeType     string   `json:"changeType"`
	ItemID         string   `json:"itemId,omitempty"`
	Item           *Item    `json:"item,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
	AttributeName  string   `json:"attributeName,omitempty"`
	AttributeValue any      `json:"attributeValue,omitempty"`
	Name           string   `json:"name,omitempty"`
	Value          any      `json:"value,omitempty"`
	Profile        *Profile `json:"profile,omitempty"`
}

// LootEntry is one granted item inside a loot notification.
type LootEntry struct {
	ItemType string `json:"itemType"`
	ItemGUID string `json:"itemGuid"`
	Quantity int    `json:"quantity"`
}

// Notification is a handler-specific, user-facing event payload that
// accompanies a ChangeSet but is not itself a state change.
type Notification struct {
	Type    string      `json:"type"`
	Primary bool        `json:"primary"`
	Success *bool       `json:"success,omitempty"`
	Loot    []LootEntry `json:"lootGranted,omitempty"`
}

// MultiProfileUpdate carries a secondary profile's changes inside the
// response of an operation that touched more than one profile.
type MultiProfileUpdate struct {
	ProfileID                  string          `json:"profileId"`
	ProfileRevision            int64           `json:"profileRevision"`
	ProfileCommandRevision     int64           `json:"profileCommandRevision"`
	ProfileChangesBaseRevision int64           `json:"profileChangesBaseRevision"`
	ProfileChanges             []ProfileChange `json:"profileChanges"`
}

// OperationResponse is the wire envelope every operation returns.
type OperationResponse struct {
	ProfileRevision            int64                `json:"profileRevision"`
	ProfileID                  string               `json:"profileId"`
	ProfileChangesBaseRevision int64                `json:"profileChangesBaseRevision"`
	ProfileChanges             []ProfileChange      `json:"profileChanges"`
	Notifications              []Notification       `json:"notifications,omitempty"`
	MultiUpdate                []MultiProfileUpdate `json:"multiUpdate,omitempty"`
	ProfileCommandRevision     int64                `json:"profileCommandRevision"`
	ServerTime                 time.Time            `json:"serverTime"`
	ResponseVersion            int                  `json:"responseVersion"`
}
