package expedition

import (
	"fmt"
	"sort"

	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// Tuning defaults for expedition rolling.
const (
	// DefaultMultiplier boosts a hero's power when it matches a criterion.
	DefaultMultiplier = 1.5
	// BonusCriterionChance is the per-slot probability of attaching each
	// bonus criterion to a freshly rolled expedition.
	BonusCriterionChance = 0.20
	// MaxBonusCriteria caps criteria per rolled expedition.
	MaxBonusCriteria = 3
	// RarePoolChance selects the slot's rare pool, when present, for a
	// replacement expedition rolled after a collect.
	RarePoolChance = 0.05
)

// Item attribute keys used on expedition and hero items.
const (
	AttrSlotID        = "expedition_slot_id"
	AttrSquadID       = "expedition_squad_id"
	AttrSuccessChance = "expedition_success_chance"
	AttrStartTime     = "expedition_start_time"
	AttrEndTime       = "expedition_end_time"
	AttrExpiration    = "expedition_expiration_end_time"
	AttrCriteria      = "expedition_criteria"

	AttrHeroSquadID = "squad_id"
	AttrHeroClass   = "hero_class"
	AttrHeroRarity  = "rarity"
	AttrHeroPower   = "power_level"
)

// Criterion is a bonus condition: heroes of the class (and rarity, when
// set) count their power multiplied.
type Criterion struct {
	HeroClass  string  `json:"heroClass"`
	Rarity     string  `json:"rarity,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// Reward is one possible grant inside a reward category.
type Reward struct {
	TemplateID  string `json:"templateId"`
	MinQuantity int    `json:"minQuantity"`
	MaxQuantity int    `json:"maxQuantity"`
	// ProfileID routes the reward into a secondary profile; empty means
	// the operation's primary profile.
	ProfileID string `json:"profileId,omitempty"`
}

// Definition is the static description of one expedition template.
type Definition struct {
	MaxTargetPower    float64    `json:"maxTargetPower"`
	DurationMinutes   int        `json:"durationMinutes"`
	ExpirationMinutes int        `json:"expirationMinutes"`
	// RewardCategories each contribute exactly one rolled reward on success.
	RewardCategories [][]Reward `json:"rewardCategories"`
}

// SlotPools lists the expedition templates a slot can roll.
type SlotPools struct {
	Normal []string `json:"normal"`
	Rare   []string `json:"rare,omitempty"`
}

// Config is the full expedition content table.
type Config struct {
	Criteria    map[string]Criterion  `json:"criteria"`
	Expeditions map[string]Definition `json:"expeditions"`
	Slots       map[string]SlotPools  `json:"slots"`
}

// LoadConfig reads the expedition tables from a JSON file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := utils.LoadJSON(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load expedition config: %w", err)
	}
	return &cfg, nil
}

// criterionNames returns the config's criterion keys in stable order.
func (c *Config) criterionNames() []string {
	names := make([]string, 0, len(c.Criteria))
	for name := range c.Criteria {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
