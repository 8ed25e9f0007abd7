package lootbox

import (
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// StandardPackRolls is how many items a standard pack mints when opened.
const StandardPackRolls = 10

// ChoicePackChance is the per-roll probability that a drop becomes a choice
// container instead of a direct grant.
const ChoicePackChance = 0.10

// ChoiceOptionCount is how many pre-rolled options a choice container holds.
const ChoiceOptionCount = 2

// ChoicePackTemplate is the template id minted for choice containers.
const ChoicePackTemplate = "cardpack:choice"

// DropEntry defines one possible drop in a pack's pool
type DropEntry struct {
	TemplateID  string `json:"templateId"`
	Weight      int    `json:"weight"`
	MinQuantity int    `json:"minQuantity"`
	MaxQuantity int    `json:"maxQuantity"`
}

// DropPool is the weighted pool a pack template rolls from
type DropPool struct {
	Drops []DropEntry `json:"drops"`
}

// Tables maps pack template ids to their drop pools
type Tables map[string]DropPool

// Option is one pre-rolled, player-selectable choice inside a container.
type Option struct {
	TemplateID string `json:"templateId"`
	Quantity   int    `json:"quantity"`
}

// Drop is one rolled result. When Options is non-empty the drop is a choice
// container rather than a direct grant.
type Drop struct {
	TemplateID string
	Quantity   int
	Options    []Option
}

// Service rolls loot pack contents
type Service struct {
	tables  Tables
	rnd     func() float64
	randInt func(min, max int) int
}

// NewService creates a lootbox service over in-memory tables
func NewService(tables Tables) *Service {
	return &Service{
		tables:  tables,
		rnd:     utils.RandomFloat,
		randInt: utils.RandomInt,
	}
}

// NewServiceFromFile loads drop tables from a JSON file
func NewServiceFromFile(path string) (*Service, error) {
	var tables Tables
	if err := utils.LoadJSON(path, &tables); err != nil {
		return nil, fmt.Errorf("failed to load drop tables: %w", err)
	}
	return NewService(tables), nil
}

// WithRand overrides the random sources. Test hook.
func (s *Service) WithRand(rnd func() float64, randInt func(min, max int) int) *Service {
	s.rnd = rnd
	s.randInt = randInt
	return s
}

// RollPack mints the contents of one standard pack: StandardPackRolls drops
// from the pack's pool, each with a small chance of being a choice container
// holding ChoiceOptionCount pre-rolled options.
func (s *Service) RollPack(packTemplateID string) ([]Drop, error) {
	pool, ok := s.tables[packTemplateID]
	if !ok || len(pool.Drops) == 0 {
		return nil, fmt.Errorf("no drop pool for pack %s", packTemplateID)
	}

	drops := make([]Drop, 0, StandardPackRolls)
	for i := 0; i < StandardPackRolls; i++ {
		if s.rnd() < ChoicePackChance {
			options := make([]Option, 0, ChoiceOptionCount)
			for j := 0; j < ChoiceOptionCount; j++ {
				entry := s.pick(pool)
				options = append(options, Option{
					TemplateID: entry.TemplateID,
					Quantity:   s.quantity(entry),
				})
			}
			drops = append(drops, Drop{TemplateID: ChoicePackTemplate, Quantity: 1, Options: options})
			continue
		}

		entry := s.pick(pool)
		drops = append(drops, Drop{TemplateID: entry.TemplateID, Quantity: s.quantity(entry)})
	}
	return drops, nil
}

// pick selects one entry by weight.
func (s *Service) pick(pool DropPool) DropEntry {
	total := 0
	for _, d := range pool.Drops {
		total += d.Weight
	}

	target := int(s.rnd() * float64(total))
	for _, d := range pool.Drops {
		target -= d.Weight
		if target < 0 {
			return d
		}
	}
	return pool.Drops[len(pool.Drops)-1]
}

func (s *Service) quantity(entry DropEntry) int {
	if entry.MaxQuantity <= entry.MinQuantity {
		if entry.MinQuantity < 1 {
			return 1
		}
		return entry.MinQuantity
	}
	return s.randInt(entry.MinQuantity, entry.MaxQuantity)
}
