package expedition

import (
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// Hero is the slice of a hero item the chance formula needs.
type Hero struct {
	Class  string
	Rarity string
	Power  float64
}

// RolledReward is one granted reward after a successful collect.
type RolledReward struct {
	TemplateID string
	Quantity   int
	ProfileID  string
}

// Rolled is a freshly rolled replacement expedition.
type Rolled struct {
	TemplateID string
	Criteria   []string
}

// Service answers expedition content questions and rolls replacements.
// All randomness flows through the injected sources.
type Service struct {
	cfg     *Config
	rnd     func() float64
	randInt func(min, max int) int
}

// NewService creates an expedition service over the given content tables.
func NewService(cfg *Config) *Service {
	return &Service{
		cfg:     cfg,
		rnd:     utils.RandomFloat,
		randInt: utils.RandomInt,
	}
}

// WithRand overrides the random sources. Test hook.
func (s *Service) WithRand(rnd func() float64, randInt func(min, max int) int) *Service {
	s.rnd = rnd
	s.randInt = randInt
	return s
}

// Definition returns the static definition for an expedition template.
func (s *Service) Definition(templateID string) (*Definition, error) {
	def, ok := s.cfg.Expeditions[templateID]
	if !ok {
		return nil, fmt.Errorf("no definition for expedition %s", templateID)
	}
	return &def, nil
}

// SuccessChance computes min(sum of boosted hero power / maxTargetPower, 1).
// A hero matching a criterion (class, plus rarity when the criterion names
// one) has its power multiplied; only the first matching criterion applies
// and each hero is boosted at most once.
func (s *Service) SuccessChance(heroes []Hero, criteriaNames []string, maxTargetPower float64) float64 {
	total := 0.0
	for _, h := range heroes {
		power := h.Power
		for _, name := range criteriaNames {
			c, ok := s.cfg.Criteria[name]
			if !ok {
				continue
			}
			if c.HeroClass != h.Class {
				continue
			}
			if c.Rarity != "" && c.Rarity != h.Rarity {
				continue
			}
			mult := c.Multiplier
			if mult == 0 {
				mult = DefaultMultiplier
			}
			power *= mult
			break
		}
		total += power
	}

	if maxTargetPower <= 0 {
		return 1
	}
	chance := total / maxTargetPower
	if chance > 1 {
		return 1
	}
	if chance < 0 {
		return 0
	}
	return chance
}

// Roll mints a replacement expedition for a slot. With allowRare, the
// slot's rare pool is used with RarePoolChance when it is non-empty.
// Up to MaxBonusCriteria bonus criteria attach, each with
// BonusCriterionChance.
func (s *Service) Roll(slotID string, allowRare bool) (*Rolled, error) {
	pools, ok := s.cfg.Slots[slotID]
	if !ok || len(pools.Normal) == 0 {
		return nil, fmt.Errorf("no expedition pool for slot %s", slotID)
	}

	pool := pools.Normal
	if allowRare && len(pools.Rare) > 0 && s.rnd() < RarePoolChance {
		pool = pools.Rare
	}
	templateID := pool[s.randInt(0, len(pool)-1)]

	names := s.cfg.criterionNames()
	var criteria []string
	if len(names) > 0 {
		for i := 0; i < MaxBonusCriteria; i++ {
			if s.rnd() < BonusCriterionChance {
				criteria = append(criteria, names[s.randInt(0, len(names)-1)])
			}
		}
	}

	return &Rolled{TemplateID: templateID, Criteria: criteria}, nil
}

// RollRewards grants one random reward per category, with quantity sampled
// uniformly between the reward's min and max.
func (s *Service) RollRewards(templateID string) ([]RolledReward, error) {
	def, err := s.Definition(templateID)
	if err != nil {
		return nil, err
	}

	var out []RolledReward
	for _, category := range def.RewardCategories {
		if len(category) == 0 {
			continue
		}
		r := category[s.randInt(0, len(category)-1)]
		qty := r.MinQuantity
		if r.MaxQuantity > r.MinQuantity {
			qty = s.randInt(r.MinQuantity, r.MaxQuantity)
		}
		if qty < 1 {
			qty = 1
		}
		out = append(out, RolledReward{TemplateID: r.TemplateID, Quantity: qty, ProfileID: r.ProfileID})
	}
	return out, nil
}
