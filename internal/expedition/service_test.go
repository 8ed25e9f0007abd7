package expedition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Criteria: map[string]Criterion{
			"fire_ninja":   {HeroClass: "ninja", Rarity: "r"},
			"any_soldier":  {HeroClass: "soldier"},
			"big_outlander": {HeroClass: "outlander", Multiplier: 2.0},
		},
		Expeditions: map[string]Definition{
			"expedition:scout_coast": {
				MaxTargetPower:    100,
				DurationMinutes:   30,
				ExpirationMinutes: 240,
				RewardCategories: [][]Reward{
					{{TemplateID: "currency:gold", MinQuantity: 10, MaxQuantity: 20}},
					{{TemplateID: "schematic:axe_r_t1", MinQuantity: 1, MaxQuantity: 1, ProfileID: "outpost0"}},
				},
			},
		},
		Slots: map[string]SlotPools{
			"slot_land": {
				Normal: []string{"expedition:scout_coast"},
				Rare:   []string{"expedition:treasure_hunt"},
			},
		},
	}
}

func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}

func TestSuccessChanceBounds(t *testing.T) {
	svc := NewService(testConfig())

	// One hero with power 150 against target 100 clamps to 1.
	chance := svc.SuccessChance([]Hero{{Class: "ninja", Power: 150}}, nil, 100)
	assert.Equal(t, 1.0, chance)

	chance = svc.SuccessChance([]Hero{{Class: "ninja", Power: 40}}, nil, 100)
	assert.InDelta(t, 0.4, chance, 1e-9)

	assert.Equal(t, 1.0, svc.SuccessChance(nil, nil, 0), "non-positive target clamps to 1")
}

func TestSuccessChanceCriterionBoost(t *testing.T) {
	svc := NewService(testConfig())

	hero := []Hero{{Class: "soldier", Power: 40}}

	// Matching criterion applies the default 1.5x multiplier.
	chance := svc.SuccessChance(hero, []string{"any_soldier"}, 100)
	assert.InDelta(t, 0.6, chance, 1e-9)

	// Rarity-gated criterion only matches the right rarity.
	chance = svc.SuccessChance([]Hero{{Class: "ninja", Rarity: "sr", Power: 40}}, []string{"fire_ninja"}, 100)
	assert.InDelta(t, 0.4, chance, 1e-9)
	chance = svc.SuccessChance([]Hero{{Class: "ninja", Rarity: "r", Power: 40}}, []string{"fire_ninja"}, 100)
	assert.InDelta(t, 0.6, chance, 1e-9)
}

func TestSuccessChanceBoostsHeroOnce(t *testing.T) {
	svc := NewService(testConfig())

	// Both criteria match; only the first applies, and the custom 2.0
	// multiplier is honored.
	hero := []Hero{{Class: "outlander", Power: 30}}
	chance := svc.SuccessChance(hero, []string{"big_outlander", "big_outlander"}, 100)
	assert.InDelta(t, 0.6, chance, 1e-9)
}

func TestSuccessChanceDeterministic(t *testing.T) {
	svc := NewService(testConfig())
	heroes := []Hero{
		{Class: "ninja", Rarity: "r", Power: 22},
		{Class: "soldier", Power: 31},
	}
	a := svc.SuccessChance(heroes, []string{"fire_ninja", "any_soldier"}, 200)
	b := svc.SuccessChance(heroes, []string{"fire_ninja", "any_soldier"}, 200)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.LessOrEqual(t, a, 1.0)
}

func TestRollUsesNormalPool(t *testing.T) {
	svc := NewService(testConfig()).WithRand(seq(0.9), func(min, max int) int { return min })

	rolled, err := svc.Roll("slot_land", true)
	require.NoError(t, err)
	assert.Equal(t, "expedition:scout_coast", rolled.TemplateID)
	assert.Empty(t, rolled.Criteria, "rnd 0.9 rolls no bonus criteria")
}

func TestRollRarePool(t *testing.T) {
	// First rnd selects the rare pool (0.01 < 0.05); the rest skip criteria.
	svc := NewService(testConfig()).WithRand(seq(0.01, 0.9), func(min, max int) int { return min })

	rolled, err := svc.Roll("slot_land", true)
	require.NoError(t, err)
	assert.Equal(t, "expedition:treasure_hunt", rolled.TemplateID)
}

func TestRollBonusCriteriaCapped(t *testing.T) {
	// Always below BonusCriterionChance: every criterion slot fills.
	svc := NewService(testConfig()).WithRand(seq(0.1), func(min, max int) int { return min })

	rolled, err := svc.Roll("slot_land", false)
	require.NoError(t, err)
	assert.Len(t, rolled.Criteria, MaxBonusCriteria)
}

func TestRollUnknownSlot(t *testing.T) {
	svc := NewService(testConfig())
	_, err := svc.Roll("slot_missing", false)
	assert.Error(t, err)
}

func TestRollRewardsOnePerCategory(t *testing.T) {
	svc := NewService(testConfig()).WithRand(seq(0.5), func(min, max int) int { return max })

	rewards, err := svc.RollRewards("expedition:scout_coast")
	require.NoError(t, err)
	require.Len(t, rewards, 2)

	assert.Equal(t, "currency:gold", rewards[0].TemplateID)
	assert.Equal(t, 20, rewards[0].Quantity)
	assert.Equal(t, "", rewards[0].ProfileID)

	assert.Equal(t, "schematic:axe_r_t1", rewards[1].TemplateID)
	assert.Equal(t, "outpost0", rewards[1].ProfileID)
}
