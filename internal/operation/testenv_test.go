package operation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aorux01/Neodyme-sub003/internal/catalog"
	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/expedition"
	"github.com/Aorux01/Neodyme-sub003/internal/lootbox"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
	"github.com/Aorux01/Neodyme-sub003/internal/profile"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
)

const testAccount = "acct-test"

// constRand returns a fixed sample. 0.5 sits above the choice-pack and
// bonus-criteria chances and below any success chance of 1, so the default
// env behaves deterministically.
func constRand(v float64) func() float64 {
	return func() float64 { return v }
}

func minRandInt(min, max int) int { return min }

type env struct {
	t          *testing.T
	repo       *repository.Memory
	store      *profile.Store
	dispatcher *mcp.Dispatcher
}

func newEnv(t *testing.T) *env {
	t.Helper()

	templates := make(profile.StaticTemplates)
	for _, id := range domain.ProfileIDs() {
		templates[id] = &domain.Profile{
			Items: map[string]*domain.Item{},
			Stats: domain.ProfileStats{Attributes: map[string]any{}},
		}
	}

	offers := catalog.Static{
		"offer-banner": {
			OfferID: "offer-banner",
			DevName: "Founders Banner",
			Price:   catalog.Price{CurrencyTemplate: domain.TemplateMtxCurrency, FinalPrice: 800},
			Grants:  []catalog.Grant{{TemplateID: "cosmetic:banner_founder", Quantity: 1}},
		},
		"offer-unique": {
			OfferID:         "offer-unique",
			DevName:         "Unique Hero",
			Price:           catalog.Price{CurrencyTemplate: domain.TemplateMtxCurrency, FinalPrice: 500},
			Grants:          []catalog.Grant{{TemplateID: "hero:ninja_sr_t4", Quantity: 1}},
			DenyOnOwnership: true,
		},
		"offer-routed": {
			OfferID: "offer-routed",
			DevName: "Outpost Supplies",
			Price:   catalog.Price{CurrencyTemplate: domain.TemplateGold, FinalPrice: 100},
			Grants: []catalog.Grant{
				{TemplateID: "worker:miner_c_t1", Quantity: 1, ProfileID: domain.ProfileOutpost},
			},
		},
	}

	packs := lootbox.NewService(lootbox.Tables{
		"cardpack:starter": {Drops: []lootbox.DropEntry{
			{TemplateID: "schematic:sword_r_t1", Weight: 1, MinQuantity: 1, MaxQuantity: 1},
		}},
	}).WithRand(constRand(0.5), minRandInt)

	expeditions := expedition.NewService(&expedition.Config{
		Criteria: map[string]expedition.Criterion{
			"soldier-boost": {HeroClass: "soldier"},
		},
		Expeditions: map[string]expedition.Definition{
			"expedition:low": {
				MaxTargetPower:    100,
				DurationMinutes:   60,
				ExpirationMinutes: 240,
				RewardCategories: [][]expedition.Reward{
					{{TemplateID: domain.TemplateGold, MinQuantity: 50, MaxQuantity: 50}},
					{{TemplateID: "worker:miner_c_t1", MinQuantity: 1, MaxQuantity: 1, ProfileID: domain.ProfileOutpost}},
				},
			},
		},
		Slots: map[string]expedition.SlotPools{
			"slot1": {Normal: []string{"expedition:low"}},
		},
	}).WithRand(constRand(0.5), minRandInt)

	repo := repository.NewMemory()
	store := profile.NewStore(repo, templates)
	registry := NewRegistry(Config{
		Catalog:     offers,
		Lootbox:     packs,
		Expeditions: expeditions,
		Rnd:         constRand(0.5),
	})

	return &env{
		t:          t,
		repo:       repo,
		store:      store,
		dispatcher: mcp.NewDispatcher(store, registry, repo),
	}
}

// seed writes a profile document directly into the backing store, outside
// the engine, so tests can start from arbitrary state.
func (e *env) seed(profileID string, items map[string]*domain.Item, stats map[string]any) {
	e.t.Helper()
	if items == nil {
		items = map[string]*domain.Item{}
	}
	if stats == nil {
		stats = map[string]any{}
	}
	p := &domain.Profile{
		ProfileID:       profileID,
		AccountID:       testAccount,
		Revision:        1,
		CommandRevision: 1,
		Items:           items,
		Stats:           domain.ProfileStats{Attributes: stats},
	}
	require.NoError(e.t, e.repo.SaveProfile(context.Background(), testAccount, profileID, p))
}

func (e *env) dispatch(profileID, opName string, payload any) (*domain.OperationResponse, error) {
	e.t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(e.t, err)
	return e.dispatcher.Dispatch(context.Background(), testAccount, profileID, opName, raw, -1)
}

func (e *env) mustDispatch(profileID, opName string, payload any) *domain.OperationResponse {
	e.t.Helper()
	resp, err := e.dispatch(profileID, opName, payload)
	require.NoError(e.t, err)
	return resp
}

// stored reloads a profile document straight from the backing store.
func (e *env) stored(profileID string) *domain.Profile {
	e.t.Helper()
	p, err := e.repo.GetProfile(context.Background(), testAccount, profileID)
	require.NoError(e.t, err)
	require.NotNil(e.t, p)
	return p
}

// storedOrNil reloads a profile document, returning nil when the account
// never bootstrapped it. Untouched secondaries are never saved, so absence
// is a valid outcome to assert on.
func (e *env) storedOrNil(profileID string) *domain.Profile {
	e.t.Helper()
	p, err := e.repo.GetProfile(context.Background(), testAccount, profileID)
	require.NoError(e.t, err)
	return p
}

// findChange returns the first change of the given type, failing the test
// when none exists.
func findChange(t *testing.T, changes []domain.ProfileChange, changeType string) domain.ProfileChange {
	t.Helper()
	for _, c := range changes {
		if c.ChangeType == changeType {
			return c
		}
	}
	t.Fatalf("no %s change in %v", changeType, changes)
	return domain.ProfileChange{}
}
