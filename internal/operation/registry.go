// Package operation implements every client-invocable profile operation.
// Each handler follows one contract: decode and validate the payload, look
// up referenced state, mutate in memory through the Op's mutators, and
// leave persistence to the dispatcher.
package operation

import (
	"github.com/Aorux01/Neodyme-sub003/internal/catalog"
	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/expedition"
	"github.com/Aorux01/Neodyme-sub003/internal/lootbox"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// Config carries the external collaborators the handlers consume.
type Config struct {
	Catalog     catalog.Provider
	Lootbox     *lootbox.Service
	Expeditions *expedition.Service

	// Rnd drives collect-expedition success rolls. Nil means the default
	// source; tests inject a deterministic one.
	Rnd func() float64
}

type handlers struct {
	catalog     catalog.Provider
	lootbox     *lootbox.Service
	expeditions *expedition.Service
	rnd         func() float64
}

// NewRegistry builds the full operation registry over the given services.
func NewRegistry(cfg Config) *mcp.Registry {
	h := &handlers{
		catalog:     cfg.Catalog,
		lootbox:     cfg.Lootbox,
		expeditions: cfg.Expeditions,
		rnd:         cfg.Rnd,
	}
	if h.rnd == nil {
		h.rnd = utils.RandomFloat
	}

	collectionBooks := []string{domain.ProfileCollectionPeople, domain.ProfileCollectionSchematic}

	r := mcp.NewRegistry()
	r.Register(mcp.Registration{Name: "QueryProfile", Handler: h.QueryProfile})
	r.Register(mcp.Registration{Name: "OpenCardPack", Handler: h.OpenCardPack})
	r.Register(mcp.Registration{Name: "PurchaseCatalogEntry", Secondaries: domain.ProfileIDs(), Handler: h.PurchaseCatalogEntry})
	r.Register(mcp.Registration{Name: "StartExpedition", Handler: h.StartExpedition})
	r.Register(mcp.Registration{Name: "AbandonExpedition", Handler: h.AbandonExpedition})
	r.Register(mcp.Registration{Name: "CollectExpedition", Secondaries: domain.ProfileIDs(), Handler: h.CollectExpedition})
	r.Register(mcp.Registration{Name: "SlotItemInCollectionBook", Secondaries: collectionBooks, Handler: h.SlotItemInCollectionBook})
	r.Register(mcp.Registration{Name: "UnslotItemFromCollectionBook", Secondaries: collectionBooks, Handler: h.UnslotItemFromCollectionBook})
	r.Register(mcp.Registration{Name: "StorageTransfer", Secondaries: []string{domain.ProfileOutpost}, Handler: h.StorageTransfer})
	r.Register(mcp.Registration{Name: "SetItemFavoriteStatus", Handler: h.SetItemFavoriteStatus})
	r.Register(mcp.Registration{Name: "MarkItemSeen", Handler: h.MarkItemSeen})
	r.Register(mcp.Registration{Name: "AssignHeroToLoadout", Handler: h.AssignHeroToLoadout})
	r.Register(mcp.Registration{Name: "ClearHeroLoadout", Handler: h.ClearHeroLoadout})
	r.Register(mcp.Registration{Name: "SetActiveHeroLoadout", Handler: h.SetActiveHeroLoadout})
	r.Register(mcp.Registration{Name: "PurchaseResearchStatUpgrade", Handler: h.PurchaseResearchStatUpgrade})
	r.Register(mcp.Registration{Name: "UpgradeItemLevel", Handler: h.UpgradeItemLevel})
	r.Register(mcp.Registration{Name: "RecycleItems", Handler: h.RecycleItems})
	r.Register(mcp.Registration{Name: "TransmogItem", Handler: h.TransmogItem})
	r.Register(mcp.Registration{Name: "UnlockRewardNode", Handler: h.UnlockRewardNode})
	r.Register(mcp.Registration{Name: "SetHomebaseName", Secondaries: []string{domain.ProfileOutpost}, Handler: h.SetHomebaseName})
	return r
}
