package domain

// Profile identifiers known to the engine. Bootstrap templates exist for
// exactly this set; anything else is rejected by the store.
const (
	ProfileAthena              = "athena"
	ProfileCampaign            = "campaign"
	ProfileCommonCore          = "common_core"
	ProfileOutpost             = "outpost0"
	ProfileCollectionPeople    = "collection_book_people0"
	ProfileCollectionSchematic = "collection_book_schematics0"
)

// ProfileIDs returns every profile id the engine can load.
func ProfileIDs() []string {
	return []string{
		ProfileAthena,
		ProfileCampaign,
		ProfileCommonCore,
		ProfileOutpost,
		ProfileCollectionPeople,
		ProfileCollectionSchematic,
	}
}

// Template id prefixes with engine-level semantics. Everything after the
// prefix is game content the engine treats as opaque.
const (
	TemplateTypeCurrency   = "currency"
	TemplateTypeSchematic  = "schematic"
	TemplateTypeWorker     = "worker"
	TemplateTypeHero       = "hero"
	TemplateTypeExpedition = "expedition"
	TemplateTypeCardPack   = "cardpack"
)

// Well-known currency templates.
const (
	TemplateMtxCurrency    = "currency:mtxpurchased"
	TemplateGold           = "currency:gold"
	TemplateResearchPoints = "currency:researchpoints"
	TemplateUpgradePoints  = "currency:upgradepoints"
)

// Stat attribute keys the loadout, research and unlock operations work
// against.
const (
	StatHeroLoadouts   = "hero_loadouts"
	StatActiveLoadout  = "active_loadout_id"
	StatResearchLevels = "research_levels"
	StatHomebaseName   = "homebase_name"
	StatUnlockedNodes  = "unlocked_nodes"
)

// ResponseVersion is the fixed version stamp of the operation envelope.
const ResponseVersion = 1

// MaxResearchLevel caps each research stat line.
const MaxResearchLevel = 120

// MaxItemLevel caps per-item upgrade levels.
const MaxItemLevel = 60
