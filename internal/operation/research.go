package operation

import (
	"context"
	"fmt"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
)

// ResearchCostPerLevel scales the research-point price of each level: the
// upgrade from level N to N+1 costs (N+1) * ResearchCostPerLevel.
const ResearchCostPerLevel = 10

type purchaseResearchStatUpgradeRequest struct {
	StatID string `json:"statId" validate:"required,oneof=fortitude offense resistance technology"`
}

// PurchaseResearchStatUpgrade raises one research stat line by a level,
// spending research points.
func (h *handlers) PurchaseResearchStatUpgrade(ctx context.Context, op *mcp.Op) error {
	var req purchaseResearchStatUpgradeRequest
	if err := op.Decode(&req); err != nil {
		return err
	}

	profile := op.Primary.Profile()
	levels := profile.StatMap(domain.StatResearchLevels)
	level := intStat(levels[req.StatID])
	if level >= domain.MaxResearchLevel {
		return fmt.Errorf("%w: %s is at level %d", domain.ErrMaxLevelReached, req.StatID, level)
	}

	cost := (level + 1) * ResearchCostPerLevel
	walletID := profile.FindByTemplate(domain.TemplateResearchPoints)
	if walletID == "" || profile.Items[walletID].Quantity < cost {
		return fmt.Errorf("%w: research level %d costs %d points", domain.ErrInsufficientFunds, level+1, cost)
	}

	if err := op.Primary.Consume(walletID, cost); err != nil {
		return err
	}
	levels[req.StatID] = level + 1
	op.Primary.SetStat(domain.StatResearchLevels, levels)
	return nil
}

// intStat coerces a stat value to int. JSON numbers decode as float64.
func intStat(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
