package usecase

import (
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
)

// PriceSimulationInput runs a what-if on one catalog item. With Apply set the
// suggested price is written to the item.
type PriceSimulationInput struct {
	pricing.SimulationInput
	Apply bool
}

type PriceSimulationResult struct {
	pricing.Simulation
	ItemID  string `json:"item_id"`
	Applied bool   `json:"applied"`
}

func validateSimulation(in PriceSimulationInput) error {
	switch {
	case in.TargetMargin < 0:
		return entities.ValidationError("target_margin", "must not be negative")
	case in.CostIncrease < -100:
		return entities.ValidationError("cost_increase", "must be at least -100")
	}
	return nil
}
