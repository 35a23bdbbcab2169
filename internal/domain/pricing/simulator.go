package pricing

import "github.com/shopspring/decimal"

// maxTargetMargin keeps the markup divisor away from zero.
const maxTargetMargin = 99

// SimulationInput is a what-if scenario: raise the cost by CostIncrease
// percent, then price for TargetMargin percent of the selling price.
type SimulationInput struct {
	TargetMargin float64 `json:"target_margin"`
	CostIncrease float64 `json:"cost_increase"`
}

type Simulation struct {
	CurrentCost    float64 `json:"current_cost"`
	CurrentPrice   float64 `json:"current_price"`
	CurrentProfit  float64 `json:"current_profit"`
	SimulatedCost  float64 `json:"simulated_cost"`
	SimulatedPrice float64 `json:"simulated_price"`
	ProfitPerUnit  float64 `json:"profit_per_unit"`
	TargetMargin   float64 `json:"target_margin"`
	CostIncrease   float64 `json:"cost_increase"`
}

// Simulate computes
//
//	simulatedCost  = cost * (1 + costIncrease/100)
//	simulatedPrice = simulatedCost / (1 - min(targetMargin, 99)/100)
//
// The suggested price is rounded to cents; profit per unit is taken from the
// rounded price.
func Simulate(cost, price float64, in SimulationInput) Simulation {
	margin := in.TargetMargin
	if margin > maxTargetMargin {
		margin = maxTargetMargin
	}
	c := decimal.NewFromFloat(cost)
	simCost := c.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(in.CostIncrease).Div(hundred)))
	divisor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(margin).Div(hundred))
	simPrice := simCost.Div(divisor).Round(2)

	return Simulation{
		CurrentCost:    cost,
		CurrentPrice:   price,
		CurrentProfit:  decimal.NewFromFloat(price).Sub(c).InexactFloat64(),
		SimulatedCost:  simCost.Round(2).InexactFloat64(),
		SimulatedPrice: simPrice.InexactFloat64(),
		ProfitPerUnit:  simPrice.Sub(simCost).Round(2).InexactFloat64(),
		TargetMargin:   margin,
		CostIncrease:   in.CostIncrease,
	}
}
