package response

import (
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
)

// BudgetResponse adds the pre-discount subtotal and the read-only flag the
// UI needs to lock the edit form.
type BudgetResponse struct {
	entities.Budget
	Subtotal float64 `json:"subtotal"`
	ReadOnly bool    `json:"read_only"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	if b.Items == nil {
		b.Items = []entities.OrderItem{}
	}
	return BudgetResponse{
		Budget:   b,
		Subtotal: pricing.Subtotal(b.Items),
		ReadOnly: b.Status.ReadOnly(),
	}
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}
