package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase"
)

type CreateCartRequest struct {
	CustomerID string `json:"customer_id"`
}

// ItemRequest references a catalog entry. Used by carts and budgets.
type ItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=product service"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

func (r ItemRequest) ToItemRef() usecase.ItemRef {
	return usecase.ItemRef{
		ItemID:   strings.TrimSpace(r.ItemID),
		Type:     entities.ItemType(r.Type),
		Quantity: r.Quantity,
	}
}

// AdjustmentsQuery reads discount and surcharge from the query string.
type AdjustmentsQuery struct {
	DiscountValue    float64 `form:"discount_value" json:"discount_value"`
	DiscountPercent  float64 `form:"discount_percent" json:"discount_percent"`
	SurchargeValue   float64 `form:"surcharge_value" json:"surcharge_value"`
	SurchargePercent float64 `form:"surcharge_percent" json:"surcharge_percent"`
}

func (q AdjustmentsQuery) ToAdjustments() pricing.Adjustments {
	return pricing.Adjustments{
		DiscountValue:    q.DiscountValue,
		DiscountPercent:  q.DiscountPercent,
		SurchargeValue:   q.SurchargeValue,
		SurchargePercent: q.SurchargePercent,
	}
}

type CheckoutRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
	AdjustmentsQuery
}

func (r CheckoutRequest) ToCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CustomerID:  strings.TrimSpace(r.CustomerID),
		Date:        strings.TrimSpace(r.Date),
		Notes:       r.Notes,
		Adjustments: r.ToAdjustments(),
	}
}
