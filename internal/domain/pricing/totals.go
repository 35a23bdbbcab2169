package pricing

import (
	"bahia_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Adjustments are the order-level discount and surcharge inputs. Values are
// absolute amounts, percents apply to the subtotal.
type Adjustments struct {
	DiscountValue    float64 `json:"discount_value"`
	DiscountPercent  float64 `json:"discount_percent"`
	SurchargeValue   float64 `json:"surcharge_value"`
	SurchargePercent float64 `json:"surcharge_percent"`
}

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountTotal  float64 `json:"discount_total"`
	SurchargeTotal float64 `json:"surcharge_total"`
	Total          float64 `json:"total"`
}

func lineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

func subtotal(items []entities.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(lineTotal(item.UnitPrice, item.Quantity))
	}
	return sum
}

// Subtotal sums quantity x unit price over the items.
func Subtotal(items []entities.OrderItem) float64 {
	return subtotal(items).InexactFloat64()
}

// ComputeTotals applies order adjustments. The total is not clamped and may go
// negative when discounts exceed the subtotal.
func ComputeTotals(items []entities.OrderItem, adj Adjustments) Totals {
	sub := subtotal(items)
	discount := decimal.NewFromFloat(adj.DiscountValue).
		Add(sub.Mul(decimal.NewFromFloat(adj.DiscountPercent)).Div(hundred))
	surcharge := decimal.NewFromFloat(adj.SurchargeValue).
		Add(sub.Mul(decimal.NewFromFloat(adj.SurchargePercent)).Div(hundred))

	return Totals{
		Subtotal:       sub.InexactFloat64(),
		DiscountTotal:  discount.InexactFloat64(),
		SurchargeTotal: surcharge.InexactFloat64(),
		Total:          sub.Sub(discount).Add(surcharge).InexactFloat64(),
	}
}

// BudgetTotal is max(0, subtotal - discount).
func BudgetTotal(items []entities.OrderItem, discount float64) float64 {
	total := subtotal(items).Sub(decimal.NewFromFloat(discount))
	if total.IsNegative() {
		return 0
	}
	return total.InexactFloat64()
}
