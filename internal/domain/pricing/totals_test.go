package pricing

import (
	"errors"
	"math"
	"testing"

	"bahia_gestao/internal/domain/entities"
)

func items(totals ...float64) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(totals))
	for i, v := range totals {
		out = append(out, entities.OrderItem{ItemID: string(rune('A' + i)), Type: entities.ItemTypeService, Quantity: 1, UnitPrice: v, Total: v})
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-2
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name  string
		items []entities.OrderItem
		adj   Adjustments
		want  Totals
	}{
		{
			name:  "percent discount",
			items: items(120, 80),
			adj:   Adjustments{DiscountPercent: 10},
			want:  Totals{Subtotal: 200, DiscountTotal: 20, Total: 180},
		},
		{
			name:  "value and percent on both sides",
			items: items(100),
			adj:   Adjustments{DiscountValue: 5, DiscountPercent: 10, SurchargeValue: 2, SurchargePercent: 50},
			want:  Totals{Subtotal: 100, DiscountTotal: 15, SurchargeTotal: 52, Total: 137},
		},
		{
			name:  "not clamped",
			items: items(50),
			adj:   Adjustments{DiscountValue: 80},
			want:  Totals{Subtotal: 50, DiscountTotal: 80, Total: -30},
		},
		{
			name:  "empty",
			items: nil,
			adj:   Adjustments{SurchargeValue: 10},
			want:  Totals{SurchargeTotal: 10, Total: 10},
		},
		{
			name:  "fractional prices",
			items: []entities.OrderItem{{ItemID: "P", Type: entities.ItemTypeProduct, Quantity: 3, UnitPrice: 0.1}},
			adj:   Adjustments{},
			want:  Totals{Subtotal: 0.3, Total: 0.3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.adj)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if !almostEqual(got.Total, got.Subtotal-got.DiscountTotal+got.SurchargeTotal) {
				t.Fatalf("total identity broken: %+v", got)
			}
		})
	}
}

func TestBudgetTotal(t *testing.T) {
	if got := BudgetTotal(items(300, 200), 50); got != 450 {
		t.Fatalf("expected 450, got %v", got)
	}
	if got := BudgetTotal(items(300, 200), 600); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := BudgetTotal(nil, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestStockDecrementsMergesProducts(t *testing.T) {
	in := []entities.OrderItem{
		{ItemID: "P1", Name: "Cabo", Type: entities.ItemTypeProduct, Quantity: 2},
		{ItemID: "S1", Type: entities.ItemTypeService, Quantity: 1},
		{ItemID: "P2", Name: "Disjuntor", Type: entities.ItemTypeProduct, Quantity: 1},
		{ItemID: "P1", Name: "Cabo", Type: entities.ItemTypeProduct, Quantity: 3},
	}

	got := StockDecrements(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 decrements, got %+v", got)
	}
	if got[0].ProductID != "P1" || got[0].Quantity != 5 || got[1].ProductID != "P2" {
		t.Fatalf("unexpected decrements: %+v", got)
	}
}

func TestValidateStock(t *testing.T) {
	in := []entities.OrderItem{
		{ItemID: "P1", Type: entities.ItemTypeProduct, Quantity: 2},
		{ItemID: "P1", Type: entities.ItemTypeProduct, Quantity: 2},
	}

	if err := ValidateStock(in, map[string]entities.Product{"P1": {ID: "P1", Stock: 4}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateStock(in, map[string]entities.Product{"P1": {ID: "P1", Name: "Cabo", Stock: 3}})
	var stockErr *entities.InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.Available != 3 || stockErr.Requested != 4 {
		t.Fatalf("expected insufficient stock 3/4, got %v", err)
	}

	if err := ValidateStock(in, map[string]entities.Product{}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error for unknown product, got %v", err)
	}
}
