package pricing

import "bahia_gestao/internal/domain/entities"

// StockDecrement is the merged quantity to take from one product.
type StockDecrement struct {
	ProductID string
	Name      string
	Quantity  int
}

// StockDecrements merges product lines by id, keeping first-seen order.
// Service lines are skipped.
func StockDecrements(items []entities.OrderItem) []StockDecrement {
	index := make(map[string]int)
	var out []StockDecrement
	for _, item := range items {
		if item.Type != entities.ItemTypeProduct {
			continue
		}
		if i, ok := index[item.ItemID]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ItemID] = len(out)
		out = append(out, StockDecrement{ProductID: item.ItemID, Name: item.Name, Quantity: item.Quantity})
	}
	return out
}

// ValidateStock checks merged product quantities against the current stock.
// A product missing from stock is reported as not found.
func ValidateStock(items []entities.OrderItem, stock map[string]entities.Product) error {
	for _, d := range StockDecrements(items) {
		p, ok := stock[d.ProductID]
		if !ok {
			return entities.ValidationError("item "+d.ProductID, "references an unknown product")
		}
		if d.Quantity > p.Stock {
			return &entities.InsufficientStockError{
				ItemID:    d.ProductID,
				Name:      p.Name,
				Available: p.Stock,
				Requested: d.Quantity,
			}
		}
	}
	return nil
}
