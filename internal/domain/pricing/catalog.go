package pricing

import "bahia_gestao/internal/domain/entities"

// CatalogEntry is the view of a product or service the engine prices against.
// Stock is ignored for services.
type CatalogEntry struct {
	ID        string
	Name      string
	Type      entities.ItemType
	UnitPrice float64
	Stock     int
}

func FromProduct(p entities.Product) CatalogEntry {
	return CatalogEntry{ID: p.ID, Name: p.Name, Type: entities.ItemTypeProduct, UnitPrice: p.Price, Stock: p.Stock}
}

func FromService(s entities.Service) CatalogEntry {
	return CatalogEntry{ID: s.ID, Name: s.Name, Type: entities.ItemTypeService, UnitPrice: s.Price}
}

// NewOrderItem snapshots the entry at its current price.
func NewOrderItem(entry CatalogEntry, quantity int) (entities.OrderItem, error) {
	if quantity < 1 {
		return entities.OrderItem{}, entities.ValidationError("quantity", "must be at least 1")
	}
	if !entry.Type.Valid() {
		return entities.OrderItem{}, entities.ValidationError("type", "must be product or service")
	}
	return entities.OrderItem{
		ItemID:    entry.ID,
		Name:      entry.Name,
		Type:      entry.Type,
		Quantity:  quantity,
		UnitPrice: entry.UnitPrice,
		Total:     lineTotal(entry.UnitPrice, quantity).InexactFloat64(),
	}, nil
}
