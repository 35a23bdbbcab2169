package usecase

import (
	"context"
	"fmt"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase/interfaces"
)

var ErrServiceInactive = fmt.Errorf("%w: service is not active", entities.ErrValidation)

// ItemRef points at a catalog entry to be snapshotted into a cart or budget.
type ItemRef struct {
	ItemID   string
	Type     entities.ItemType
	Quantity int
}

type catalogLookup struct {
	products interfaces.IProductRepository
	services interfaces.IServiceRepository
}

// entry reads the live catalog entry an item refers to.
func (c catalogLookup) entry(ctx context.Context, ref ItemRef) (pricing.CatalogEntry, error) {
	id, err := requireID(ref.ItemID)
	if err != nil {
		return pricing.CatalogEntry{}, err
	}
	switch ref.Type {
	case entities.ItemTypeProduct:
		p, err := c.products.GetByID(ctx, id)
		if err != nil {
			return pricing.CatalogEntry{}, logPersistence("catalog", "product lookup", err)
		}
		if p.ID == "" {
			return pricing.CatalogEntry{}, ErrProductNotFound
		}
		return pricing.FromProduct(p), nil
	case entities.ItemTypeService:
		s, err := c.services.GetByID(ctx, id)
		if err != nil {
			return pricing.CatalogEntry{}, logPersistence("catalog", "service lookup", err)
		}
		if s.ID == "" {
			return pricing.CatalogEntry{}, ErrServiceNotFound
		}
		if !s.Active {
			return pricing.CatalogEntry{}, ErrServiceInactive
		}
		return pricing.FromService(s), nil
	}
	return pricing.CatalogEntry{}, entities.ValidationError("type", "must be product or service")
}

// liveStock loads the current products referenced by items.
func (c catalogLookup) liveStock(ctx context.Context, items []entities.OrderItem) (map[string]entities.Product, []pricing.StockDecrement, error) {
	decrements := pricing.StockDecrements(items)
	if len(decrements) == 0 {
		return map[string]entities.Product{}, nil, nil
	}
	ids := make([]string, 0, len(decrements))
	for _, d := range decrements {
		ids = append(ids, d.ProductID)
	}
	products, err := c.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, logPersistence("catalog", "stock lookup", err)
	}
	if err := pricing.ValidateStock(items, products); err != nil {
		return nil, nil, err
	}
	return products, decrements, nil
}
