package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrProductNotFound = fmt.Errorf("product %w", entities.ErrNotFound)

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	SimulatePrice(ctx context.Context, id string, in PriceSimulationInput) (PriceSimulationResult, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validateProduct(p entities.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return entities.ValidationError("name", "is required")
	case p.Stock < 0:
		return entities.ValidationError("stock", "must not be negative")
	case p.MinStock < 0:
		return entities.ValidationError("min_stock", "must not be negative")
	case p.Cost < 0:
		return entities.ValidationError("cost", "must not be negative")
	case p.Price < 0:
		return entities.ValidationError("price", "must not be negative")
	}
	return nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	return products, logPersistence("product", "list", err)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Product{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, logPersistence("product", "get", err)
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	p.ID = uuid.NewString()
	p.LastUpdated = clock()
	if p.EntryDate == "" {
		p.EntryDate = today()
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, logPersistence("product", "create", err)
	}
	log.Printf("[product][usecase] created product_id=%s stock=%d", created.ID, created.Stock)
	return created, nil
}

// Update replaces the catalog fields of a product. The stored stock is kept
// whatever the input says.
func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = current.ID
	p.Name = strings.TrimSpace(p.Name)
	p.Stock = current.Stock
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	p.LastUpdated = clock()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, logPersistence("product", "update", err)
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("product", "delete", u.repo.Delete(ctx, id))
}

// SimulatePrice prices the product for a target margin after a cost change.
// Stock and cost are never touched, only the price when in.Apply is set.
func (u *ProductUseCase) SimulatePrice(ctx context.Context, id string, in PriceSimulationInput) (PriceSimulationResult, error) {
	if err := validateSimulation(in); err != nil {
		return PriceSimulationResult{}, err
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return PriceSimulationResult{}, err
	}
	res := PriceSimulationResult{Simulation: pricing.Simulate(p.Cost, p.Price, in.SimulationInput), ItemID: p.ID}
	if !in.Apply {
		return res, nil
	}

	p.Price = res.SimulatedPrice
	p.LastUpdated = clock()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return PriceSimulationResult{}, logPersistence("product", "apply price", err)
	}
	if updated.ID == "" {
		return PriceSimulationResult{}, ErrProductNotFound
	}
	res.Applied = true
	log.Printf("[product][usecase] simulated price applied product_id=%s price=%.2f", p.ID, p.Price)
	return res, nil
}
