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

var ErrServiceNotFound = fmt.Errorf("service %w", entities.ErrNotFound)

type IServiceUseCase interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	SimulatePrice(ctx context.Context, id string, in PriceSimulationInput) (PriceSimulationResult, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func validateService(s entities.Service) error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return entities.ValidationError("name", "is required")
	case s.Price < 0:
		return entities.ValidationError("price", "must not be negative")
	case s.Cost < 0:
		return entities.ValidationError("cost", "must not be negative")
	case s.EstimatedHours < 0:
		return entities.ValidationError("estimated_hours", "must not be negative")
	}
	return nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	return services, logPersistence("service", "list", err)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Service{}, err
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, logPersistence("service", "get", err)
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// Create seeds the price history with the initial price.
func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if err := validateService(s); err != nil {
		return entities.Service{}, err
	}
	s.ID = uuid.NewString()
	s.PriceHistory = []entities.PriceHistoryItem{{Date: clock(), Price: s.Price}}

	created, err := u.repo.Create(ctx, s)
	return created, logPersistence("service", "create", err)
}

// Update ignores any history sent by the caller; a price change is appended
// to the stored history.
func (u *ServiceUseCase) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	current, err := u.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Service{}, err
	}
	s.Name = strings.TrimSpace(s.Name)
	if err := validateService(s); err != nil {
		return entities.Service{}, err
	}

	next := current.WithPrice(s.Price, clock())
	next.Name = s.Name
	next.Category = s.Category
	next.Cost = s.Cost
	next.Description = s.Description
	next.EstimatedHours = s.EstimatedHours
	next.Active = s.Active

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Service{}, logPersistence("service", "update", err)
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("service", "delete", u.repo.Delete(ctx, id))
}

// SimulatePrice works like the product simulator. An applied price goes
// through WithPrice so it lands in the price history.
func (u *ServiceUseCase) SimulatePrice(ctx context.Context, id string, in PriceSimulationInput) (PriceSimulationResult, error) {
	if err := validateSimulation(in); err != nil {
		return PriceSimulationResult{}, err
	}
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return PriceSimulationResult{}, err
	}
	res := PriceSimulationResult{Simulation: pricing.Simulate(s.Cost, s.Price, in.SimulationInput), ItemID: s.ID}
	if !in.Apply {
		return res, nil
	}

	updated, err := u.repo.Update(ctx, s.WithPrice(res.SimulatedPrice, clock()))
	if err != nil {
		return PriceSimulationResult{}, logPersistence("service", "apply price", err)
	}
	if updated.ID == "" {
		return PriceSimulationResult{}, ErrServiceNotFound
	}
	res.Applied = true
	log.Printf("[service][usecase] simulated price applied service_id=%s price=%.2f", s.ID, res.SimulatedPrice)
	return res, nil
}
