package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	MinStock    int     `json:"min_stock" binding:"gte=0"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Supplier    string  `json:"supplier"`
	Batch       string  `json:"batch"`
	ExpiryDate  string  `json:"expiry_date"`
	EntryDate   string  `json:"entry_date"`
	Image       string  `json:"image"`
	Observation string  `json:"observation"`
}

// ToEntity builds the product for id. Stock is ignored on update.
func (r ProductRequest) ToEntity(id string) entities.Product {
	return entities.Product{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Cost:        r.Cost,
		Price:       r.Price,
		Supplier:    strings.TrimSpace(r.Supplier),
		Batch:       r.Batch,
		ExpiryDate:  r.ExpiryDate,
		EntryDate:   r.EntryDate,
		Image:       r.Image,
		Observation: r.Observation,
	}
}

type ServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Price          float64 `json:"price" binding:"gte=0"`
	Cost           float64 `json:"cost" binding:"gte=0"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours" binding:"gte=0"`
	Active         *bool   `json:"active"`
}

// ToEntity builds the service for id. A missing active flag means active.
func (r ServiceRequest) ToEntity(id string) entities.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entities.Service{
		ID:             id,
		Name:           strings.TrimSpace(r.Name),
		Category:       strings.TrimSpace(r.Category),
		Price:          r.Price,
		Cost:           r.Cost,
		Description:    r.Description,
		EstimatedHours: r.EstimatedHours,
		Active:         active,
	}
}

// defaultTargetMargin is the margin the simulator starts from.
const defaultTargetMargin = 40

type PriceSimulationRequest struct {
	TargetMargin *float64 `json:"target_margin" binding:"omitempty,gte=0"`
	CostIncrease float64  `json:"cost_increase" binding:"gte=-100"`
	Apply        bool     `json:"apply"`
}

func (r PriceSimulationRequest) ToInput() usecase.PriceSimulationInput {
	margin := float64(defaultTargetMargin)
	if r.TargetMargin != nil {
		margin = *r.TargetMargin
	}
	return usecase.PriceSimulationInput{
		SimulationInput: pricing.SimulationInput{TargetMargin: margin, CostIncrease: r.CostIncrease},
		Apply:           r.Apply,
	}
}
