package interfaces

import (
	"context"

	"bahia_gestao/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Update writes every field except stock. Stock only moves through
// IFulfillmentRepository.Commit.
type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

// IServiceRepository abstracts DynamoDB persistence for Service.
type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
