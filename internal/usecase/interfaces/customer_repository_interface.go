package interfaces

import (
	"context"

	"bahia_gestao/internal/domain/entities"
)

// ICustomerRepository stores customers without their orders; orders live in
// their own table and are joined by the use case.
type ICustomerRepository interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	FindByName(ctx context.Context, name string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

// IOrderRepository. Orders are created only by IFulfillmentRepository.Commit.
type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
