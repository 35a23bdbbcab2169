package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = fmt.Errorf("customer %w", entities.ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", entities.ErrNotFound)
)

type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	orders interfaces.IOrderRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, orders interfaces.IOrderRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, orders: orders}
}

// sortNewestFirst orders by date, then creation time, newest first.
func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Date != orders[j].Date {
			return orders[i].Date > orders[j].Date
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// List returns every customer with its orders attached.
func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		return nil, logPersistence("customer", "list", err)
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, logPersistence("customer", "list orders", err)
	}

	byCustomer := make(map[string][]entities.Order, len(customers))
	for _, o := range orders {
		byCustomer[o.CustomerID] = append(byCustomer[o.CustomerID], o)
	}
	for i := range customers {
		own := byCustomer[customers[i].ID]
		if own == nil {
			own = []entities.Order{}
		}
		sortNewestFirst(own)
		customers[i].Orders = own
	}
	return customers, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Customer{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, logPersistence("customer", "get", err)
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	orders, err := u.orders.ListByCustomerID(ctx, id)
	if err != nil {
		return entities.Customer{}, logPersistence("customer", "orders", err)
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	sortNewestFirst(orders)
	c.Orders = orders
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, entities.ValidationError("name", "is required")
	}
	c.ID = uuid.NewString()
	c.CreatedAt = clock()
	c.Orders = []entities.Order{}

	created, err := u.repo.Create(ctx, c)
	return created, logPersistence("customer", "create", err)
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, entities.ValidationError("name", "is required")
	}
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, logPersistence("customer", "update", err)
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	updated.Orders = current.Orders
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("customer", "delete", u.repo.Delete(ctx, id))
}

func (u *CustomerUseCase) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	orderID, err := requireID(orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !status.Valid() {
		return entities.Order{}, entities.ValidationError("status", "must be pending, completed or canceled")
	}
	updated, err := u.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return entities.Order{}, logPersistence("order", "update status", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	orderID, err := requireID(orderID)
	if err != nil {
		return err
	}
	return logPersistence("order", "delete", u.orders.Delete(ctx, orderID))
}
