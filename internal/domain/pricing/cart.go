package pricing

import (
	"fmt"
	"time"

	"bahia_gestao/internal/domain/entities"
)

type CartState string

const (
	CartStateEmpty     CartState = "empty"
	CartStateBuilding  CartState = "building"
	CartStateCommitted CartState = "committed"
	CartStateDiscarded CartState = "discarded"
)

var (
	ErrCartClosed = fmt.Errorf("%w: cart is closed", entities.ErrInvalidTransition)
	ErrCartEmpty  = fmt.Errorf("%w: cart has no items", entities.ErrValidation)
)

// Cart is an uncommitted list of order items. Committed and Discarded are
// terminal.
type Cart struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id,omitempty"`
	State      CartState            `json:"state"`
	Items      []entities.OrderItem `json:"items"`
	OrderID    string               `json:"order_id,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func NewCart(id, customerID string, now time.Time) *Cart {
	return &Cart{
		ID:         id,
		CustomerID: customerID,
		State:      CartStateEmpty,
		Items:      []entities.OrderItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (c *Cart) Open() bool {
	return c.State == CartStateEmpty || c.State == CartStateBuilding
}

// Quantity is how many units of itemID the cart already holds.
func (c *Cart) Quantity(itemID string) int {
	n := 0
	for _, item := range c.Items {
		if item.ItemID == itemID {
			n += item.Quantity
		}
	}
	return n
}

// AddItem snapshots entry into the cart. For products the quantity already in
// the cart counts against the stock. The catalog is not touched.
func (c *Cart) AddItem(entry CatalogEntry, quantity int, now time.Time) (entities.OrderItem, error) {
	if !c.Open() {
		return entities.OrderItem{}, ErrCartClosed
	}
	item, err := NewOrderItem(entry, quantity)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if entry.Type == entities.ItemTypeProduct {
		inCart := c.Quantity(entry.ID)
		if quantity+inCart > entry.Stock {
			return entities.OrderItem{}, &entities.InsufficientStockError{
				ItemID:    entry.ID,
				Name:      entry.Name,
				Available: entry.Stock - inCart,
				Requested: quantity,
			}
		}
	}
	c.Items = append(c.Items, item)
	c.State = CartStateBuilding
	c.UpdatedAt = now
	return item, nil
}

// RemoveItem drops the item at index. An out of range index is a no-op.
func (c *Cart) RemoveItem(index int, now time.Time) error {
	if !c.Open() {
		return ErrCartClosed
	}
	if index < 0 || index >= len(c.Items) {
		return nil
	}
	c.Items = append(c.Items[:index:index], c.Items[index+1:]...)
	c.State = CartStateBuilding
	c.UpdatedAt = now
	return nil
}

func (c *Cart) Totals(adj Adjustments) Totals {
	return ComputeTotals(c.Items, adj)
}

// MarkCommitted closes the cart after its order was persisted.
func (c *Cart) MarkCommitted(orderID string, now time.Time) error {
	if !c.Open() {
		return ErrCartClosed
	}
	if len(c.Items) == 0 {
		return ErrCartEmpty
	}
	c.State = CartStateCommitted
	c.OrderID = orderID
	c.UpdatedAt = now
	return nil
}

func (c *Cart) Discard(now time.Time) error {
	if !c.Open() {
		return ErrCartClosed
	}
	c.State = CartStateDiscarded
	c.UpdatedAt = now
	return nil
}
