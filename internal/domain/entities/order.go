package entities

import "time"

type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// OrderItem is a point-in-time snapshot of a catalog entry. Name and UnitPrice
// are copied when the item is added and never re-read from the catalog.
type OrderItem struct {
	ItemID    string   `json:"item_id"`
	Name      string   `json:"name"`
	Type      ItemType `json:"type"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Total     float64  `json:"total"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is created at checkout (or budget approval) and only its status may
// change afterwards.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	BudgetID   string      `json:"budget_id,omitempty"`
	Date       string      `json:"date"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	TotalValue float64     `json:"total_value"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
