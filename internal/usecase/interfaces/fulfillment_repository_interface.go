package interfaces

import (
	"context"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
)

// OrderCommit is everything written when an order is fulfilled.
type OrderCommit struct {
	Order       entities.Order
	Decrements  []pricing.StockDecrement
	NewCustomer *entities.Customer
	// ApproveBudgetID, when set, flips that budget to approved and links it
	// to the order in the same write, provided it is neither approved nor
	// converted.
	ApproveBudgetID string
	// BudgetSeenAt is the UpdatedAt the order was built from. The approval
	// fails with entities.ErrConflict if the budget was edited since.
	BudgetSeenAt time.Time
}

// IFulfillmentRepository applies an OrderCommit atomically: either every
// write lands or none does.
//
// Errors: *entities.InsufficientStockError when a product has less stock than
// its decrement, entities.ErrReadOnly when the budget was already approved,
// entities.ErrConflict when it was edited after BudgetSeenAt.
type IFulfillmentRepository interface {
	Commit(ctx context.Context, c OrderCommit) error
}
