package interfaces

import (
	"context"

	"bahia_gestao/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Update is rejected with entities.ErrReadOnly once the stored budget is
// approved or converted. UpdateStatus only applies when the stored status is
// one of from, otherwise it returns entities.ErrInvalidTransition.
type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, to entities.BudgetStatus, from []entities.BudgetStatus) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}

// IBudgetPaymentRepository abstracts DynamoDB persistence for BudgetPayment.
type IBudgetPaymentRepository interface {
	Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error)
}
