package repository

import (
	"context"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
)

const defaultExpensesTableName = "expenses"

type expenseItem struct {
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	Amount        string `dynamodbav:"amount"`
	Date          string `dynamodbav:"date"`
	Category      string `dynamodbav:"category"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Notes         string `dynamodbav:"notes,omitempty"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ExpenseDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb dynamoAPI) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{table: newDynamoTable(ddb, "EXPENSES_TABLE", defaultExpensesTableName)}
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	raws, err := r.table.scanAll(ctx, "list expenses", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list expenses", raws, fromExpenseItem)
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	var it expenseItem
	found, err := r.table.get(ctx, "get expense", id, &it)
	if err != nil || !found {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	if err := r.table.insert(ctx, "create expense", toExpenseItem(e)); err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	found, err := r.table.replace(ctx, "update expense", toExpenseItem(e))
	if err != nil || !found {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete expense", id)
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        floatToString(e.Amount),
		Date:          e.Date,
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		Notes:         e.Notes,
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:            it.ID,
		Description:   it.Description,
		Amount:        stringToFloat(it.Amount),
		Date:          it.Date,
		Category:      it.Category,
		PaymentMethod: it.PaymentMethod,
		Notes:         it.Notes,
	}
}
