package usecase

import (
	"context"
	"fmt"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrExpenseNotFound = fmt.Errorf("expense %w", entities.ErrNotFound)

type IExpenseUseCase interface {
	List(ctx context.Context) ([]entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func validateExpense(e *entities.Expense) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.Date = strings.TrimSpace(e.Date)
	switch {
	case e.Description == "":
		return entities.ValidationError("description", "is required")
	case e.Amount <= 0:
		return entities.ValidationError("amount", "must be positive")
	case e.Category == "":
		return entities.ValidationError("category", "is required")
	case !validDate(e.Date):
		return entities.ValidationError("date", "must be YYYY-MM-DD")
	}
	return nil
}

func (u *ExpenseUseCase) List(ctx context.Context) ([]entities.Expense, error) {
	expenses, err := u.repo.List(ctx)
	return expenses, logPersistence("expense", "list", err)
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Expense{}, err
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, logPersistence("expense", "get", err)
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *ExpenseUseCase) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	if err := validateExpense(&e); err != nil {
		return entities.Expense{}, err
	}
	e.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, e)
	return created, logPersistence("expense", "create", err)
}

func (u *ExpenseUseCase) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	id, err := requireID(e.ID)
	if err != nil {
		return entities.Expense{}, err
	}
	e.ID = id
	if err := validateExpense(&e); err != nil {
		return entities.Expense{}, err
	}
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Expense{}, logPersistence("expense", "update", err)
	}
	if updated.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return updated, nil
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("expense", "delete", u.repo.Delete(ctx, id))
}
