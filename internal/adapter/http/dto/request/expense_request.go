package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
)

type ExpenseRequest struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (r ExpenseRequest) ToEntity(id string) entities.Expense {
	return entities.Expense{
		ID:            id,
		Description:   strings.TrimSpace(r.Description),
		Amount:        r.Amount,
		Date:          strings.TrimSpace(r.Date),
		Category:      strings.TrimSpace(r.Category),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
		Notes:         r.Notes,
	}
}
