package response

import (
	"time"

	"bahia_gestao/internal/domain/entities"
)

type BudgetPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ID             string    `json:"id"`
	BudgetID       string    `json:"budget_id"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBudgetPayment(p entities.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		PaymentID:      p.ID,
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		Amount:         p.Amount,
		PaymentDate:    p.Date,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayloadRaw:   string(p.ProviderPayloadRaw),
		MPPayload:      p.ProviderPayload,
	}
}
