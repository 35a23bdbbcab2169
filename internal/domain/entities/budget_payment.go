package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// BudgetPayment records a Mercado Pago charge for an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// ProviderPayloadRaw keeps the provider response body for audit.
type BudgetPayment struct {
	ID                 string                 `json:"id"`
	BudgetID           string                 `json:"budget_id"`
	Amount             float64                `json:"amount"`
	Date               time.Time              `json:"date"`
	Status             PaymentStatus          `json:"status"`
	ProviderStatus     string                 `json:"provider_status"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
