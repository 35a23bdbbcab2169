package request

import (
	"encoding/json"
	"strings"

	"bahia_gestao/internal/usecase"
)

type BudgetRequest struct {
	CustomerID      string        `json:"customer_id"`
	CustomerName    string        `json:"customer_name" binding:"required"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	Date            string        `json:"date"`
	ValidityDate    string        `json:"validity_date"`
	Items           []ItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount        float64       `json:"discount" binding:"gte=0"`
	Notes           string        `json:"notes"`
	WarrantyNotes   string        `json:"warranty_notes"`
	PaymentTerms    string        `json:"payment_terms"`
	PaymentMethod   string        `json:"payment_method"`
	Signature       string        `json:"signature"`
}

func (r BudgetRequest) ToInput() usecase.BudgetInput {
	items := make([]usecase.ItemRef, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToItemRef())
	}
	return usecase.BudgetInput{
		CustomerID:      strings.TrimSpace(r.CustomerID),
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerEmail:   strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerAddress: strings.TrimSpace(r.CustomerAddress),
		Date:            strings.TrimSpace(r.Date),
		ValidityDate:    strings.TrimSpace(r.ValidityDate),
		Items:           items,
		Discount:        r.Discount,
		Notes:           r.Notes,
		WarrantyNotes:   r.WarrantyNotes,
		PaymentTerms:    r.PaymentTerms,
		PaymentMethod:   r.PaymentMethod,
		Signature:       r.Signature,
	}
}

// BudgetPaymentCreateRequest documents the body of the payment route.
//
// `mp_payload` is forwarded to Mercado Pago and stored as raw JSON. A body
// without the envelope is treated as the payload itself.
type BudgetPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
