package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
//	draft -> sent -> approved | rejected
//	draft -> approved | rejected
//	approved -> converted
type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "draft"
	BudgetStatusSent      BudgetStatus = "sent"
	BudgetStatusApproved  BudgetStatus = "approved"
	BudgetStatusRejected  BudgetStatus = "rejected"
	BudgetStatusConverted BudgetStatus = "converted"
)

// ReadOnly reports whether items, discount and customer fields are frozen.
func (s BudgetStatus) ReadOnly() bool {
	return s == BudgetStatusApproved || s == BudgetStatusConverted
}

// CanTransition lists the allowed moves of the lifecycle.
func (s BudgetStatus) CanTransition(to BudgetStatus) bool {
	switch to {
	case BudgetStatusSent:
		return s == BudgetStatusDraft
	case BudgetStatusApproved, BudgetStatusRejected:
		return s == BudgetStatusDraft || s == BudgetStatusSent
	case BudgetStatusConverted:
		return s == BudgetStatusApproved
	}
	return false
}

// Budget is a quote that may turn into an Order. Customer fields are a
// denormalized snapshot.
type Budget struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id,omitempty"`
	CustomerName    string       `json:"customer_name"`
	CustomerEmail   string       `json:"customer_email,omitempty"`
	CustomerPhone   string       `json:"customer_phone,omitempty"`
	CustomerAddress string       `json:"customer_address,omitempty"`
	Date            string       `json:"date"`
	ValidityDate    string       `json:"validity_date"`
	Status          BudgetStatus `json:"status"`
	Items           []OrderItem  `json:"items"`
	TotalValue      float64      `json:"total_value"`
	Discount        float64      `json:"discount"`
	Notes           string       `json:"notes,omitempty"`
	WarrantyNotes   string       `json:"warranty_notes,omitempty"`
	PaymentTerms    string       `json:"payment_terms,omitempty"`
	PaymentMethod   string       `json:"payment_method,omitempty"`
	Signature       string       `json:"signature,omitempty"`
	OrderID         string       `json:"order_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
