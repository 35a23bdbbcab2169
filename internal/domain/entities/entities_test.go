package entities

import (
	"errors"
	"testing"
	"time"
)

func TestBudgetStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BudgetStatus
		ok       bool
	}{
		{BudgetStatusDraft, BudgetStatusSent, true},
		{BudgetStatusDraft, BudgetStatusApproved, true},
		{BudgetStatusSent, BudgetStatusRejected, true},
		{BudgetStatusApproved, BudgetStatusConverted, true},
		{BudgetStatusSent, BudgetStatusSent, false},
		{BudgetStatusRejected, BudgetStatusApproved, false},
		{BudgetStatusConverted, BudgetStatusApproved, false},
		{BudgetStatusDraft, BudgetStatusConverted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}

	if !BudgetStatusApproved.ReadOnly() || !BudgetStatusConverted.ReadOnly() || BudgetStatusSent.ReadOnly() {
		t.Fatalf("unexpected read-only set")
	}
}

func TestAppointmentStatusTransitions(t *testing.T) {
	if !AppointmentStatusPending.CanTransition(AppointmentStatusInProgress) {
		t.Fatalf("pending -> in_progress must be allowed")
	}
	if AppointmentStatusPending.CanTransition(AppointmentStatusCompleted) {
		t.Fatalf("pending -> completed must be rejected")
	}
	if AppointmentStatusCanceled.CanTransition(AppointmentStatusPending) {
		t.Fatalf("un-canceling must be rejected")
	}
	if AppointmentStatusInProgress.Label() != "Em Andamento" {
		t.Fatalf("unexpected label %q", AppointmentStatusInProgress.Label())
	}
}

func TestServiceWithPrice(t *testing.T) {
	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	svc := Service{ID: "s1", Price: 100}

	updated := svc.WithPrice(120, at)
	if updated.Price != 120 || len(updated.PriceHistory) != 2 {
		t.Fatalf("unexpected history: %+v", updated.PriceHistory)
	}
	if updated.PriceHistory[0].Price != 100 || updated.PriceHistory[1].Price != 120 {
		t.Fatalf("expected old then new price, got %+v", updated.PriceHistory)
	}
	if len(svc.PriceHistory) != 0 {
		t.Fatalf("original must not change")
	}

	again := updated.WithPrice(130, at)
	if len(again.PriceHistory) != 3 {
		t.Fatalf("expected append only, got %+v", again.PriceHistory)
	}
	if same := again.WithPrice(130, at); len(same.PriceHistory) != 3 {
		t.Fatalf("same price must not be recorded")
	}
}

func TestProductMargins(t *testing.T) {
	p := Product{Cost: 80, Price: 100, Stock: 2, MinStock: 2}
	if p.Margin() != 0.2 {
		t.Fatalf("expected 0.2, got %v", p.Margin())
	}
	if !p.IsLowStock() {
		t.Fatalf("stock == min stock is low")
	}
	if (Product{}).Margin() != 0 {
		t.Fatalf("free product margin must be 0")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	stockErr := &InsufficientStockError{ItemID: "P1", Available: 1, Requested: 2}
	if !errors.Is(stockErr, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock")
	}

	cause := errors.New("dynamo down")
	persistErr := NewPersistenceError("product.list", cause)
	if !errors.Is(persistErr, ErrPersistence) || !errors.Is(persistErr, cause) {
		t.Fatalf("expected both taxonomy and cause, got %v", persistErr)
	}
	if NewPersistenceError("x", persistErr) != persistErr {
		t.Fatalf("must not double wrap")
	}
	if NewPersistenceError("x", nil) != nil {
		t.Fatalf("nil stays nil")
	}
	if !errors.Is(ValidationError("title", "is required"), ErrValidation) {
		t.Fatalf("expected ErrValidation")
	}
}
