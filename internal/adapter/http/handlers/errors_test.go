package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", entities.ValidationError("name", "is required"), http.StatusBadRequest},
		{"invalid id", usecase.ErrInvalidID, http.StatusBadRequest},
		{"not found", fmt.Errorf("thing %w", entities.ErrNotFound), http.StatusNotFound},
		{"read only", entities.ErrReadOnly, http.StatusConflict},
		{"transition", entities.ErrInvalidTransition, http.StatusConflict},
		{"conflict", entities.ErrConflict, http.StatusConflict},
		{"in progress", usecase.ErrOperationInProgress, http.StatusConflict},
		{"unauthenticated", usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"persistence", entities.NewPersistenceError("product.list", errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapDomainError(tc.err); got.HTTPStatus != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, got.HTTPStatus)
			}
		})
	}
}

func TestMapDomainError_InsufficientStockDetails(t *testing.T) {
	err := fmt.Errorf("checkout: %w", &entities.InsufficientStockError{ItemID: "p1", Name: "Cabo", Available: 1, Requested: 3})

	got := mapDomainError(err)
	if got.HTTPStatus != http.StatusUnprocessableEntity || got.Code != "INSUFFICIENT_STOCK" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	body := got.ToHTTPError()
	if body.Details["available"] != 1 || body.Details["requested"] != 3 || body.Details["item_id"] != "p1" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
	if errInsufficientStock.Details != nil {
		t.Fatalf("shared error must not be mutated")
	}
}
