package handlers

import (
	"errors"
	"net/http"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInsufficientStock = pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock", http.StatusUnprocessableEntity)
)

// mapDomainError covers the error taxonomy shared by every use case. The
// per-resource mappers handle their own sentinels first and fall back here.
func mapDomainError(err error) *pkg.AppError {
	var stockErr *entities.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return errInsufficientStock.WithDetails(map[string]interface{}{
			"item_id":   stockErr.ItemID,
			"name":      stockErr.Name,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOperationInProgress):
		return pkg.NewDomainErrorSimple("OPERATION_IN_PROGRESS", "Operation already in progress", http.StatusConflict)
	case errors.Is(err, entities.ErrValidation):
		return errInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()})
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrReadOnly):
		return pkg.NewDomainErrorSimple("READ_ONLY", "Resource is read-only", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Conflict", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON writes invalid on a malformed body and reports whether binding
// succeeded.
func bindJSON(c *gin.Context, dst interface{}, invalid *pkg.AppError) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, invalid.WithDetails(map[string]interface{}{"reason": err.Error()}))
		return false
	}
	return true
}
