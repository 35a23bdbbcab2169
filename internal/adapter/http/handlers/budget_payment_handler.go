package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "bahia_gestao/internal/adapter/http/dto/response"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetPaymentHandler handles HTTP requests for budget payments.
type BudgetPaymentHandler struct {
	usecase  usecase.IBudgetPaymentUseCase
	mockMode bool
}

// NewBudgetPaymentHandler; with mockMode an unreadable body falls back to an
// empty payload instead of failing.
func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase, mockMode bool) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary Pay an approved budget through Mercado Pago
// @Description The amount is the budget total. An approved payment converts the budget.
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Budget ID"
// @Param payment body request.BudgetPaymentCreateRequest false "Mercado Pago payload"
// @Success 200 {object} response.BudgetPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /budgets/{id}/payments [post]
func (h *BudgetPaymentHandler) CreatePayment(c *gin.Context) {
	budgetID := c.Param("id")
	log.Printf("[payment][handler] create start budget_id=%s", budgetID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload budget_id=%s err=%v", budgetID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload budget_id=%s err=%v", budgetID, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed budget_id=%s err=%v", budgetID, err)
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success budget_id=%s payment_id=%s status=%s", budgetID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBudgetPayment(created))
}

// GetLatestPayment godoc
// @Summary Latest payment of a budget
// @Tags payments
// @Produce json
// @Security Bearer
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{id}/payments [get]
func (h *BudgetPaymentHandler) GetLatestPayment(c *gin.Context) {
	budgetID := c.Param("id")
	log.Printf("[payment][handler] get-by-budget start budget_id=%s", budgetID)

	latest, err := h.usecase.Latest(c.Request.Context(), budgetID)
	if err != nil {
		log.Printf("[payment][handler] get-by-budget failed budget_id=%s err=%v", budgetID, err)
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	log.Printf("[payment][handler] get-by-budget success budget_id=%s payment_id=%s status=%s", budgetID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromBudgetPayment(latest))
}

// ListPayments returns every attempt for a budget, oldest first.
func (h *BudgetPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	out := make([]response.BudgetPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromBudgetPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BudgetPaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetPayment(payment))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
