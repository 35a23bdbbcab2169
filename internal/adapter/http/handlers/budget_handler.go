package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"bahia_gestao/internal/adapter/export"
	request "bahia_gestao/internal/adapter/http/dto/request"
	response "bahia_gestao/internal/adapter/http/dto/response"
	"bahia_gestao/internal/adapter/http/middleware"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for the budget lifecycle.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// ListBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Security Bearer
// @Success 200 {array} response.BudgetResponse
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// CreateBudget godoc
// @Summary Create a draft budget
// @Description Items are catalog references snapshotted at the current price.
// @Tags budgets
// @Accept json
// @Produce json
// @Security Bearer
// @Param budget body request.BudgetRequest true "Budget"
// @Success 201 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if !bindJSON(c, &payload, errInvalidBudgetPayload) {
		return
	}
	budget, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// UpdateBudget rejects approved and converted budgets with 409.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if !bindJSON(c, &payload, errInvalidBudgetPayload) {
		return
	}
	budget, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.transition(c, "send", h.usecase.Send)
}

// ApproveBudget godoc
// @Summary Approve a budget
// @Description Creates the order, decrements stock and links the customer in one commit. Approving an approved budget is a no-op.
// @Tags budgets
// @Produce json
// @Security Bearer
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /budgets/{id}/approve [post]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.transition(c, "approve", h.usecase.Approve)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

func (h *BudgetHandler) ConvertBudget(c *gin.Context) {
	h.transition(c, "convert", h.usecase.Convert)
}

func (h *BudgetHandler) transition(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, id string) (entities.Budget, error),
) {
	budgetID := c.Param("id")
	log.Printf("[budget][handler] %s start budget_id=%s", action, budgetID)

	budget, err := apply(c.Request.Context(), budgetID)
	if err != nil {
		log.Printf("[budget][handler] %s failed budget_id=%s err=%v", action, budgetID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	log.Printf("[budget][handler] %s success budget_id=%s status=%s", action, budget.ID, budget.Status)
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ExportBudgetPDF godoc
// @Summary Download the budget as a PDF quote
// @Tags budgets
// @Produce application/pdf
// @Security Bearer
// @Param id path string true "Budget ID"
// @Success 200 {file} binary
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{id}/pdf [get]
func (h *BudgetHandler) ExportBudgetPDF(c *gin.Context) {
	budgetID := c.Param("id")
	claims, _ := middleware.ClaimsFromContext(c)

	doc, err := h.usecase.RenderPDF(c.Request.Context(), budgetID, claims.UserID)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ProposalFileName(budgetID)))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetReadOnly):
		return pkg.NewDomainErrorSimple("BUDGET_READ_ONLY", "Approved or converted budgets cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidBudgetTransition):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_TRANSITION", "Invalid budget status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetWithoutItems):
		return pkg.NewDomainErrorSimple("BUDGET_WITHOUT_ITEMS", "Budget needs at least one item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceInactive):
		return pkg.NewDomainErrorSimple("SERVICE_INACTIVE", "Service is not active", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
