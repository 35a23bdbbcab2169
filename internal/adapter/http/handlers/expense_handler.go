package handlers

import (
	"errors"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload, errInvalidExpensePayload) {
		return
	}
	expense, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapExpenseError(err))
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload, errInvalidExpensePayload) {
		return
	}
	expense, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapExpenseError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapExpenseError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrExpenseNotFound) {
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	}
	return mapDomainError(err)
}
