package handlers

import (
	"errors"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	errInvalidOrderPayload    = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// CustomerHandler serves customers and the orders attached to them.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer godoc
// @Summary Get a customer with its orders, newest first
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "Customer ID"
// @Success 200 {object} entities.Customer
// @Failure 404 {object} pkg.HTTPError
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if !bindJSON(c, &payload, errInvalidCustomerPayload) {
		return
	}
	customer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if !bindJSON(c, &payload, errInvalidCustomerPayload) {
		return
	}
	customer, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if !bindJSON(c, &payload, errInvalidOrderPayload) {
		return
	}
	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CustomerHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
