package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "bahia_gestao/internal/adapter/http/dto/request"
	response "bahia_gestao/internal/adapter/http/dto/response"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload     = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CartHandler drives the order engine: carts are built item by item and
// checked out into an order.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// CreateCart godoc
// @Summary Open an empty cart
// @Tags carts
// @Accept json
// @Produce json
// @Security Bearer
// @Param cart body request.CreateCartRequest false "Cart"
// @Success 201 {object} response.CartResponse
// @Router /carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	var payload request.CreateCartRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload, errInvalidCartPayload) {
		return
	}
	cart, err := h.usecase.Create(c.Request.Context(), payload.CustomerID)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCart(cart, pricing.Adjustments{}))
}

// GetCart godoc
// @Summary Get a cart with totals
// @Tags carts
// @Produce json
// @Security Bearer
// @Param id path string true "Cart ID"
// @Param discount_value query number false "Absolute discount"
// @Param discount_percent query number false "Discount percent"
// @Param surcharge_value query number false "Absolute surcharge"
// @Param surcharge_percent query number false "Surcharge percent"
// @Success 200 {object} response.CartResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /carts/{id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	var query request.AdjustmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidCartPayload)
		return
	}
	cart, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, query.ToAdjustments()))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.ItemRequest
	if !bindJSON(c, &payload, errInvalidCartPayload) {
		return
	}
	cart, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToItemRef())
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, pricing.Adjustments{}))
}

// RemoveItem drops the line at :index. An index past the end is a no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, errInvalidCartPayload)
		return
	}
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, pricing.Adjustments{}))
}

// Checkout godoc
// @Summary Commit a cart into an order
// @Description Re-validates stock, persists the order and the stock decrements atomically.
// @Tags carts
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Cart ID"
// @Param checkout body request.CheckoutRequest false "Checkout"
// @Success 201 {object} entities.Order
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /carts/{id}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	cartID := c.Param("id")
	var payload request.CheckoutRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload, errInvalidCheckoutPayload) {
		return
	}
	log.Printf("[cart][handler] checkout start cart_id=%s", cartID)

	order, err := h.usecase.Checkout(c.Request.Context(), cartID, payload.ToCheckoutInput())
	if err != nil {
		log.Printf("[cart][handler] checkout failed cart_id=%s err=%v", cartID, err)
		writeError(c, mapCartError(err))
		return
	}
	log.Printf("[cart][handler] checkout success cart_id=%s order_id=%s total=%.2f", cartID, order.ID, order.TotalValue)
	c.JSON(http.StatusCreated, order)
}

func (h *CartHandler) DiscardCart(c *gin.Context) {
	cart, err := h.usecase.Discard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, pricing.Adjustments{}))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrCartClosed):
		return pkg.NewDomainErrorSimple("CART_CLOSED", "Cart is already committed or discarded", http.StatusConflict)
	case errors.Is(err, pricing.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Cart has no items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceInactive):
		return pkg.NewDomainErrorSimple("SERVICE_INACTIVE", "Service is not active", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
