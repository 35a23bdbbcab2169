package handlers

import (
	"errors"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security Bearer
// @Success 200 {array} entities.Product
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body request.ProductRequest true "Product"
// @Success 201 {object} entities.Product
// @Failure 400 {object} pkg.HTTPError
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if !bindJSON(c, &payload, errInvalidProductPayload) {
		return
	}
	product, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct never changes stock; stock moves only through orders.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if !bindJSON(c, &payload, errInvalidProductPayload) {
		return
	}
	product, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SimulateProductPrice godoc
// @Summary Simulate a product price for a target margin
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Product ID"
// @Param simulation body request.PriceSimulationRequest true "Scenario"
// @Success 200 {object} usecase.PriceSimulationResult
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /products/{id}/simulate-price [post]
func (h *ProductHandler) SimulateProductPrice(c *gin.Context) {
	var payload request.PriceSimulationRequest
	if !bindJSON(c, &payload, errInvalidProductPayload) {
		return
	}
	res, err := h.usecase.SimulatePrice(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapProductError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrProductNotFound) {
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	}
	return mapDomainError(err)
}
