package handlers

import (
	"errors"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if !bindJSON(c, &payload, errInvalidServicePayload) {
		return
	}
	svc, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService records a price change in the service's price history.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if !bindJSON(c, &payload, errInvalidServicePayload) {
		return
	}
	svc, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SimulateServicePrice godoc
// @Summary Simulate a service price for a target margin
// @Tags services
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Service ID"
// @Param simulation body request.PriceSimulationRequest true "Scenario"
// @Success 200 {object} usecase.PriceSimulationResult
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /services/{id}/simulate-price [post]
func (h *ServiceHandler) SimulateServicePrice(c *gin.Context) {
	var payload request.PriceSimulationRequest
	if !bindJSON(c, &payload, errInvalidServicePayload) {
		return
	}
	res, err := h.usecase.SimulatePrice(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapServiceError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrServiceNotFound) {
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	}
	return mapDomainError(err)
}
