package handlers

import (
	"net/http"

	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary Business KPIs
// @Description Stock value, margins, revenue, expenses, appointment KPIs and the monthly series.
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dashboard.Summary
// @Failure 500 {object} pkg.HTTPError
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}
