package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/schedule"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
	errInvalidAppointmentQuery   = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_QUERY", "Invalid appointment query", http.StatusBadRequest)
)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
	loc     *time.Location
	now     func() time.Time
}

// NewAppointmentHandler; loc dates the export file names.
func NewAppointmentHandler(uc usecase.IAppointmentUseCase, loc *time.Location) *AppointmentHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentHandler{usecase: uc, loc: loc, now: time.Now}
}

func (h *AppointmentHandler) bindQuery(c *gin.Context) (request.AppointmentQuery, bool) {
	var query request.AppointmentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidAppointmentQuery)
		return query, false
	}
	return query, true
}

// ListAppointments godoc
// @Summary List appointments sorted by date and time
// @Tags appointments
// @Produce json
// @Security Bearer
// @Param search query string false "Matches title or customer name"
// @Param status query string false "pending, in_progress, completed, canceled or all"
// @Param responsible query string false "Substring of the responsible person"
// @Success 200 {array} entities.Appointment
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}
	apps, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *AppointmentHandler) UpcomingAppointments(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}
	apps, err := h.usecase.Upcoming(c.Request.Context(), query.Limit)
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, apps)
}

// AppointmentCalendar godoc
// @Summary Month calendar with appointments grouped by day
// @Tags appointments
// @Produce json
// @Security Bearer
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} schedule.CalendarMonth
// @Failure 400 {object} pkg.HTTPError
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) AppointmentCalendar(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}
	month, err := h.usecase.Calendar(c.Request.Context(), query.Month, query.ToFilter())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, month)
}

// ExportAppointmentsCSV writes the filtered list as a download.
func (h *AppointmentHandler) ExportAppointmentsCSV(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.usecase.ExportCSV(c.Request.Context(), query.ToFilter(), &buf); err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	name := schedule.ExportFileName(h.now().In(h.loc))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportAppointmentsPDF godoc
// @Summary Printable report of the filtered appointments
// @Tags appointments
// @Produce application/pdf
// @Security Bearer
// @Param search query string false "Matches title or customer name"
// @Param status query string false "pending, in_progress, completed, canceled or all"
// @Param responsible query string false "Substring of the responsible person"
// @Success 200 {file} file
// @Failure 400 {object} pkg.HTTPError
// @Router /appointments/export.pdf [get]
func (h *AppointmentHandler) ExportAppointmentsPDF(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}
	doc, err := h.usecase.ExportPDF(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	name := schedule.ReportFileName(h.now().In(h.loc))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if !bindJSON(c, &payload, errInvalidAppointmentPayload) {
		return
	}
	a, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if !bindJSON(c, &payload, errInvalidAppointmentPayload) {
		return
	}
	a, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var payload request.AppointmentStatusRequest
	if !bindJSON(c, &payload, errInvalidAppointmentPayload) {
		return
	}
	a, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.AppointmentStatus(payload.Status))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAppointmentTransition):
		return pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_TRANSITION", "Invalid appointment status transition", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
