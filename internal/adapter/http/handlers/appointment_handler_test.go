package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"bahia_gestao/internal/adapter/http/handlers/mocks"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/schedule"
	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAppointmentRouter(h *AppointmentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/appointments", h.ListAppointments)
	r.GET("/v1/appointments/upcoming", h.UpcomingAppointments)
	r.GET("/v1/appointments/calendar", h.AppointmentCalendar)
	r.GET("/v1/appointments/export.csv", h.ExportAppointmentsCSV)
	r.GET("/v1/appointments/export.pdf", h.ExportAppointmentsPDF)
	r.GET("/v1/appointments/:id", h.GetAppointment)
	r.POST("/v1/appointments", h.CreateAppointment)
	r.PUT("/v1/appointments/:id", h.UpdateAppointment)
	r.PATCH("/v1/appointments/:id/status", h.UpdateAppointmentStatus)
	r.DELETE("/v1/appointments/:id", h.DeleteAppointment)
	return r
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)

	want := schedule.Filter{Search: "ana", Status: "pending", Responsible: "João"}
	uc.EXPECT().List(gomock.Any(), want).Return([]entities.Appointment{{ID: "a1"}}, nil)

	w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodGet, "/v1/appointments?search=ana&status=pending&responsible=Jo%C3%A3o", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "a1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAppointmentHandler_Upcoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)

	uc.EXPECT().Upcoming(gomock.Any(), 5).Return([]entities.Appointment{}, nil)

	r := newAppointmentRouter(NewAppointmentHandler(uc, time.UTC))
	if w := performRequest(r, http.MethodGet, "/v1/appointments/upcoming?limit=5", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodGet, "/v1/appointments/upcoming?limit=many", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAppointmentHandler_Calendar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().Calendar(gomock.Any(), "2024-05", schedule.Filter{}).Return(schedule.CalendarMonth{}, nil)

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodGet, "/v1/appointments/calendar?month=2024-05", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().Calendar(gomock.Any(), "May", schedule.Filter{}).Return(schedule.CalendarMonth{}, entities.ValidationError("month", "must be YYYY-MM"))

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodGet, "/v1/appointments/calendar?month=May", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_ExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)

	uc.EXPECT().ExportCSV(gomock.Any(), schedule.Filter{Status: "completed"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ schedule.Filter, w io.Writer) error {
			_, err := io.WriteString(w, "\"Título\"\n")
			return err
		})

	h := NewAppointmentHandler(uc, time.UTC)
	h.now = func() time.Time { return time.Date(2024, 5, 2, 23, 0, 0, 0, time.UTC) }

	w := performRequest(newAppointmentRouter(h), http.MethodGet, "/v1/appointments/export.csv?status=completed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="agendamentos_2024-05-02.csv"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if w.Body.String() != "\"Título\"\n" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestAppointmentHandler_ExportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("same filters as csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().ExportPDF(gomock.Any(), schedule.Filter{Status: "pending", Responsible: "Carlos"}).Return([]byte("%PDF-1.3"), nil)

		h := NewAppointmentHandler(uc, time.UTC)
		h.now = func() time.Time { return time.Date(2024, 5, 2, 23, 0, 0, 0, time.UTC) }

		w := performRequest(newAppointmentRouter(h), http.MethodGet, "/v1/appointments/export.pdf?status=pending&responsible=Carlos", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="agendamentos_2024-05-02.pdf"` {
			t.Fatalf("unexpected content disposition %q", cd)
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().ExportPDF(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodGet, "/v1/appointments/export.pdf", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_CreateAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodPost, "/v1/appointments", `{"title":"Visita","date":"2024-05-02"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), entities.Appointment{Title: "Visita", Date: "2024-05-02", Time: "09:00", CustomerID: "c1"}).
			Return(entities.Appointment{ID: "a1", Title: "Visita", CustomerName: "Maria", Status: entities.AppointmentStatusPending}, nil)

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodPost, "/v1/appointments", `{"title":"Visita","date":"2024-05-02","time":"09:00","customer_id":"c1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("rejected transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "a1", entities.AppointmentStatusCompleted).Return(entities.Appointment{}, usecase.ErrInvalidAppointmentTransition)

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodPatch, "/v1/appointments/a1/status", `{"status":"completed"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "a9").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		w := performRequest(newAppointmentRouter(NewAppointmentHandler(uc, time.UTC)), http.MethodGet, "/v1/appointments/a9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
