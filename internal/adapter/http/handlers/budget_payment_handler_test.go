package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bahia_gestao/internal/adapter/http/handlers/mocks"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBudgetPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IBudgetPaymentUseCase, mockMode bool) *gin.Engine {
		h := NewBudgetPaymentHandler(uc, mockMode)
		r := gin.New()
		r.POST("/v1/budgets/:id/payments", h.CreatePayment)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/bud-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "bud-1", json.RawMessage("{}")).Return(entities.BudgetPayment{ID: "pay-1", BudgetID: "bud-1", Status: entities.PaymentStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/bud-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc, true).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "bud-1", gomock.Any()).Return(entities.BudgetPayment{}, usecase.ErrBudgetNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/bud-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "bud-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.BudgetPayment{ID: "pay-1", BudgetID: "bud-1", Amount: 450, Date: now, Status: entities.PaymentStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/bud-1/payments", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		build(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != 450.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetPaymentHandler_GetLatestPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IBudgetPaymentUseCase) *gin.Engine {
		h := NewBudgetPaymentHandler(uc, false)
		r := gin.New()
		r.GET("/v1/budgets/:id/payments", h.GetLatestPayment)
		return r
	}

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		uc.EXPECT().Latest(gomock.Any(), "bud-1").Return(entities.BudgetPayment{}, usecase.ErrInvalidPaymentBudgetID)

		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/bud-1/payments", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		uc.EXPECT().Latest(gomock.Any(), "bud-1").Return(entities.BudgetPayment{}, usecase.ErrBudgetPaymentNotFound)

		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/bud-1/payments", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		uc.EXPECT().Latest(gomock.Any(), "bud-1").Return(entities.BudgetPayment{ID: "latest", BudgetID: "bud-1", Date: time.Now(), Status: entities.PaymentStatusAprovado}, nil)

		w := httptest.NewRecorder()
		build(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/bud-1/payments", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestBudgetPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
	h := NewBudgetPaymentHandler(uc, false)

	r := gin.New()
	r.GET("/v1/budgets/:id/payments/history", h.ListPayments)

	uc.EXPECT().ListByBudgetID(gomock.Any(), "bud-1").Return([]entities.BudgetPayment{{ID: "a"}, {ID: "b"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/bud-1/payments/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "a" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapBudgetPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentBudgetID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrBudgetNotFound, http.StatusNotFound},
		{usecase.ErrBudgetNotApproved, http.StatusConflict},
		{usecase.ErrBudgetPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapBudgetPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
