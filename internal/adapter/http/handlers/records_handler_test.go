package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"bahia_gestao/internal/adapter/http/handlers/mocks"
	"bahia_gestao/internal/domain/dashboard"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)

	h := NewCustomerHandler(uc)
	r := gin.New()
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/customers/:id", h.GetCustomer)
	r.POST("/v1/customers", h.CreateCustomer)
	r.PUT("/v1/customers/:id", h.UpdateCustomer)
	r.DELETE("/v1/customers/:id", h.DeleteCustomer)
	r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)

	uc.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{
		ID:     "c1",
		Name:   "Maria",
		Orders: []entities.Order{{ID: "o2", Date: "2024-05-02"}, {ID: "o1", Date: "2024-04-01"}},
	}, nil)
	w := performRequest(r, http.MethodGet, "/v1/customers/c1", "")
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	orders, _ := body["orders"].([]any)
	if w.Code != http.StatusOK || len(orders) != 2 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	if w := performRequest(r, http.MethodPost, "/v1/customers", `{"email":"x@y.com"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without name, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), entities.Customer{Name: "Maria", Phone: "71 9999-0000"}).Return(entities.Customer{ID: "c2", Name: "Maria"}, nil)
	if w := performRequest(r, http.MethodPost, "/v1/customers", `{"name":" Maria ","phone":"71 9999-0000"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	if w := performRequest(r, http.MethodPatch, "/v1/orders/o1/status", `{"status":"shipped"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}

	uc.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", entities.OrderStatusCompleted).Return(entities.Order{}, usecase.ErrOrderNotFound)
	if w := performRequest(r, http.MethodPatch, "/v1/orders/o1/status", `{"status":"completed"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().DeleteOrder(gomock.Any(), "o1").Return(nil)
	if w := performRequest(r, http.MethodDelete, "/v1/orders/o1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestKanbanHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIKanbanUseCase(ctrl)

	h := NewKanbanHandler(uc)
	r := gin.New()
	r.GET("/v1/kanban/columns", h.ListColumns)
	r.POST("/v1/kanban/columns", h.CreateColumn)
	r.DELETE("/v1/kanban/columns/:id", h.DeleteColumn)
	r.POST("/v1/projects", h.CreateProject)
	r.PATCH("/v1/projects/:id/move", h.MoveProject)

	uc.EXPECT().DeleteColumn(gomock.Any(), "todo").Return(usecase.ErrColumnInUse)
	if w := performRequest(r, http.MethodDelete, "/v1/kanban/columns/todo", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().CreateColumn(gomock.Any(), entities.KanbanColumn{Title: "Backlog", Color: "#ccc"}).Return(entities.KanbanColumn{ID: "k1", Title: "Backlog", Color: "#ccc"}, nil)
	if w := performRequest(r, http.MethodPost, "/v1/kanban/columns", `{"title":"Backlog","color":"#ccc"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrUnknownColumn)
	if w := performRequest(r, http.MethodPost, "/v1/projects", `{"title":"Quadro","status":"nope","priority":"high"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().MoveProject(gomock.Any(), "pr1", "done").Return(entities.Project{ID: "pr1", Status: "done"}, nil)
	w := performRequest(r, http.MethodPatch, "/v1/projects/pr1/move", `{"status":"done"}`)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["status"] != "done" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestExpenseHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExpenseUseCase(ctrl)

	h := NewExpenseHandler(uc)
	r := gin.New()
	r.POST("/v1/expenses", h.CreateExpense)
	r.GET("/v1/expenses/:id", h.GetExpense)

	if w := performRequest(r, http.MethodPost, "/v1/expenses", `{"description":"Aluguel","amount":0,"date":"2024-05-02","category":"Fixas"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), entities.Expense{Description: "Aluguel", Amount: 1500, Date: "2024-05-02", Category: "Fixas"}).
		Return(entities.Expense{ID: "e1", Description: "Aluguel", Amount: 1500}, nil)
	if w := performRequest(r, http.MethodPost, "/v1/expenses", `{"description":"Aluguel","amount":1500,"date":"2024-05-02","category":"Fixas"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "e9").Return(entities.Expense{}, usecase.ErrExpenseNotFound)
	if w := performRequest(r, http.MethodGet, "/v1/expenses/e9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)

	uc.EXPECT().Summary(gomock.Any()).Return(dashboard.Summary{StockValue: 120, OrderCount: 3}, nil)

	r := gin.New()
	r.GET("/v1/dashboard", NewDashboardHandler(uc).GetDashboard)

	w := performRequest(r, http.MethodGet, "/v1/dashboard", "")
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["stock_value"] != 120.0 || body["order_count"] != 3.0 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
