package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"bahia_gestao/internal/adapter/http/handlers/mocks"
	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProductHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IProductUseCase) *gin.Engine {
		h := NewProductHandler(uc)
		r := gin.New()
		r.GET("/v1/products", h.ListProducts)
		r.GET("/v1/products/:id", h.GetProduct)
		r.POST("/v1/products", h.CreateProduct)
		r.PUT("/v1/products/:id", h.UpdateProduct)
		r.DELETE("/v1/products/:id", h.DeleteProduct)
		r.POST("/v1/products/:id/simulate-price", h.SimulateProductPrice)
		return r
	}

	t.Run("negative stock rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)

		w := performRequest(build(uc), http.MethodPost, "/v1/products", `{"name":"Cabo","stock":-1,"price":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), entities.Product{Name: "Cabo", Stock: 10, MinStock: 2, Cost: 5, Price: 10}).
			Return(entities.Product{ID: "p1", Name: "Cabo", Stock: 10, MinStock: 2, Cost: 5, Price: 10}, nil)

		w := performRequest(build(uc), http.MethodPost, "/v1/products", `{"name":"Cabo","stock":10,"min_stock":2,"cost":5,"price":10}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrProductNotFound)

		w := performRequest(build(uc), http.MethodPut, "/v1/products/p9", `{"name":"Cabo","price":10}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, entities.NewPersistenceError("product.list", errors.New("dynamo down")))

		w := performRequest(build(uc), http.MethodGet, "/v1/products", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("get and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		uc.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		r := build(uc)
		if w := performRequest(r, http.MethodGet, "/v1/products/p1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := performRequest(r, http.MethodDelete, "/v1/products/p1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestServiceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IServiceUseCase) *gin.Engine {
		h := NewServiceHandler(uc)
		r := gin.New()
		r.GET("/v1/services", h.ListServices)
		r.GET("/v1/services/:id", h.GetService)
		r.POST("/v1/services", h.CreateService)
		r.PUT("/v1/services/:id", h.UpdateService)
		r.DELETE("/v1/services/:id", h.DeleteService)
		r.POST("/v1/services/:id/simulate-price", h.SimulateServicePrice)
		return r
	}

	t.Run("update keeps explicit inactive flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), entities.Service{ID: "s1", Name: "Instalação", Price: 120, Active: false}).
			Return(entities.Service{ID: "s1", Name: "Instalação", Price: 120}, nil)

		w := performRequest(build(uc), http.MethodPut, "/v1/services/s1", `{"name":"Instalação","price":120,"active":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create defaults to active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), entities.Service{Name: "Manutenção", Price: 80, Active: true}).
			Return(entities.Service{ID: "s2", Name: "Manutenção", Price: 80, Active: true}, nil)

		w := performRequest(build(uc), http.MethodPost, "/v1/services", `{"name":"Manutenção","price":80}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "s9").Return(entities.Service{}, usecase.ErrServiceNotFound)
		uc.EXPECT().Delete(gomock.Any(), "s9").Return(usecase.ErrServiceNotFound)

		r := build(uc)
		if w := performRequest(r, http.MethodGet, "/v1/services/s9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := performRequest(r, http.MethodDelete, "/v1/services/s9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SimulatePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("product defaults margin to 40", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().SimulatePrice(gomock.Any(), "p1", usecase.PriceSimulationInput{
			SimulationInput: pricing.SimulationInput{TargetMargin: 40, CostIncrease: 10},
		}).Return(usecase.PriceSimulationResult{
			Simulation: pricing.Simulation{SimulatedCost: 66, SimulatedPrice: 110, ProfitPerUnit: 44},
			ItemID:     "p1",
		}, nil)

		h := NewProductHandler(uc)
		r := gin.New()
		r.POST("/v1/products/:id/simulate-price", h.SimulateProductPrice)

		w := performRequest(r, http.MethodPost, "/v1/products/p1/simulate-price", `{"cost_increase":10}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["simulated_price"] != float64(110) || body["applied"] != false || body["item_id"] != "p1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("service apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().SimulatePrice(gomock.Any(), "s1", usecase.PriceSimulationInput{
			SimulationInput: pricing.SimulationInput{TargetMargin: 25},
			Apply:           true,
		}).Return(usecase.PriceSimulationResult{ItemID: "s1", Applied: true}, nil)

		h := NewServiceHandler(uc)
		r := gin.New()
		r.POST("/v1/services/:id/simulate-price", h.SimulateServicePrice)

		w := performRequest(r, http.MethodPost, "/v1/services/s1/simulate-price", `{"target_margin":25,"apply":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cost drop below -100 rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceHandler(mocks.NewMockIServiceUseCase(ctrl))
		r := gin.New()
		r.POST("/v1/services/:id/simulate-price", h.SimulateServicePrice)

		w := performRequest(r, http.MethodPost, "/v1/services/s1/simulate-price", `{"cost_increase":-150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().SimulatePrice(gomock.Any(), "p9", gomock.Any()).Return(usecase.PriceSimulationResult{}, usecase.ErrProductNotFound)

		h := NewProductHandler(uc)
		r := gin.New()
		r.POST("/v1/products/:id/simulate-price", h.SimulateProductPrice)

		w := performRequest(r, http.MethodPost, "/v1/products/p9/simulate-price", `{}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
