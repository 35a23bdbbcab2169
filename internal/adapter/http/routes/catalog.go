package routes

import (
	"bahia_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathServices = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, serviceHandler *handlers.ServiceHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.POST("/:id/simulate-price", productHandler.SimulateProductPrice)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.POST("/:id/simulate-price", serviceHandler.SimulateServicePrice)
	}
}
