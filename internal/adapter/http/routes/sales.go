package routes

import (
	"bahia_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCarts     = "/carts"
	PathBudgets   = "/budgets"
	PathPayments  = "/payments"
	PathCustomers = "/customers"
	PathOrders    = "/orders"
)

func addSalesRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	budgetHandler *handlers.BudgetHandler,
	paymentHandler *handlers.BudgetPaymentHandler,
	customerHandler *handlers.CustomerHandler,
) {
	carts := rg.Group(PathCarts)
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:id", cartHandler.GetCart)
		carts.DELETE("/:id", cartHandler.DiscardCart)
		carts.POST("/:id/items", cartHandler.AddItem)
		carts.DELETE("/:id/items/:index", cartHandler.RemoveItem)
		carts.POST("/:id/checkout", cartHandler.Checkout)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.POST("/:id/send", budgetHandler.SendBudget)
		budgets.POST("/:id/approve", budgetHandler.ApproveBudget)
		budgets.POST("/:id/reject", budgetHandler.RejectBudget)
		budgets.POST("/:id/convert", budgetHandler.ConvertBudget)
		budgets.GET("/:id/pdf", budgetHandler.ExportBudgetPDF)

		budgets.POST("/:id/payments", paymentHandler.CreatePayment)
		budgets.GET("/:id/payments", paymentHandler.GetLatestPayment)
		budgets.GET("/:id/payments/history", paymentHandler.ListPayments)
	}

	rg.GET(PathPayments+"/:id", paymentHandler.GetPayment)

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	orders := rg.Group(PathOrders)
	{
		orders.PATCH("/:id/status", customerHandler.UpdateOrderStatus)
		orders.DELETE("/:id", customerHandler.DeleteOrder)
	}
}
