package routes

import (
	"bahia_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathKanbanColumns = "/kanban/columns"
	PathProjects      = "/projects"
	PathExpenses      = "/expenses"
	PathDashboard     = "/dashboard"
)

func addKanbanRoutes(rg *gin.RouterGroup, kanbanHandler *handlers.KanbanHandler) {
	columns := rg.Group(PathKanbanColumns)
	{
		columns.GET("", kanbanHandler.ListColumns)
		columns.POST("", kanbanHandler.CreateColumn)
		columns.PUT("/:id", kanbanHandler.UpdateColumn)
		columns.DELETE("/:id", kanbanHandler.DeleteColumn)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", kanbanHandler.ListProjects)
		projects.POST("", kanbanHandler.CreateProject)
		projects.GET("/:id", kanbanHandler.GetProject)
		projects.PUT("/:id", kanbanHandler.UpdateProject)
		projects.PATCH("/:id/move", kanbanHandler.MoveProject)
		projects.DELETE("/:id", kanbanHandler.DeleteProject)
	}
}

func addExpenseRoutes(rg *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("/:id", expenseHandler.GetExpense)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
