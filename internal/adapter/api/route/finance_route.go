package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-api/pkg/auth"
)

// SetupFinanceRoutes configura o painel financeiro e o cadastro de despesas, ambos restritos à equipe
func SetupFinanceRoutes(
	router *gin.RouterGroup,
	financeController *controller.FinanceController,
	expenseController *controller.ExpenseController,
	authMw gin.HandlerFunc,
) {
	adminOnly := auth.AdminOnlyMiddleware()

	financeRouter := router.Group("/finance", authMw, adminOnly)
	{
		financeRouter.GET("/overview", financeController.Overview)
	}

	expenseRouter := router.Group("/expenses", authMw, adminOnly)
	{
		expenseRouter.GET("", expenseController.List)
		expenseRouter.POST("", expenseController.Create)
		expenseRouter.GET("/:id", expenseController.GetByID)
		expenseRouter.PUT("/:id", expenseController.Update)
		expenseRouter.PATCH("/:id", expenseController.Update)
		expenseRouter.DELETE("/:id", expenseController.Delete)
	}
}
