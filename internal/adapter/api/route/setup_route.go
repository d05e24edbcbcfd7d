package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
)

// Controllers agrupa os controllers registrados na API
type Controllers struct {
	Health   *controller.HealthController
	Auth     *controller.AuthController
	User     *controller.UserController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Cart     *controller.CartController
	Order    *controller.OrderController
	Expense  *controller.ExpenseController
	Finance  *controller.FinanceController
}

// SetupRoutes registra todas as rotas da API no grupo informado
func SetupRoutes(router *gin.RouterGroup, c Controllers, authMw gin.HandlerFunc) {
	router.GET("/health", c.Health.Check)

	SetupAuthRoutes(router, c.Auth, authMw)
	SetupUserRoutes(router, c.User, authMw)
	SetupCategoryRoutes(router, c.Category, authMw)
	SetupProductRoutes(router, c.Product, authMw)
	SetupCartRoutes(router, c.Cart, authMw)
	SetupOrderRoutes(router, c.Order, authMw)
	SetupFinanceRoutes(router, c.Finance, c.Expense, authMw)
}
