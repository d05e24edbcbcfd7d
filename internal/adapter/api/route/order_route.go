package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-api/pkg/auth"
)

// SetupOrderRoutes configura as rotas de pedidos
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController, authMw gin.HandlerFunc) {
	orderRouter := router.Group("/orders")
	orderRouter.Use(authMw)
	{
		orderRouter.GET("", orderController.List)
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("/:id", orderController.GetByID)

		orderRouter.PATCH("/:id/status", auth.AdminOnlyMiddleware(), orderController.UpdateStatus)
	}
}
