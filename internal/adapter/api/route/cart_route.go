package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
)

// SetupCartRoutes configura as rotas do carrinho do usuário autenticado
func SetupCartRoutes(router *gin.RouterGroup, cartController *controller.CartController, authMw gin.HandlerFunc) {
	cartRouter := router.Group("/cart")
	cartRouter.Use(authMw)
	{
		cartRouter.GET("", cartController.Get)
		cartRouter.DELETE("/clear", cartController.Clear)

		cartRouter.GET("/items", cartController.ListItems)
		cartRouter.POST("/items", cartController.AddItem)
		cartRouter.GET("/items/:id", cartController.GetItem)
		cartRouter.PUT("/items/:id", cartController.UpdateItem)
		cartRouter.PATCH("/items/:id", cartController.UpdateItem)
		cartRouter.DELETE("/items/:id", cartController.RemoveItem)
	}
}
