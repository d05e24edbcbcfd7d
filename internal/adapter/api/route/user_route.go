package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController, authMw gin.HandlerFunc) {
	userRouter := router.Group("/users")
	{
		// Cadastro aberto
		userRouter.POST("", userController.Create)

		// Usuários comuns só enxergam o próprio registro
		userRouter.GET("", authMw, userController.List)
		userRouter.GET("/:id", authMw, userController.GetByID)
		userRouter.PUT("/:id", authMw, userController.Update)
		userRouter.PATCH("/:id", authMw, userController.Update)
	}
}
