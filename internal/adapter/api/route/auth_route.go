package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authMw gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Usa o token de renovação no corpo, sem cabeçalho Authorization
		authRouter.POST("/refresh", authController.RefreshToken)

		authRouter.GET("/me", authMw, authController.Me)
	}
}
