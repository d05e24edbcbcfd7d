package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-api/pkg/auth"
)

// SetupCategoryRoutes configura as rotas de categorias. Leitura pública, escrita restrita à equipe.
func SetupCategoryRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController, authMw gin.HandlerFunc) {
	categoryRouter := router.Group("/categories")
	{
		categoryRouter.GET("", categoryController.List)
		categoryRouter.GET("/:id", categoryController.GetByID)

		admin := categoryRouter.Group("", authMw, auth.AdminOnlyMiddleware())
		admin.POST("", categoryController.Create)
		admin.PUT("/:id", categoryController.Update)
		admin.DELETE("/:id", categoryController.Delete)
	}
}

// SetupProductRoutes configura as rotas de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController, authMw gin.HandlerFunc) {
	productRouter := router.Group("/products")
	{
		// Somente produtos ativos
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.GetByID)

		admin := productRouter.Group("", authMw, auth.AdminOnlyMiddleware())
		admin.POST("", productController.Create)
		admin.PUT("/:id", productController.Update)
		admin.DELETE("/:id", productController.Delete)
		admin.POST("/:id/restock", productController.Restock)
	}
}
