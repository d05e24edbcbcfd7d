package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	catalogService *service.CatalogService
	log            logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(catalogService *service.CatalogService, log logger.Logger) *CategoryController {
	return &CategoryController{catalogService: catalogService, log: log}
}

// List lista as categorias
// @Summary Lista as categorias
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.catalogService.ListCategories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// GetByID busca uma categoria pelo ID
// @Summary Busca uma categoria pelo ID
// @Tags categories
// @Produce json
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetByID(ctx *gin.Context) {
	category, err := c.catalogService.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Create cria uma categoria
// @Summary Cria uma categoria
// @Description O slug é gerado a partir do nome quando omitido
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	category, err := c.catalogService.CreateCategory(ctx.Request.Context(), request.Name, request.Slug)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// Update atualiza uma categoria
// @Summary Atualiza uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	category, err := c.catalogService.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), request.Name, request.Slug)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete remove uma categoria
// @Summary Remove uma categoria
// @Tags categories
// @Security Bearer
// @Param id path string true "ID da categoria"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.catalogService.DeleteCategory(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	catalogService *service.CatalogService
	log            logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalogService *service.CatalogService, log logger.Logger) *ProductController {
	return &ProductController{catalogService: catalogService, log: log}
}

// List lista os produtos ativos
// @Summary Lista os produtos ativos
// @Description Filtra por texto, categoria e faixa de preço
// @Tags products
// @Produce json
// @Param search query string false "Busca em nome e descrição"
// @Param category query string false "ID da categoria"
// @Param min_price query string false "Preço mínimo"
// @Param max_price query string false "Preço máximo"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	verr := &validation.Error{}
	minPrice := optionalDecimal(ctx, "min_price", verr)
	maxPrice := optionalDecimal(ctx, "max_price", verr)
	if !verr.Empty() {
		respondError(ctx, c.log, verr)
		return
	}

	pg := pagination(ctx)
	products, err := c.catalogService.ListProducts(ctx.Request.Context(), catalog.ProductFilter{
		Search:     ctx.Query("search"),
		CategoryID: ctx.Query("category"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		OnlyActive: true,
		Limit:      pg.PageSize,
		Offset:     pg.Offset(),
	})
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// GetByID busca um produto ativo pelo ID
// @Summary Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	product, err := c.catalogService.GetProduct(ctx.Request.Context(), ctx.Param("id"), true)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Create cria um produto
// @Summary Cria um produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	product, err := c.catalogService.CreateProduct(ctx.Request.Context(), toProductInput(request))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Description Campos ausentes mantêm o valor atual. Alterar o estoque ajusta os contadores de entrada e saída.
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	product, err := c.catalogService.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), toProductInput(request))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Restock registra a entrada de mercadoria
// @Summary Registra entrada de estoque
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param restock body dto.RestockRequest true "Quantidade"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/restock [post]
func (c *ProductController) Restock(ctx *gin.Context) {
	var request dto.RestockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	product, err := c.catalogService.RestockProduct(ctx.Request.Context(), ctx.Param("id"), request.Quantity)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete remove um produto
// @Summary Remove um produto
// @Description Produtos presentes em carrinhos ou pedidos não podem ser removidos
// @Tags products
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.catalogService.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func toProductInput(r dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		CostPrice:   r.CostPrice,
		Description: r.Description,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
		CategoryID:  r.Category,
		Image:       r.Image,
	}
}
