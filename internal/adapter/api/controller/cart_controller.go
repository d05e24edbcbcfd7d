package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// CartController gerencia o carrinho do usuário autenticado
type CartController struct {
	cartService *service.CartService
	log         logger.Logger
}

// NewCartController cria uma nova instância de CartController
func NewCartController(cartService *service.CartService, log logger.Logger) *CartController {
	return &CartController{cartService: cartService, log: log}
}

// Get retorna o carrinho, criando-o quando necessário
// @Summary Retorna o carrinho do usuário
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /cart [get]
func (c *CartController) Get(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	crt, err := c.cartService.GetCart(ctx.Request.Context(), p)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// Clear remove todos os itens do carrinho
// @Summary Esvazia o carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CartResponse
// @Router /cart/clear [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	crt, err := c.cartService.Clear(ctx.Request.Context(), p)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// ListItems lista os itens do carrinho
// @Summary Lista os itens do carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CartItemResponse
// @Router /cart/items [get]
func (c *CartController) ListItems(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	items, err := c.cartService.ListItems(ctx.Request.Context(), p)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartItemListResponse(items))
}

// AddItem adiciona um produto ao carrinho
// @Summary Adiciona um produto ao carrinho
// @Description Se o produto já estiver no carrinho a quantidade é somada e a resposta é 200
// @Tags cart
// @Accept json
// @Produce json
// @Security Bearer
// @Param item body dto.CartItemCreateRequest true "Produto e quantidade"
// @Success 201 {object} dto.CartResponse
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /cart/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	var request dto.CartItemCreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	crt, created, err := c.cartService.AddItem(ctx.Request.Context(), p, request.Product, quantity)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToCartResponse(crt))
}

// GetItem busca um item do carrinho
// @Summary Busca um item do carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Success 200 {object} dto.CartItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{id} [get]
func (c *CartController) GetItem(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	item, err := c.cartService.GetItem(ctx.Request.Context(), p, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartItemResponse(item))
}

// UpdateItem altera a quantidade de um item
// @Summary Altera a quantidade de um item
// @Tags cart
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Param item body dto.CartItemUpdateRequest true "Quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{id} [put]
func (c *CartController) UpdateItem(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	var request dto.CartItemUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	if request.Quantity == nil {
		respondError(ctx, c.log, validation.New("quantity", "Este campo é obrigatório."))
		return
	}

	crt, err := c.cartService.UpdateItem(ctx.Request.Context(), p, ctx.Param("id"), *request.Quantity)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}

// RemoveItem remove um item do carrinho
// @Summary Remove um item do carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{id} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	crt, err := c.cartService.RemoveItem(ctx.Request.Context(), p, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(crt))
}
