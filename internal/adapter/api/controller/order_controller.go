package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// OrderController gerencia as requisições relacionadas a pedidos
type OrderController struct {
	orderService *service.OrderService
	log          logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderService *service.OrderService, log logger.Logger) *OrderController {
	return &OrderController{orderService: orderService, log: log}
}

// Create cria um pedido
// @Summary Cria um pedido
// @Description Sem itens explícitos o pedido usa o carrinho, que é esvaziado ao final.
// @Description Entregas por courier exigem latitude e longitude.
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.OrderCreateRequest true "Dados do pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	var request dto.OrderCreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	in := service.CreateOrderInput{
		DeliveryType:      order.DeliveryType(request.DeliveryType),
		PaymentMethod:     order.PaymentMethod(request.PaymentMethod),
		DeliveryLatitude:  request.DeliveryLatitude,
		DeliveryLongitude: request.DeliveryLongitude,
	}
	for _, it := range request.Items {
		in.Items = append(in.Items, service.ItemInput{ProductID: it.Product, Quantity: it.Quantity})
	}

	o, err := c.orderService.Create(ctx.Request.Context(), p, in)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// List lista os pedidos
// @Summary Lista os pedidos
// @Description A equipe vê todos os pedidos, os demais apenas os próprios
// @Tags orders
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.OrderResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	pg := pagination(ctx)
	orders, err := c.orderService.List(ctx.Request.Context(), p, pg.PageSize, pg.Offset())
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// GetByID busca um pedido pelo ID
// @Summary Busca um pedido pelo ID
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) GetByID(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	o, err := c.orderService.Get(ctx.Request.Context(), p, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// UpdateStatus altera o status de um pedido
// @Summary Altera o status de um pedido
// @Description Pedidos cancelados não mudam mais de status
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Param status body dto.OrderStatusRequest true "Novo status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var request dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	o, err := c.orderService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), order.Status(request.Status))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}
