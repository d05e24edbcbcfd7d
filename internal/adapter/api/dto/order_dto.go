package dto

import (
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest é uma linha explícita do pedido
type OrderItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// OrderCreateRequest representa os dados de criação de um pedido.
// Sem itens, o pedido é montado a partir do carrinho.
type OrderCreateRequest struct {
	Items             []OrderItemRequest `json:"items"`
	DeliveryType      string             `json:"delivery_type" example:"pickup"`
	PaymentMethod     string             `json:"payment_method" example:"cash"`
	DeliveryLatitude  *decimal.Decimal   `json:"delivery_latitude" swaggertype:"string"`
	DeliveryLongitude *decimal.Decimal   `json:"delivery_longitude" swaggertype:"string"`
}

// OrderStatusRequest altera o status de um pedido
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"paid"`
}

// OrderItemResponse representa uma linha do pedido
type OrderItemResponse struct {
	ID          string `json:"id"`
	Product     string `json:"product"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	CostPrice   string `json:"cost_price"`
	LineTotal   string `json:"line_total"`
}

// OrderResponse representa um pedido
type OrderResponse struct {
	ID                string              `json:"id"`
	User              string              `json:"user"`
	Status            string              `json:"status"`
	DeliveryType      string              `json:"delivery_type"`
	PaymentMethod     string              `json:"payment_method"`
	DeliveryAddress   string              `json:"delivery_address"`
	DeliveryLatitude  *string             `json:"delivery_latitude"`
	DeliveryLongitude *string             `json:"delivery_longitude"`
	TotalPrice        string              `json:"total_price"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Items             []OrderItemResponse `json:"items"`
}

// ToOrderResponse converte um pedido do domínio para DTO de resposta
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			Product:     it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       Money(it.Price),
			CostPrice:   Money(it.CostPrice),
			LineTotal:   Money(it.LineTotal()),
		}
	}
	return OrderResponse{
		ID:                o.ID,
		User:              o.UserID,
		Status:            string(o.Status),
		DeliveryType:      string(o.DeliveryType),
		PaymentMethod:     string(o.PaymentMethod),
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryLatitude:  Coordinate(o.DeliveryLatitude),
		DeliveryLongitude: Coordinate(o.DeliveryLongitude),
		TotalPrice:        Money(o.TotalPrice),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Items:             items,
	}
}

func ToOrderListResponse(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return out
}
