package dto

import (
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
)

// CartItemCreateRequest adiciona um produto ao carrinho. Quantidade padrão 1.
type CartItemCreateRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity *int   `json:"quantity"`
}

// CartItemUpdateRequest altera a quantidade de um item
type CartItemUpdateRequest struct {
	Quantity *int `json:"quantity"`
}

// CartItemResponse representa uma linha do carrinho
type CartItemResponse struct {
	ID          string    `json:"id"`
	Product     string    `json:"product"`
	ProductName string    `json:"product_name"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	LineTotal   string    `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CartResponse representa o carrinho completo
type CartResponse struct {
	ID         string             `json:"id"`
	User       string             `json:"user"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice string             `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func ToCartItemResponse(it *cart.Item) CartItemResponse {
	return CartItemResponse{
		ID:          it.ID,
		Product:     it.ProductID,
		ProductName: it.ProductName,
		Price:       Money(it.Price),
		Quantity:    it.Quantity,
		LineTotal:   Money(it.LineTotal()),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func ToCartItemListResponse(items []*cart.Item) []CartItemResponse {
	out := make([]CartItemResponse, len(items))
	for i, it := range items {
		out[i] = ToCartItemResponse(it)
	}
	return out
}

// ToCartResponse converte o carrinho do domínio para DTO de resposta
func ToCartResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		ID:         c.ID,
		User:       c.UserID,
		Items:      ToCartItemListResponse(c.Items),
		TotalPrice: Money(c.TotalPrice()),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
