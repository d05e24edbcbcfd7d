package dto

import (
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryRequest representa os dados de escrita de uma categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// CategoryResponse representa uma categoria
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductRequest representa os dados de escrita de um produto.
// Na atualização parcial, campos ausentes mantêm o valor atual.
type ProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	OldPrice    *decimal.Decimal `json:"old_price" swaggertype:"string"`
	CostPrice   *decimal.Decimal `json:"cost_price" swaggertype:"string"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"`
	IsActive    *bool            `json:"is_active"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
}

// RestockRequest representa uma entrada de mercadoria
type RestockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductResponse representa um produto com os campos derivados
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         string    `json:"price"`
	OldPrice      *string   `json:"old_price"`
	CostPrice     string    `json:"cost_price"`
	ProfitPerUnit string    `json:"profit_per_unit"`
	TotalProfit   string    `json:"total_profit"`
	Description   string    `json:"description"`
	Stock         int       `json:"stock"`
	TotalStockIn  int       `json:"total_stock_in"`
	TotalStockOut int       `json:"total_stock_out"`
	IsActive      bool      `json:"is_active"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name"`
	Image         *string   `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO de resposta
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func ToCategoryListResponse(categories []*catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return out
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         Money(p.Price),
		OldPrice:      OptionalMoney(p.OldPrice),
		CostPrice:     Money(p.CostPrice),
		ProfitPerUnit: Money(p.ProfitPerUnit()),
		TotalProfit:   Money(p.TotalProfit()),
		Description:   p.Description,
		Stock:         p.Stock,
		TotalStockIn:  p.TotalStockIn,
		TotalStockOut: p.TotalStockOut,
		IsActive:      p.IsActive,
		Category:      p.CategoryID,
		CategoryName:  p.CategoryName,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProductListResponse(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}
