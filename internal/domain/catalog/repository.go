package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductFilter restringe a listagem de produtos
type ProductFilter struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	OnlyActive bool
	Limit      int
	Offset     int
}

// CategoryRepository define a interface para operações de repositório de categorias
type CategoryRepository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// List lista todas as categorias ordenadas por nome
	List(ctx context.Context) ([]*Category, error)

	// Update atualiza nome e slug
	Update(ctx context.Context, c *Category) error

	// Delete remove a categoria e seus produtos
	Delete(ctx context.Context, id string) error
}

// ProductRepository define a interface para operações de repositório de produtos
type ProductRepository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista produtos conforme o filtro
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// Update atualiza o produto. O delta de estoque é calculado contra o valor persistido.
	Update(ctx context.Context, p *Product) error

	// Restock soma unidades ao estoque e a total_stock_in
	Restock(ctx context.Context, id string, quantity int) (*Product, error)

	// Delete remove um produto sem referências
	Delete(ctx context.Context, id string) error
}
