package order

import (
	"context"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ListFilter restringe a listagem de pedidos. UserID vazio lista todos.
type ListFilter struct {
	UserID string
	Limit  int
	Offset int
}

// Repository define a interface para leitura e administração de pedidos
type Repository interface {
	// FindByID busca um pedido com seus itens
	FindByID(ctx context.Context, id string) (*Order, error)

	// List lista pedidos, mais recentes primeiro
	List(ctx context.Context, filter ListFilter) ([]*Order, error)

	// UpdateStatus altera o status de um pedido
	UpdateStatus(ctx context.Context, id string, status Status) error

	// RecalcTotal recalcula e persiste o total a partir dos itens
	RecalcTotal(ctx context.Context, id string) (decimal.Decimal, error)
}

// Tx expõe as operações de escrita executadas dentro da transação de criação do pedido
type Tx interface {
	// LockActiveProducts bloqueia as linhas dos produtos ativos informados, em ordem de ID
	LockActiveProducts(ctx context.Context, productIDs []string) ([]*catalog.Product, error)

	// CreateOrder insere o cabeçalho do pedido
	CreateOrder(ctx context.Context, o *Order) error

	// CreateItem insere uma linha do pedido
	CreateItem(ctx context.Context, item *Item) error

	// ApplySale baixa o estoque e incrementa total_stock_out
	ApplySale(ctx context.Context, productID string, quantity int) error

	// SetTotal persiste o total do pedido
	SetTotal(ctx context.Context, orderID string, total decimal.Decimal) error

	// ClearCart remove os itens do carrinho
	ClearCart(ctx context.Context, cartID string) error
}

// UnitOfWork executa fn dentro de uma transação. Qualquer erro desfaz tudo.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
