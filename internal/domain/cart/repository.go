package cart

import (
	"context"
)

// Repository define a interface para operações de repositório de carrinhos
type Repository interface {
	// GetOrCreate retorna o carrinho do usuário, criando-o na primeira chamada
	GetOrCreate(ctx context.Context, userID string) (*Cart, error)

	// FindItem busca um item pelo ID dentro do carrinho informado
	FindItem(ctx context.Context, cartID, itemID string) (*Item, error)

	// AddItem soma a quantidade ao item existente do produto ou cria uma nova linha.
	// created indica se a linha foi criada.
	AddItem(ctx context.Context, cartID, productID string, quantity int) (created bool, err error)

	// UpdateItemQuantity define a quantidade de um item
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error

	// RemoveItem remove um item do carrinho
	RemoveItem(ctx context.Context, cartID, itemID string) error

	// Clear remove todos os itens do carrinho
	Clear(ctx context.Context, cartID string) error
}
