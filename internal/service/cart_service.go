package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

const msgInvalidProduct = "Produto inexistente ou inativo."

// CartService implementa as operações sobre o carrinho do usuário autenticado
type CartService struct {
	carts    cart.Repository
	products catalog.ProductRepository
	log      logger.Logger
}

// NewCartService cria uma nova instância de CartService
func NewCartService(carts cart.Repository, products catalog.ProductRepository, log logger.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

// GetCart retorna o carrinho do principal, criando-o se necessário
func (s *CartService) GetCart(ctx context.Context, p auth.Principal) (*cart.Cart, error) {
	c, err := s.carts.GetOrCreate(ctx, p.UserID)
	if err != nil {
		s.log.Error("erro ao carregar carrinho", "user_id", p.UserID, "error", err)
		return nil, fmt.Errorf("erro ao carregar carrinho: %w", err)
	}
	return c, nil
}

// AddItem soma a quantidade ao item do produto ou cria uma nova linha.
// created indica se a linha foi criada.
func (s *CartService) AddItem(ctx context.Context, p auth.Principal, productID string, quantity int) (c *cart.Cart, created bool, err error) {
	if quantity < 1 {
		return nil, false, validation.New("quantity", cart.ErrInvalidQuantity.Error())
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, false, validation.New("product", msgInvalidProduct)
		}
		return nil, false, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	if !product.IsActive {
		return nil, false, validation.New("product", msgInvalidProduct)
	}

	c, err = s.GetCart(ctx, p)
	if err != nil {
		return nil, false, err
	}

	created, err = s.carts.AddItem(ctx, c.ID, product.ID, quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, false, validation.New("product", msgInvalidProduct)
		}
		s.log.Error("erro ao adicionar item ao carrinho", "cart_id", c.ID, "product_id", product.ID, "error", err)
		return nil, false, fmt.Errorf("erro ao adicionar item: %w", err)
	}

	c, err = s.GetCart(ctx, p)
	return c, created, err
}

// ListItems lista os itens do carrinho do principal
func (s *CartService) ListItems(ctx context.Context, p auth.Principal) ([]*cart.Item, error) {
	c, err := s.GetCart(ctx, p)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

// GetItem busca um item do carrinho do principal
func (s *CartService) GetItem(ctx context.Context, p auth.Principal, itemID string) (*cart.Item, error) {
	c, err := s.GetCart(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.carts.FindItem(ctx, c.ID, itemID)
}

// UpdateItem define a quantidade de um item e retorna o carrinho atualizado
func (s *CartService) UpdateItem(ctx context.Context, p auth.Principal, itemID string, quantity int) (*cart.Cart, error) {
	if quantity < 1 {
		return nil, validation.New("quantity", cart.ErrInvalidQuantity.Error())
	}

	c, err := s.GetCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.carts.UpdateItemQuantity(ctx, c.ID, itemID, quantity); err != nil {
		return nil, asFieldError(err)
	}
	return s.GetCart(ctx, p)
}

// RemoveItem remove um item e retorna o carrinho atualizado
func (s *CartService) RemoveItem(ctx context.Context, p auth.Principal, itemID string) (*cart.Cart, error) {
	c, err := s.GetCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.carts.RemoveItem(ctx, c.ID, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, p)
}

// Clear esvazia o carrinho do principal
func (s *CartService) Clear(ctx context.Context, p auth.Principal) (*cart.Cart, error) {
	c, err := s.GetCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, c.ID); err != nil {
		s.log.Error("erro ao limpar carrinho", "cart_id", c.ID, "error", err)
		return nil, fmt.Errorf("erro ao limpar carrinho: %w", err)
	}
	return s.GetCart(ctx, p)
}
