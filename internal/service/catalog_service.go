package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductInput são os dados de escrita de um produto. Campos nil mantêm o valor atual na atualização.
type ProductInput struct {
	Name        *string
	Price       *decimal.Decimal
	OldPrice    *decimal.Decimal
	CostPrice   *decimal.Decimal
	Description *string
	Stock       *int
	IsActive    *bool
	CategoryID  *string
	Image       *string
}

// CatalogService implementa as operações de categorias e produtos
type CatalogService struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
	log        logger.Logger
}

// NewCatalogService cria uma nova instância de CatalogService
func NewCatalogService(categories catalog.CategoryRepository, products catalog.ProductRepository, log logger.Logger) *CatalogService {
	return &CatalogService{categories: categories, products: products, log: log}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*catalog.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// CreateCategory cria uma categoria, derivando o slug do nome quando ausente
func (s *CatalogService) CreateCategory(ctx context.Context, name, slug string) (*catalog.Category, error) {
	c, err := catalog.NewCategory(name, slug)
	if err != nil {
		return nil, asFieldError(err)
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("categoria criada", "category_id", c.ID, "slug", c.Slug)
	return c, nil
}

// UpdateCategory renomeia a categoria. Slug vazio é derivado do novo nome.
func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, slug string) (*catalog.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := catalog.NewCategory(name, slug)
	if err != nil {
		return nil, asFieldError(err)
	}
	c.Name, c.Slug = updated.Name, updated.Slug
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory remove a categoria e seus produtos
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("categoria removida", "category_id", id)
	return nil
}

// ListProducts lista produtos conforme o filtro
func (s *CatalogService) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		s.log.Error("erro ao listar produtos", "error", err)
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	return products, nil
}

// GetProduct busca um produto. Com onlyActive, produtos inativos aparecem como inexistentes.
func (s *CatalogService) GetProduct(ctx context.Context, id string, onlyActive bool) (*catalog.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if onlyActive && !p.IsActive {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

// CreateProduct cria um produto. Nome, preço e categoria são obrigatórios.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*catalog.Product, error) {
	verr := &validation.Error{}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "Este campo é obrigatório.")
	}
	if in.Price == nil {
		verr.Add("price", "Este campo é obrigatório.")
	}
	if in.CategoryID == nil || *in.CategoryID == "" {
		verr.Add("category", "Este campo é obrigatório.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	cost := decimal.Zero
	if in.CostPrice != nil {
		cost = *in.CostPrice
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	p, err := catalog.NewProduct(*in.Name, *in.Price, cost, stock, *in.CategoryID)
	if err != nil {
		return nil, asFieldError(err)
	}
	p.OldPrice = in.OldPrice
	p.Image = in.Image
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := p.Validate(); err != nil {
		return nil, asFieldError(err)
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, categoryFieldError(err)
	}
	s.log.Info("produto criado", "product_id", p.ID, "stock", p.Stock)
	return p, nil
}

// UpdateProduct aplica os campos informados. Aumentos de estoque somam em total_stock_in.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*catalog.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.OldPrice != nil {
		p.OldPrice = in.OldPrice
	}
	if in.CostPrice != nil {
		p.CostPrice = *in.CostPrice
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Image != nil {
		p.Image = in.Image
	}
	if err := p.Validate(); err != nil {
		return nil, asFieldError(err)
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, categoryFieldError(asFieldError(err))
	}
	return p, nil
}

// RestockProduct registra a entrada de mercadoria
func (s *CatalogService) RestockProduct(ctx context.Context, id string, quantity int) (*catalog.Product, error) {
	if quantity < 1 {
		return nil, validation.New("quantity", catalog.ErrInvalidQuantity.Error())
	}
	p, err := s.products.Restock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	s.log.Info("estoque reposto", "product_id", id, "quantity", quantity, "stock", p.Stock)
	return p, nil
}

// DeleteProduct remove um produto sem referências em pedidos ou carrinhos
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func categoryFieldError(err error) error {
	if errors.Is(err, catalog.ErrCategoryNotFound) {
		return validation.New("category", catalog.ErrCategoryNotFound.Error())
	}
	return err
}
