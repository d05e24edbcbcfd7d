package catalog

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrCategoryDuplicate = errors.New("categoria com mesmo nome ou slug já existe")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrProductProtected  = errors.New("produto referenciado por pedidos ou carrinhos não pode ser removido")
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrInvalidPrice      = errors.New("preço não pode ser negativo")
	ErrInvalidStock      = errors.New("estoque não pode ser negativo")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
)

// Category representa uma categoria do catálogo
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategory cria uma nova categoria, derivando o slug do nome quando ausente
func NewCategory(name, slug string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if slug = Slugify(slug); slug == "" {
		slug = Slugify(name)
	}
	return &Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug,
	}, nil
}

// Product representa um produto vendável
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OldPrice      *decimal.Decimal `json:"old_price"`
	CostPrice     decimal.Decimal  `json:"cost_price"`
	Description   string           `json:"description"`
	Stock         int              `json:"stock"`
	TotalStockIn  int              `json:"total_stock_in"`
	TotalStockOut int              `json:"total_stock_out"`
	IsActive      bool             `json:"is_active"`
	CategoryID    string           `json:"category_id"`
	CategoryName  string           `json:"category_name"`
	Image         *string          `json:"image"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewProduct cria um novo produto ativo. O estoque inicial é contabilizado como entrada.
func NewProduct(name string, price, costPrice decimal.Decimal, stock int, categoryID string) (*Product, error) {
	p := &Product{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Price:        price,
		CostPrice:    costPrice,
		Stock:        stock,
		TotalStockIn: stock,
		IsActive:     true,
		CategoryID:   categoryID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Validate verifica os invariantes do produto
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() || p.CostPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if p.OldPrice != nil && p.OldPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// ProfitPerUnit retorna a margem unitária (preço - custo)
func (p *Product) ProfitPerUnit() decimal.Decimal {
	return p.Price.Sub(p.CostPrice)
}

// TotalProfit retorna o lucro acumulado das unidades vendidas
func (p *Product) TotalProfit() decimal.Decimal {
	return decimal.NewFromInt(int64(p.TotalStockOut)).Mul(p.ProfitPerUnit())
}

// ApplyStockChange define o novo estoque e soma apenas aumentos em total_stock_in
func (p *Product) ApplyStockChange(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	if delta := newStock - p.Stock; delta > 0 {
		p.TotalStockIn += delta
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// Restock adiciona unidades ao estoque
func (p *Product) Restock(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return p.ApplyStockChange(p.Stock + quantity)
}

// ApplySale retira unidades vendidas do estoque
func (p *Product) ApplySale(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return ErrInvalidStock
	}
	p.Stock -= quantity
	p.TotalStockOut += quantity
	p.UpdatedAt = time.Now()
	return nil
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	slugSpaces  = regexp.MustCompile(`[\s_-]+`)
)

var slugAccents = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

// Slugify converte um texto livre em slug ASCII separado por hífens
func Slugify(s string) string {
	s = slugAccents.Replace(strings.ToLower(strings.TrimSpace(s)))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
