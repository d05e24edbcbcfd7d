package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound    = errors.New("carrinho não encontrado")
	ErrItemNotFound    = errors.New("item do carrinho não encontrado")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior ou igual a 1")
)

// Cart representa o carrinho de um usuário
type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Items     []*Item   `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item é uma linha do carrinho. Nome e preço vêm do produto atual.
type Item struct {
	ID          string          `json:"id"`
	CartID      string          `json:"cart_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LineTotal retorna preço atual × quantidade
func (i *Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalPrice soma as linhas do carrinho
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
