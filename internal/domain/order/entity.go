package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errors.New("pedido não encontrado")
	ErrInvalidStatus    = errors.New("status de pedido inválido")
	ErrStatusTransition = errors.New("pedido cancelado não pode mudar de status")
)

// Status representa a situação do pedido
type Status string

// DeliveryType representa a forma de entrega
type DeliveryType string

// PaymentMethod representa a forma de pagamento
type PaymentMethod string

const (
	StatusCreated  Status = "created"
	StatusPaid     Status = "paid"
	StatusShipped  Status = "shipped"
	StatusCanceled Status = "canceled"
)

const (
	DeliveryPickup  DeliveryType = "pickup"  // Retirada na loja
	DeliveryCourier DeliveryType = "courier" // Entrega por courier
)

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid verifica se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusShipped, StatusCanceled:
		return true
	}
	return false
}

// Valid verifica se a forma de entrega é conhecida
func (d DeliveryType) Valid() bool {
	return d == DeliveryPickup || d == DeliveryCourier
}

// Valid verifica se a forma de pagamento é conhecida
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

// Order representa um pedido finalizado
type Order struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	Status            Status           `json:"status"`
	DeliveryType      DeliveryType     `json:"delivery_type"`
	PaymentMethod     PaymentMethod    `json:"payment_method"`
	DeliveryAddress   string           `json:"delivery_address"`
	DeliveryLatitude  *decimal.Decimal `json:"delivery_latitude"`
	DeliveryLongitude *decimal.Decimal `json:"delivery_longitude"`
	TotalPrice        decimal.Decimal  `json:"total_price"`
	Items             []*Item          `json:"items"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Item é uma linha do pedido com preço e custo congelados no momento da compra
type Item struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LineTotal retorna preço × quantidade
func (i *Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineProfit retorna (preço - custo) × quantidade
func (i *Item) LineProfit() decimal.Decimal {
	return i.Price.Sub(i.CostPrice).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// RecalcTotal recalcula o total a partir dos itens
func (o *Order) RecalcTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalPrice = total
	return total
}

// CanTransitionTo verifica se o pedido pode assumir o novo status
func (o *Order) CanTransitionTo(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if o.Status == StatusCanceled && next != StatusCanceled {
		return ErrStatusTransition
	}
	return nil
}
