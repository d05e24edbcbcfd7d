package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// MaxAddressLength é o tamanho máximo de delivery_address
const MaxAddressLength = 255

// Geocoder resolve coordenadas em um endereço legível. Retorna "" em qualquer falha.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon decimal.Decimal) string
}

// ItemInput é uma linha explícita do pedido
type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput são os dados de criação de um pedido
type CreateOrderInput struct {
	Items             []ItemInput
	DeliveryType      order.DeliveryType
	PaymentMethod     order.PaymentMethod
	DeliveryLatitude  *decimal.Decimal
	DeliveryLongitude *decimal.Decimal
}

// OrderService implementa a criação e a consulta de pedidos
type OrderService struct {
	orders   order.Repository
	uow      order.UnitOfWork
	carts    cart.Repository
	geocoder Geocoder
	log      logger.Logger
	now      func() time.Time
}

// NewOrderService cria uma nova instância de OrderService
func NewOrderService(
	orders order.Repository,
	uow order.UnitOfWork,
	carts cart.Repository,
	geocoder Geocoder,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		uow:      uow,
		carts:    carts,
		geocoder: geocoder,
		log:      log,
		now:      time.Now,
	}
}

// Create converte o carrinho (ou a lista explícita de itens) em um pedido.
// Estoque, itens, total e limpeza do carrinho são gravados na mesma transação.
func (s *OrderService) Create(ctx context.Context, p auth.Principal, in CreateOrderInput) (*order.Order, error) {
	if err := normalizeDelivery(&in); err != nil {
		return nil, err
	}

	lines := in.Items
	cartID := ""
	if len(lines) == 0 {
		c, err := s.carts.GetOrCreate(ctx, p.UserID)
		if err != nil {
			s.log.Error("erro ao carregar carrinho", "user_id", p.UserID, "error", err)
			return nil, fmt.Errorf("erro ao carregar carrinho: %w", err)
		}
		for _, it := range c.Items {
			lines = append(lines, ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		cartID = c.ID
	}
	if len(lines) == 0 {
		return nil, validation.New("items", "Carrinho vazio e nenhum item informado.")
	}

	quantities, productIDs, err := aggregateItems(lines)
	if err != nil {
		return nil, err
	}

	address := ""
	if in.DeliveryType == order.DeliveryCourier {
		address = s.deliveryAddress(ctx, *in.DeliveryLatitude, *in.DeliveryLongitude)
	}

	now := s.now()
	o := &order.Order{
		ID:                uuid.New().String(),
		UserID:            p.UserID,
		Status:            order.StatusCreated,
		DeliveryType:      in.DeliveryType,
		PaymentMethod:     in.PaymentMethod,
		DeliveryAddress:   address,
		DeliveryLatitude:  in.DeliveryLatitude,
		DeliveryLongitude: in.DeliveryLongitude,
		TotalPrice:        decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.uow.WithinTx(ctx, func(tx order.Tx) error {
		o.Items = nil

		products, err := tx.LockActiveProducts(ctx, productIDs)
		if err != nil {
			return err
		}
		byID := make(map[string]*catalog.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		var missing []string
		for _, id := range productIDs {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return missingProductsError(missing)
		}

		stockErrs := &validation.Error{}
		for _, id := range productIDs {
			product, requested := byID[id], quantities[id]
			if requested > product.Stock {
				stockErrs.Add(product.Name, fmt.Sprintf("estoque insuficiente. Em estoque: %d, solicitado: %d", product.Stock, requested))
			}
		}
		if !stockErrs.Empty() {
			return stockErrs
		}

		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}
		for _, id := range productIDs {
			product := byID[id]
			item := &order.Item{
				ID:          uuid.New().String(),
				OrderID:     o.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    quantities[id],
				Price:       product.Price,
				CostPrice:   product.CostPrice,
				CreatedAt:   now,
			}
			if err := tx.CreateItem(ctx, item); err != nil {
				return err
			}
			if err := tx.ApplySale(ctx, product.ID, item.Quantity); err != nil {
				return err
			}
			o.Items = append(o.Items, item)
		}

		if err := tx.SetTotal(ctx, o.ID, o.RecalcTotal()); err != nil {
			return err
		}

		if cartID != "" {
			return tx.ClearCart(ctx, cartID)
		}
		return nil
	})
	if err != nil {
		if _, ok := validation.As(err); ok {
			return nil, err
		}
		s.log.Error("erro ao criar pedido", "user_id", p.UserID, "error", err)
		return nil, fmt.Errorf("erro ao criar pedido: %w", err)
	}

	s.log.Info("pedido criado", "order_id", o.ID, "user_id", p.UserID, "total", o.TotalPrice.StringFixed(2))
	return o, nil
}

// normalizeDelivery aplica os padrões e valida entrega, pagamento e coordenadas
func normalizeDelivery(in *CreateOrderInput) error {
	if in.DeliveryType == "" {
		in.DeliveryType = order.DeliveryPickup
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = order.PaymentCash
	}

	verr := &validation.Error{}
	if !in.DeliveryType.Valid() {
		verr.Add("delivery_type", fmt.Sprintf("Valor inválido: %q.", in.DeliveryType))
	}
	if !in.PaymentMethod.Valid() {
		verr.Add("payment_method", fmt.Sprintf("Valor inválido: %q.", in.PaymentMethod))
	}
	if !verr.Empty() {
		return verr
	}

	if in.DeliveryType == order.DeliveryPickup {
		in.DeliveryLatitude = nil
		in.DeliveryLongitude = nil
		return nil
	}

	lat, lon := in.DeliveryLatitude, in.DeliveryLongitude
	if lat == nil || lon == nil {
		return validation.New("delivery_location", "Para entrega por courier informe latitude e longitude.")
	}
	if lat.Abs().GreaterThan(decimal.NewFromInt(90)) || lon.Abs().GreaterThan(decimal.NewFromInt(180)) {
		return validation.New("delivery_location", "Coordenadas fora do intervalo válido.")
	}
	roundedLat, roundedLon := lat.Round(6), lon.Round(6)
	in.DeliveryLatitude, in.DeliveryLongitude = &roundedLat, &roundedLon
	return nil
}

// aggregateItems soma quantidades repetidas e devolve os IDs em ordem crescente
func aggregateItems(lines []ItemInput) (map[string]int, []string, error) {
	quantities := make(map[string]int, len(lines))
	var malformed []string
	for _, line := range lines {
		if line.ProductID == "" {
			return nil, nil, validation.New("items", "Produto não informado.")
		}
		if line.Quantity < 1 {
			return nil, nil, validation.New("items", "Quantidade deve ser maior ou igual a 1.")
		}
		if _, err := uuid.Parse(line.ProductID); err != nil {
			if _, seen := quantities[line.ProductID]; !seen {
				malformed = append(malformed, line.ProductID)
			}
		}
		quantities[line.ProductID] += line.Quantity
	}
	if len(malformed) > 0 {
		return nil, nil, missingProductsError(malformed)
	}

	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return quantities, ids, nil
}

func missingProductsError(ids []string) error {
	return validation.New("items", fmt.Sprintf("Produtos não encontrados ou inativos: %s", strings.Join(ids, ", ")))
}

// deliveryAddress resolve o endereço de entrega, usando as coordenadas quando o geocoder falha
func (s *OrderService) deliveryAddress(ctx context.Context, lat, lon decimal.Decimal) string {
	address := ""
	if s.geocoder != nil {
		address = strings.TrimSpace(s.geocoder.ReverseGeocode(ctx, lat, lon))
	}
	if address == "" {
		address = fmt.Sprintf("Lat %s, Lon %s", lat.StringFixed(6), lon.StringFixed(6))
	}
	return truncateRunes(address, MaxAddressLength)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// List lista os pedidos do principal. Usuários da equipe veem todos.
func (s *OrderService) List(ctx context.Context, p auth.Principal, limit, offset int) ([]*order.Order, error) {
	filter := order.ListFilter{Limit: limit, Offset: offset}
	if !p.IsStaff {
		filter.UserID = p.UserID
	}
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		s.log.Error("erro ao listar pedidos", "user_id", p.UserID, "error", err)
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	return orders, nil
}

// Get busca um pedido. Pedidos de outros usuários aparecem como inexistentes.
func (s *OrderService) Get(ctx context.Context, p auth.Principal, id string) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsStaff && o.UserID != p.UserID {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus altera o status do pedido e ressincroniza o total com os itens
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.CanTransitionTo(status); err != nil {
		if errors.Is(err, order.ErrInvalidStatus) || errors.Is(err, order.ErrStatusTransition) {
			return nil, validation.New("status", err.Error())
		}
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if _, err := s.orders.RecalcTotal(ctx, id); err != nil {
		s.log.Error("erro ao recalcular total do pedido", "order_id", id, "error", err)
		return nil, fmt.Errorf("erro ao recalcular total: %w", err)
	}

	s.log.Info("status do pedido alterado", "order_id", id, "from", o.Status, "to", status)
	return s.orders.FindByID(ctx, id)
}
