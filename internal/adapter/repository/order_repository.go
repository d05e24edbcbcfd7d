package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/infrastructure/database"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderColumns = `o.id, o.user_id, o.status, o.delivery_type, o.payment_method, o.delivery_address,
	o.delivery_latitude, o.delivery_longitude, o.total_price, o.created_at, o.updated_at`

// OrderRepository implementa a interface order.Repository usando PostgreSQL
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.DeliveryType, &o.PaymentMethod, &o.DeliveryAddress,
		&o.DeliveryLatitude, &o.DeliveryLongitude, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Items = make([]*order.Item, 0)
	return &o, nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	if !validID(id) {
		return nil, order.ErrOrderNotFound
	}
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}
	if err := r.loadItems(ctx, []*order.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List implementa order.Repository.List
func (r *OrderRepository) List(ctx context.Context, f order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE ($1 = '' OR o.user_id::text = $1)
		ORDER BY o.created_at DESC, o.id DESC`
	args := []interface{}{f.UserID}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price, oi.cost_price, oi.created_at
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.product_id`, ids)
	if err != nil {
		return fmt.Errorf("erro ao listar itens do pedido: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity,
			&it.Price, &it.CostPrice, &it.CreatedAt); err != nil {
			return fmt.Errorf("erro ao ler item do pedido: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, &it)
		}
	}
	return rows.Err()
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	if !validID(id) {
		return order.ErrOrderNotFound
	}
	tag, err := r.db.Exec(ctx,
		"UPDATE orders SET status = $2, updated_at = now() WHERE id = $1", id, status)
	if err != nil {
		if isCheckViolation(err) {
			return order.ErrInvalidStatus
		}
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// RecalcTotal implementa order.Repository.RecalcTotal
func (r *OrderRepository) RecalcTotal(ctx context.Context, id string) (decimal.Decimal, error) {
	if !validID(id) {
		return decimal.Zero, order.ErrOrderNotFound
	}
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE orders SET
			total_price = (SELECT COALESCE(SUM(price * quantity), 0) FROM order_items WHERE order_id = $1),
			updated_at = now()
		WHERE id = $1
		RETURNING total_price`, id).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, order.ErrOrderNotFound
		}
		return decimal.Zero, fmt.Errorf("erro ao recalcular total do pedido: %w", err)
	}
	return total, nil
}

// OrderUnitOfWork implementa order.UnitOfWork sobre transações pgx
type OrderUnitOfWork struct {
	db  *pgxpool.Pool
	log logger.Logger
}

// NewOrderUnitOfWork cria uma nova instância de OrderUnitOfWork
func NewOrderUnitOfWork(db *pgxpool.Pool, log logger.Logger) order.UnitOfWork {
	return &OrderUnitOfWork{db: db, log: log}
}

// WithinTx implementa order.UnitOfWork.WithinTx
func (u *OrderUnitOfWork) WithinTx(ctx context.Context, fn func(tx order.Tx) error) error {
	return database.RunInTx(ctx, u.db, u.log, func(tx pgx.Tx) error {
		return fn(&orderTx{tx: tx})
	})
}

type orderTx struct {
	tx pgx.Tx
}

// LockActiveProducts bloqueia as linhas em ordem de ID para evitar deadlocks entre pedidos concorrentes
// IDs malformados são ignorados e aparecem ao chamador como produtos ausentes.
func (t *orderTx) LockActiveProducts(ctx context.Context, productIDs []string) ([]*catalog.Product, error) {
	productIDs = filterValidIDs(productIDs)
	if len(productIDs) == 0 {
		return []*catalog.Product{}, nil
	}

	rows, err := t.tx.Query(ctx, `SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ANY($1) AND p.is_active = true
		ORDER BY p.id
		FOR UPDATE OF p`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao bloquear produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*catalog.Product, 0, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (t *orderTx) CreateOrder(ctx context.Context, o *order.Order) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO orders (
			id, user_id, status, delivery_type, payment_method, delivery_address,
			delivery_latitude, delivery_longitude, total_price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.UserID, o.Status, o.DeliveryType, o.PaymentMethod, o.DeliveryAddress,
		o.DeliveryLatitude, o.DeliveryLongitude, o.TotalPrice, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao criar pedido: %w", err)
	}
	return nil
}

func (t *orderTx) CreateItem(ctx context.Context, it *order.Item) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, cost_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		it.ID, it.OrderID, it.ProductID, it.Quantity, it.Price, it.CostPrice, it.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao criar item do pedido: %w", err)
	}
	return nil
}

func (t *orderTx) ApplySale(ctx context.Context, productID string, quantity int) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE products SET
			stock = stock - $2,
			total_stock_out = total_stock_out + $2,
			updated_at = now()
		WHERE id = $1 AND stock >= $2`, productID, quantity)
	if err != nil {
		return fmt.Errorf("erro ao baixar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrInvalidStock
	}
	return nil
}

func (t *orderTx) SetTotal(ctx context.Context, orderID string, total decimal.Decimal) error {
	_, err := t.tx.Exec(ctx, "UPDATE orders SET total_price = $2 WHERE id = $1", orderID, total)
	if err != nil {
		return fmt.Errorf("erro ao definir total do pedido: %w", err)
	}
	return nil
}

func (t *orderTx) ClearCart(ctx context.Context, cartID string) error {
	if _, err := t.tx.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return fmt.Errorf("erro ao limpar carrinho: %w", err)
	}
	return nil
}
