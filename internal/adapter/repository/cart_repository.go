package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cartItemColumns = `ci.id, ci.cart_id, ci.product_id, p.name, p.price, ci.quantity, ci.created_at, ci.updated_at`

// CartRepository implementa a interface cart.Repository usando PostgreSQL
type CartRepository struct {
	db *pgxpool.Pool
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository(db *pgxpool.Pool) cart.Repository {
	return &CartRepository{db: db}
}

func scanCartItem(row pgx.Row) (*cart.Item, error) {
	var it cart.Item
	err := row.Scan(&it.ID, &it.CartID, &it.ProductID, &it.ProductName, &it.Price,
		&it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetOrCreate implementa cart.Repository.GetOrCreate
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*cart.Cart, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (user_id) DO NOTHING`,
		uuid.New().String(), userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar carrinho: %w", err)
	}

	var c cart.Cart
	err = r.db.QueryRow(ctx,
		"SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1", userID).
		Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrCartNotFound
		}
		return nil, fmt.Errorf("erro ao buscar carrinho: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT `+cartItemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at, ci.id`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens do carrinho: %w", err)
	}
	defer rows.Close()

	c.Items = make([]*cart.Item, 0)
	for rows.Next() {
		it, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item do carrinho: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	return &c, rows.Err()
}

// FindItem implementa cart.Repository.FindItem
func (r *CartRepository) FindItem(ctx context.Context, cartID, itemID string) (*cart.Item, error) {
	if !validID(itemID) {
		return nil, cart.ErrItemNotFound
	}
	it, err := scanCartItem(r.db.QueryRow(ctx, `SELECT `+cartItemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND ci.id = $2`, cartID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("erro ao buscar item do carrinho: %w", err)
	}
	return it, nil
}

// AddItem implementa cart.Repository.AddItem com um único upsert sobre (cart_id, product_id)
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, cart.ErrInvalidQuantity
	}
	if !validID(productID) {
		return false, catalog.ErrProductNotFound
	}

	var inserted bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (cart_id, product_id) DO UPDATE
			SET quantity = cart_items.quantity + EXCLUDED.quantity,
			    updated_at = now()
		RETURNING (xmax = 0)`,
		uuid.New().String(), cartID, productID, quantity).Scan(&inserted)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, catalog.ErrProductNotFound
		}
		return false, fmt.Errorf("erro ao adicionar item ao carrinho: %w", err)
	}

	if _, err := r.db.Exec(ctx, "UPDATE carts SET updated_at = now() WHERE id = $1", cartID); err != nil {
		return false, fmt.Errorf("erro ao atualizar carrinho: %w", err)
	}
	return inserted, nil
}

// UpdateItemQuantity implementa cart.Repository.UpdateItemQuantity
func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}
	if !validID(itemID) {
		return cart.ErrItemNotFound
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity = $3, updated_at = now()
		WHERE cart_id = $1 AND id = $2`, cartID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("erro ao atualizar item do carrinho: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// RemoveItem implementa cart.Repository.RemoveItem
func (r *CartRepository) RemoveItem(ctx context.Context, cartID, itemID string) error {
	if !validID(itemID) {
		return cart.ErrItemNotFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1 AND id = $2", cartID, itemID)
	if err != nil {
		return fmt.Errorf("erro ao remover item do carrinho: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// Clear implementa cart.Repository.Clear
func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return fmt.Errorf("erro ao limpar carrinho: %w", err)
	}
	return nil
}
