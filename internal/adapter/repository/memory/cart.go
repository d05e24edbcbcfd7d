package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
)

type cartRepo struct{ s *Store }

func (r cartRepo) GetOrCreate(_ context.Context, userID string) (*cart.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.cartByUser[userID]
	if !ok {
		now := r.s.now()
		c := &cart.Cart{ID: uuid.New().String(), UserID: userID, CreatedAt: now, UpdatedAt: now}
		r.s.carts[c.ID] = c
		r.s.cartByUser[userID] = c.ID
		id = c.ID
	}
	return r.load(id), nil
}

// load monta o carrinho com itens e dados atuais dos produtos
func (r cartRepo) load(id string) *cart.Cart {
	c := *r.s.carts[id]
	c.Items = make([]*cart.Item, 0)
	for _, it := range r.s.cartItems {
		if it.CartID == id {
			c.Items = append(c.Items, r.withProduct(it))
		}
	}
	sort.Slice(c.Items, func(i, j int) bool {
		if !c.Items[i].CreatedAt.Equal(c.Items[j].CreatedAt) {
			return c.Items[i].CreatedAt.Before(c.Items[j].CreatedAt)
		}
		return c.Items[i].ID < c.Items[j].ID
	})
	return &c
}

func (r cartRepo) withProduct(it *cart.Item) *cart.Item {
	cp := *it
	if p, ok := r.s.products[it.ProductID]; ok {
		cp.ProductName = p.Name
		cp.Price = p.Price
	}
	return &cp
}

func (r cartRepo) FindItem(_ context.Context, cartID, itemID string) (*cart.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.cartItems[itemID]
	if !ok || it.CartID != cartID {
		return nil, cart.ErrItemNotFound
	}
	return r.withProduct(it), nil
}

func (r cartRepo) AddItem(_ context.Context, cartID, productID string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, cart.ErrInvalidQuantity
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.carts[cartID]; !ok {
		return false, cart.ErrCartNotFound
	}
	if _, ok := r.s.products[productID]; !ok {
		return false, catalog.ErrProductNotFound
	}

	now := r.s.now()
	for _, it := range r.s.cartItems {
		if it.CartID == cartID && it.ProductID == productID {
			it.Quantity += quantity
			it.UpdatedAt = now
			return false, nil
		}
	}
	it := &cart.Item{
		ID:        uuid.New().String(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.cartItems[it.ID] = it
	return true, nil
}

func (r cartRepo) UpdateItemQuantity(_ context.Context, cartID, itemID string, quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.cartItems[itemID]
	if !ok || it.CartID != cartID {
		return cart.ErrItemNotFound
	}
	it.Quantity = quantity
	it.UpdatedAt = r.s.now()
	return nil
}

func (r cartRepo) RemoveItem(_ context.Context, cartID, itemID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.cartItems[itemID]
	if !ok || it.CartID != cartID {
		return cart.ErrItemNotFound
	}
	delete(r.s.cartItems, itemID)
	return nil
}

func (r cartRepo) Clear(_ context.Context, cartID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.clearCart(cartID)
	return nil
}

func (s *Store) clearCart(cartID string) {
	for id, it := range s.cartItems {
		if it.CartID == cartID {
			delete(s.cartItems, id)
		}
	}
}
