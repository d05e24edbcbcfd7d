package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/shopspring/decimal"
)

type orderRepo struct{ s *Store }

func (r orderRepo) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return r.s.loadOrder(o), nil
}

func (s *Store) loadOrder(o *order.Order) *order.Order {
	cp := *o
	cp.Items = make([]*order.Item, 0)
	for _, it := range s.orderItems {
		if it.OrderID == o.ID {
			item := *it
			if p, ok := s.products[it.ProductID]; ok {
				item.ProductName = p.Name
			}
			cp.Items = append(cp.Items, &item)
		}
	}
	sort.Slice(cp.Items, func(i, j int) bool { return cp.Items[i].ProductID < cp.Items[j].ProductID })
	return &cp
}

func (r orderRepo) List(_ context.Context, f order.ListFilter) ([]*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*order.Order, 0)
	for _, o := range r.s.orders {
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		out = append(out, r.s.loadOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r orderRepo) UpdateStatus(_ context.Context, id string, status order.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = r.s.now()
	return nil
}

func (r orderRepo) RecalcTotal(_ context.Context, id string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return decimal.Zero, order.ErrOrderNotFound
	}
	total := r.s.loadOrder(o).RecalcTotal()
	o.TotalPrice = total
	o.UpdatedAt = r.s.now()
	return total, nil
}

type unitOfWork struct{ s *Store }

// WithinTx segura o mutex do Store durante fn e restaura o estado anterior em caso de erro
func (u unitOfWork) WithinTx(ctx context.Context, fn func(tx order.Tx) error) (err error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	snap := u.s.takeSnapshot()
	defer func() {
		if p := recover(); p != nil {
			u.s.restore(snap)
			panic(p)
		}
		if err != nil {
			u.s.restore(snap)
		}
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	return fn(memTx{u.s})
}

// memTx opera sobre o Store com o mutex já adquirido por WithinTx
type memTx struct{ s *Store }

func (t memTx) LockActiveProducts(_ context.Context, ids []string) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := t.s.products[id]; ok && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t memTx) CreateOrder(_ context.Context, o *order.Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = t.s.now()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	cp := *o
	cp.Items = nil
	t.s.orders[o.ID] = &cp
	return nil
}

func (t memTx) CreateItem(_ context.Context, item *order.Item) error {
	if _, ok := t.s.orders[item.OrderID]; !ok {
		return order.ErrOrderNotFound
	}
	if _, ok := t.s.products[item.ProductID]; !ok {
		return catalog.ErrProductNotFound
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = t.s.now()
	}
	cp := *item
	t.s.orderItems[item.ID] = &cp
	return nil
}

func (t memTx) ApplySale(_ context.Context, productID string, quantity int) error {
	p, ok := t.s.products[productID]
	if !ok {
		return catalog.ErrProductNotFound
	}
	return p.ApplySale(quantity)
}

func (t memTx) SetTotal(_ context.Context, orderID string, total decimal.Decimal) error {
	o, ok := t.s.orders[orderID]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.TotalPrice = total
	return nil
}

func (t memTx) ClearCart(_ context.Context, cartID string) error {
	t.s.clearCart(cartID)
	return nil
}
