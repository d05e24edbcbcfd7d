// Package memory implementa todos os repositórios em memória, para desenvolvimento e testes.
package memory

import (
	"sync"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/user"
)

// Store guarda todo o estado em mapas protegidos por um único mutex.
// Transações seguram o mutex do início ao fim, o que serializa criações de pedido
// da mesma forma que o bloqueio de linhas no PostgreSQL.
type Store struct {
	mu sync.Mutex

	categories map[string]*catalog.Category
	products   map[string]*catalog.Product
	carts      map[string]*cart.Cart // por ID, sem itens
	cartByUser map[string]string
	cartItems  map[string]*cart.Item
	orders     map[string]*order.Order // sem itens
	orderItems map[string]*order.Item
	expenses   map[string]*expense.Expense
	users      map[string]*user.User

	now func() time.Time
}

// Option configura o Store
type Option func(*Store)

// WithClock substitui o relógio usado para carimbar registros
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New cria um Store vazio
func New(opts ...Option) *Store {
	s := &Store{
		categories: map[string]*catalog.Category{},
		products:   map[string]*catalog.Product{},
		carts:      map[string]*cart.Cart{},
		cartByUser: map[string]string{},
		cartItems:  map[string]*cart.Item{},
		orders:     map[string]*order.Order{},
		orderItems: map[string]*order.Item{},
		expenses:   map[string]*expense.Expense{},
		users:      map[string]*user.User{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repositórios expostos pelo Store. Todos compartilham o mesmo estado.

func (s *Store) Categories() catalog.CategoryRepository { return categoryRepo{s} }
func (s *Store) Products() catalog.ProductRepository    { return productRepo{s} }
func (s *Store) Carts() cart.Repository                 { return cartRepo{s} }
func (s *Store) Orders() order.Repository               { return orderRepo{s} }
func (s *Store) UnitOfWork() order.UnitOfWork           { return unitOfWork{s} }
func (s *Store) Expenses() expense.Repository           { return expenseRepo{s} }
func (s *Store) Users() user.Repository                 { return userRepo{s} }
func (s *Store) Finance() finance.Repository            { return financeRepo{s} }

// snapshot guarda cópias das tabelas alteradas por uma transação de pedido
type snapshot struct {
	products   map[string]catalog.Product
	orders     map[string]order.Order
	orderItems map[string]order.Item
	cartItems  map[string]cart.Item
}

func (s *Store) takeSnapshot() snapshot {
	snap := snapshot{
		products:   make(map[string]catalog.Product, len(s.products)),
		orders:     make(map[string]order.Order, len(s.orders)),
		orderItems: make(map[string]order.Item, len(s.orderItems)),
		cartItems:  make(map[string]cart.Item, len(s.cartItems)),
	}
	for id, p := range s.products {
		snap.products[id] = *p
	}
	for id, o := range s.orders {
		snap.orders[id] = *o
	}
	for id, it := range s.orderItems {
		snap.orderItems[id] = *it
	}
	for id, it := range s.cartItems {
		snap.cartItems[id] = *it
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = make(map[string]*catalog.Product, len(snap.products))
	for id, p := range snap.products {
		p := p
		s.products[id] = &p
	}
	s.orders = make(map[string]*order.Order, len(snap.orders))
	for id, o := range snap.orders {
		o := o
		s.orders[id] = &o
	}
	s.orderItems = make(map[string]*order.Item, len(snap.orderItems))
	for id, it := range snap.orderItems {
		it := it
		s.orderItems[id] = &it
	}
	s.cartItems = make(map[string]*cart.Item, len(snap.cartItems))
	for id, it := range snap.cartItems {
		it := it
		s.cartItems[id] = &it
	}
}

func (s *Store) productReferenced(productID string) bool {
	for _, it := range s.cartItems {
		if it.ProductID == productID {
			return true
		}
	}
	for _, it := range s.orderItems {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func page[T any](in []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(in) {
			return []T{}
		}
		in = in[offset:]
	}
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
