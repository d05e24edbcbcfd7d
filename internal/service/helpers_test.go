package service

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/loja-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	store   *memory.Store
	catalog *CatalogService
	carts   *CartService
	orders  *OrderService
	geo     *fakeGeocoder
	cat     *catalog.Category
}

type fakeGeocoder struct {
	address string
	calls   int
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ decimal.Decimal) string {
	f.calls++
	return f.address
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New(memory.WithClock(func() time.Time { return fixedNow }))
	log := logger.NewNop()
	geo := &fakeGeocoder{}

	f := &fixture{
		store:   store,
		catalog: NewCatalogService(store.Categories(), store.Products(), log),
		carts:   NewCartService(store.Carts(), store.Products(), log),
		orders:  NewOrderService(store.Orders(), store.UnitOfWork(), store.Carts(), geo, log),
		geo:     geo,
	}
	f.orders.now = func() time.Time { return fixedNow }

	cat, err := f.catalog.CreateCategory(context.Background(), "Ferramentas", "")
	require.NoError(t, err)
	f.cat = cat
	return f
}

func (f *fixture) product(t *testing.T, name, price, cost string, stock int) *catalog.Product {
	t.Helper()
	p, err := f.catalog.CreateProduct(context.Background(), ProductInput{
		Name:       &name,
		Price:      decPtr(price),
		CostPrice:  decPtr(cost),
		Stock:      &stock,
		CategoryID: &f.cat.ID,
	})
	require.NoError(t, err)
	return p
}

func customer(id string) auth.Principal {
	return auth.Principal{UserID: id, Username: id}
}
