package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderFromCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Notebook", "100000.00", "70000.00", 50)
	u := customer("u-1")

	_, _, err := f.carts.AddItem(ctx, u, p.ID, 2)
	require.NoError(t, err)

	o, err := f.orders.Create(ctx, u, CreateOrderInput{})
	require.NoError(t, err)

	assert.Equal(t, order.StatusCreated, o.Status)
	assert.Equal(t, order.DeliveryPickup, o.DeliveryType)
	assert.Equal(t, order.PaymentCash, o.PaymentMethod)
	assert.Equal(t, "200000.00", o.TotalPrice.StringFixed(2))
	require.Len(t, o.Items, 1)
	assert.Equal(t, "100000.00", o.Items[0].Price.StringFixed(2))
	assert.Equal(t, "70000.00", o.Items[0].CostPrice.StringFixed(2))
	assert.Equal(t, fixedNow, o.CreatedAt)

	stored, err := f.catalog.GetProduct(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 48, stored.Stock)
	assert.Equal(t, 2, stored.TotalStockOut)
	assert.Equal(t, 50, stored.TotalStockIn)

	c, err := f.carts.GetCart(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	persisted, err := f.orders.Get(ctx, u, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "200000.00", persisted.TotalPrice.StringFixed(2))
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "items")
}

func TestCreateOrderCourierRequiresCoordinates(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	_, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items:            []ItemInput{{ProductID: p.ID, Quantity: 1}},
		DeliveryType:     order.DeliveryCourier,
		DeliveryLatitude: decPtr("41.311081"),
	})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "delivery_location")
	assert.Zero(t, f.geo.calls)
}

func TestCreateOrderCourierUsesGeocoder(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)
	f.geo.address = "  Amir Temur Avenue, Tashkent  "

	o, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items:             []ItemInput{{ProductID: p.ID, Quantity: 1}},
		DeliveryType:      order.DeliveryCourier,
		PaymentMethod:     order.PaymentCard,
		DeliveryLatitude:  decPtr("41.311081"),
		DeliveryLongitude: decPtr("69.240562"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amir Temur Avenue, Tashkent", o.DeliveryAddress)
	assert.Equal(t, order.PaymentCard, o.PaymentMethod)
	assert.Equal(t, 1, f.geo.calls)
}

func TestCreateOrderCourierFallbackAddress(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	o, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items:             []ItemInput{{ProductID: p.ID, Quantity: 1}},
		DeliveryType:      order.DeliveryCourier,
		DeliveryLatitude:  decPtr("41.3"),
		DeliveryLongitude: decPtr("69.24"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lat 41.300000, Lon 69.240000", o.DeliveryAddress)
}

func TestCreateOrderTruncatesLongAddress(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)
	f.geo.address = strings.Repeat("ç", 300)

	o, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items:             []ItemInput{{ProductID: p.ID, Quantity: 1}},
		DeliveryType:      order.DeliveryCourier,
		DeliveryLatitude:  decPtr("1"),
		DeliveryLongitude: decPtr("2"),
	})
	require.NoError(t, err)
	assert.Equal(t, MaxAddressLength, len([]rune(o.DeliveryAddress)))
}

func TestCreateOrderPickupDiscardsCoordinates(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	o, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items:             []ItemInput{{ProductID: p.ID, Quantity: 1}},
		DeliveryLatitude:  decPtr("41.3"),
		DeliveryLongitude: decPtr("69.2"),
	})
	require.NoError(t, err)
	assert.Nil(t, o.DeliveryLatitude)
	assert.Nil(t, o.DeliveryLongitude)
	assert.Empty(t, o.DeliveryAddress)
	assert.Zero(t, f.geo.calls)
}

func TestCreateOrderInsufficientStockKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "Parafuso", "1.00", "0.50", 10)
	b := f.product(t, "Prego", "0.50", "0.10", 1)
	u := customer("u-1")

	_, _, err := f.carts.AddItem(ctx, u, a.ID, 2)
	require.NoError(t, err)
	_, _, err = f.carts.AddItem(ctx, u, b.ID, 3)
	require.NoError(t, err)

	_, err = f.orders.Create(ctx, u, CreateOrderInput{})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "estoque insuficiente. Em estoque: 1, solicitado: 3", verr.Fields["Prego"])
	assert.NotContains(t, verr.Fields, "Parafuso")

	c, err := f.carts.GetCart(ctx, u)
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)

	stored, err := f.catalog.GetProduct(ctx, a.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
	assert.Zero(t, stored.TotalStockOut)

	orders, err := f.orders.List(ctx, u, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrderUnknownProducts(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items: []ItemInput{{ProductID: "fantasma", Quantity: 1}},
	})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, fmt.Sprint(verr.Fields["items"]), "fantasma")
}

func TestCreateOrderMalformedProductID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Broca", "8.00", "3.00", 4)
	u := customer("u-1")

	_, err := f.orders.Create(ctx, u, CreateOrderInput{
		Items: []ItemInput{{ProductID: p.ID, Quantity: 1}, {ProductID: "abc", Quantity: 1}, {ProductID: "abc", Quantity: 2}},
	})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "Produtos não encontrados ou inativos: abc", verr.Fields["items"])

	stored, err := f.catalog.GetProduct(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Stock)
}

func TestCreateOrderRejectsInvalidQuantity(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	_, err := f.orders.Create(context.Background(), customer("u-1"), CreateOrderInput{
		Items: []ItemInput{{ProductID: p.ID, Quantity: 0}},
	})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "items")
}

func TestCreateOrderAggregatesDuplicateItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Lixa", "2.50", "1.00", 10)
	u := customer("u-1")

	_, _, err := f.carts.AddItem(ctx, u, p.ID, 1)
	require.NoError(t, err)

	o, err := f.orders.Create(ctx, u, CreateOrderInput{
		Items: []ItemInput{{ProductID: p.ID, Quantity: 2}, {ProductID: p.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 5, o.Items[0].Quantity)
	assert.Equal(t, "12.50", o.TotalPrice.StringFixed(2))

	// pedido com itens explícitos não mexe no carrinho
	c, err := f.carts.GetCart(ctx, u)
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestCreateOrderLastUnitRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Última unidade", "99.00", "50.00", 1)

	const buyers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.orders.Create(ctx, customer(fmt.Sprintf("u-%d", i)), CreateOrderInput{
				Items: []ItemInput{{ProductID: p.ID, Quantity: 1}},
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			if _, ok := validation.As(err); ok {
				rejected++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, buyers-1, rejected)

	stored, err := f.catalog.GetProduct(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Zero(t, stored.Stock)
	assert.Equal(t, 1, stored.TotalStockOut)
}

func TestOrderVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	o, err := f.orders.Create(ctx, customer("u-1"), CreateOrderInput{Items: []ItemInput{{ProductID: p.ID, Quantity: 1}}})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, customer("u-2"), CreateOrderInput{Items: []ItemInput{{ProductID: p.ID, Quantity: 1}}})
	require.NoError(t, err)

	_, err = f.orders.Get(ctx, customer("u-2"), o.ID)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	staff := auth.Principal{UserID: "admin", IsStaff: true}
	got, err := f.orders.Get(ctx, staff, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)

	mine, err := f.orders.List(ctx, customer("u-1"), 0, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := f.orders.List(ctx, staff, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderStatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Caixa", "10.00", "5.00", 5)

	o, err := f.orders.Create(ctx, customer("u-1"), CreateOrderInput{Items: []ItemInput{{ProductID: p.ID, Quantity: 2}}})
	require.NoError(t, err)

	updated, err := f.orders.UpdateStatus(ctx, o.ID, order.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, updated.Status)
	assert.Equal(t, "20.00", updated.TotalPrice.StringFixed(2))

	_, err = f.orders.UpdateStatus(ctx, o.ID, order.Status("lost"))
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "status")

	_, err = f.orders.UpdateStatus(ctx, o.ID, order.StatusCanceled)
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, o.ID, order.StatusShipped)
	_, ok = validation.As(err)
	assert.True(t, ok)

	_, err = f.orders.UpdateStatus(ctx, "nao-existe", order.StatusPaid)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
