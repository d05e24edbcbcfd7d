package service

import (
	"context"
	"testing"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemDeduplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Furadeira", "100.00", "60.00", 5)
	u := customer("u-1")

	c, created, err := f.carts.AddItem(ctx, u, p.ID, 1)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, c.Items, 1)

	c, created, err = f.carts.AddItem(ctx, u, p.ID, 2)
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, "300.00", c.TotalPrice().StringFixed(2))
}

func TestCartAddItemRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Serrote", "50.00", "20.00", 5)
	u := customer("u-1")

	_, _, err := f.carts.AddItem(ctx, u, p.ID, 0)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "quantity")

	_, _, err = f.carts.AddItem(ctx, u, "nao-existe", 1)
	verr, ok = validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "product")

	inactive := false
	_, err = f.catalog.UpdateProduct(ctx, p.ID, ProductInput{IsActive: &inactive})
	require.NoError(t, err)

	_, _, err = f.carts.AddItem(ctx, u, p.ID, 1)
	verr, ok = validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "product")
}

func TestCartItemsAreScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Martelo", "30.00", "10.00", 5)

	c, _, err := f.carts.AddItem(ctx, customer("u-1"), p.ID, 1)
	require.NoError(t, err)
	itemID := c.Items[0].ID

	item, err := f.carts.GetItem(ctx, customer("u-1"), itemID)
	require.NoError(t, err)
	assert.Equal(t, "Martelo", item.ProductName)

	_, err = f.carts.GetItem(ctx, customer("u-2"), itemID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)

	_, err = f.carts.RemoveItem(ctx, customer("u-2"), itemID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestCartUpdateRemoveAndClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "Alicate", "20.00", "5.00", 5)
	b := f.product(t, "Trena", "15.00", "5.00", 5)
	u := customer("u-1")

	_, _, err := f.carts.AddItem(ctx, u, a.ID, 1)
	require.NoError(t, err)
	c, _, err := f.carts.AddItem(ctx, u, b.ID, 1)
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	_, err = f.carts.UpdateItem(ctx, u, c.Items[0].ID, 0)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "quantity")

	updatedID, removedID := c.Items[0].ID, c.Items[1].ID
	c, err = f.carts.UpdateItem(ctx, u, updatedID, 4)
	require.NoError(t, err)
	for _, it := range c.Items {
		if it.ID == updatedID {
			assert.Equal(t, 4, it.Quantity)
		}
	}

	c, err = f.carts.RemoveItem(ctx, u, removedID)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, updatedID, c.Items[0].ID)

	c, err = f.carts.Clear(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.True(t, c.TotalPrice().IsZero())
}
