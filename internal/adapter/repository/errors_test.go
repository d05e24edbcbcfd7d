package repository

import (
	"context"
	"testing"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f"

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{validUUID, true},
		{"6F1C2D3E-4A5B-4C6D-8E7F-9A0B1C2D3E4F", true},
		{"", false},
		{"abc", false},
		{"42", false},
		{"6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validID(tt.id), tt.id)
	}
}

func TestFilterValidIDs(t *testing.T) {
	assert.Equal(t, []string{validUUID}, filterValidIDs([]string{"abc", validUUID, ""}))
	assert.Empty(t, filterValidIDs([]string{"abc"}))
}

// Os repositórios abaixo não têm pool: IDs malformados precisam ser resolvidos antes de qualquer consulta.
func TestMalformedIDsAreNotFound(t *testing.T) {
	ctx := context.Background()

	products := NewProductRepository(nil)
	_, err := products.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	_, err = products.Restock(ctx, "abc", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.ErrorIs(t, products.Delete(ctx, "abc"), catalog.ErrProductNotFound)
	assert.ErrorIs(t, products.Update(ctx, &catalog.Product{ID: "abc", CategoryID: validUUID}), catalog.ErrProductNotFound)
	assert.ErrorIs(t, products.Update(ctx, &catalog.Product{ID: validUUID, CategoryID: "abc"}), catalog.ErrCategoryNotFound)
	assert.ErrorIs(t, products.Create(ctx, &catalog.Product{ID: validUUID, CategoryID: "abc"}), catalog.ErrCategoryNotFound)

	listed, err := products.List(ctx, catalog.ProductFilter{CategoryID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, listed)

	categories := NewCategoryRepository(nil)
	_, err = categories.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
	assert.ErrorIs(t, categories.Update(ctx, &catalog.Category{ID: "abc"}), catalog.ErrCategoryNotFound)
	assert.ErrorIs(t, categories.Delete(ctx, "abc"), catalog.ErrCategoryNotFound)

	carts := NewCartRepository(nil)
	_, err = carts.FindItem(ctx, validUUID, "abc")
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
	_, err = carts.AddItem(ctx, validUUID, "abc", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.ErrorIs(t, carts.UpdateItemQuantity(ctx, validUUID, "abc", 1), cart.ErrItemNotFound)
	assert.ErrorIs(t, carts.RemoveItem(ctx, validUUID, "abc"), cart.ErrItemNotFound)

	orders := NewOrderRepository(nil)
	_, err = orders.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.ErrorIs(t, orders.UpdateStatus(ctx, "abc", order.StatusPaid), order.ErrOrderNotFound)
	_, err = orders.RecalcTotal(ctx, "abc")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	expenses := NewExpenseRepository(nil)
	_, err = expenses.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
	assert.ErrorIs(t, expenses.Update(ctx, &expense.Expense{ID: "abc"}), expense.ErrExpenseNotFound)
	assert.ErrorIs(t, expenses.Delete(ctx, "abc"), expense.ErrExpenseNotFound)

	users := NewUserRepository(nil)
	_, err = users.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, users.Update(ctx, &user.User{ID: "abc"}), user.ErrUserNotFound)
}

func TestLockActiveProductsSkipsMalformedIDs(t *testing.T) {
	tx := &orderTx{}

	products, err := tx.LockActiveProducts(context.Background(), []string{"abc", "fantasma"})
	require.NoError(t, err)
	assert.Empty(t, products)
}
