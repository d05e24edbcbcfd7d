package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ferramentas-eletricas", Slugify("  Ferramentas Elétricas "))
	assert.Equal(t, "tools", Slugify("Tools!"))
	assert.Equal(t, "a-b-c", Slugify("a -- b__c"))
	assert.Equal(t, "", Slugify("???"))
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Ração & Petiscos", "")
	require.NoError(t, err)
	assert.Equal(t, "racao-petiscos", c.Slug)

	c, err = NewCategory("Tools", "My Tools")
	require.NoError(t, err)
	assert.Equal(t, "my-tools", c.Slug)

	_, err = NewCategory("  ", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewProductCountsInitialStock(t *testing.T) {
	p, err := NewProduct("Drill", decimal.RequireFromString("100000.00"), decimal.RequireFromString("70000.00"), 50, "cat")
	require.NoError(t, err)

	assert.Equal(t, 50, p.TotalStockIn)
	assert.Equal(t, 0, p.TotalStockOut)
	assert.True(t, p.IsActive)
	assert.True(t, p.ProfitPerUnit().Equal(decimal.RequireFromString("30000")))
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("X", decimal.NewFromInt(-1), decimal.Zero, 1, "cat")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("X", decimal.NewFromInt(1), decimal.Zero, -1, "cat")
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestApplyStockChange(t *testing.T) {
	p := &Product{Stock: 10, TotalStockIn: 10}

	require.NoError(t, p.ApplyStockChange(15))
	assert.Equal(t, 15, p.TotalStockIn)

	require.NoError(t, p.ApplyStockChange(4))
	assert.Equal(t, 4, p.Stock)
	assert.Equal(t, 15, p.TotalStockIn)

	require.NoError(t, p.Restock(6))
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, 21, p.TotalStockIn)

	assert.ErrorIs(t, p.Restock(0), ErrInvalidQuantity)
}

func TestApplySale(t *testing.T) {
	p := &Product{Price: decimal.NewFromInt(10), CostPrice: decimal.NewFromInt(4), Stock: 3, TotalStockIn: 3}

	require.NoError(t, p.ApplySale(2))
	assert.Equal(t, 1, p.Stock)
	assert.Equal(t, 2, p.TotalStockOut)
	assert.True(t, p.TotalProfit().Equal(decimal.NewFromInt(12)))

	assert.ErrorIs(t, p.ApplySale(2), ErrInvalidStock)
	assert.Equal(t, 3, p.Stock+p.TotalStockOut)
}
