package service

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceOverview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)

	drill := f.product(t, "Drill", "100.00", "50.00", 10)
	saw := f.product(t, "Saw", "200.00", "150.00", 10)
	hammer := f.product(t, "Hammer", "1000.00", "1.00", 10)

	_, err = f.orders.Create(ctx, customer("u-1"), CreateOrderInput{
		Items: []ItemInput{{ProductID: drill.ID, Quantity: 2}, {ProductID: saw.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	canceled, err := f.orders.Create(ctx, customer("u-2"), CreateOrderInput{
		Items: []ItemInput{{ProductID: hammer.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, canceled.ID, order.StatusCanceled)
	require.NoError(t, err)

	expenses := NewExpenseService(f.store.Expenses(), loc, logger.NewNop())
	title := "Aluguel"
	_, err = expenses.Create(ctx, ExpenseInput{Title: &title, Amount: decPtr("50.00")})
	require.NoError(t, err)

	svc := NewFinanceService(f.store.Finance(), loc, logger.NewNop())
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }

	ov, err := svc.Overview(ctx, 7, 1)
	require.NoError(t, err)

	assert.Equal(t, "400.00", ov.TotalRevenue.StringFixed(2))
	assert.Equal(t, "250.00", ov.TotalCost.StringFixed(2))
	assert.Equal(t, "150.00", ov.GrossProfit.StringFixed(2))
	assert.Equal(t, "50.00", ov.TotalExpense.StringFixed(2))
	assert.Equal(t, "100.00", ov.NetProfit.StringFixed(2))
	assert.Equal(t, "400.00", ov.AverageCheck.StringFixed(2))
	assert.Equal(t, "25.00", ov.ProfitPercent.StringFixed(2))
	assert.Equal(t, 1, ov.TotalOrders)

	require.Len(t, ov.RevenuePeriods, 5)
	labels := make([]string, 0, 5)
	for _, p := range ov.RevenuePeriods {
		labels = append(labels, p.Label)
		assert.Equal(t, "400.00", p.Value.StringFixed(2), p.Label)
	}
	assert.Equal(t, []string{"1 dia", "7 dias", "30 dias", "90 dias", "Total"}, labels)

	require.Len(t, ov.DailyRevenueChart, 7)
	last := ov.DailyRevenueChart[6]
	assert.Equal(t, "2026-03-02", last.Date)
	assert.Equal(t, "02-03", last.Label)
	assert.Equal(t, "400.00", last.Revenue.StringFixed(2))
	assert.Equal(t, 100.0, last.Percent)
	assert.Zero(t, ov.DailyRevenueChart[0].Percent)

	require.Len(t, ov.TopProducts, 1)
	assert.Equal(t, "Drill", ov.TopProducts[0].Name)

	require.Len(t, ov.ProductProfit, 2)
	assert.Equal(t, "Drill", ov.ProductProfit[0].Name)
	assert.Equal(t, 2, ov.ProductProfit[0].QuantitySold)
	assert.Equal(t, "100.00", ov.ProductProfit[0].Profit.StringFixed(2))
	assert.Equal(t, "50.00", ov.ProductProfit[0].MarginPercent.StringFixed(2))
	assert.Equal(t, "Saw", ov.ProductProfit[1].Name)
	assert.Equal(t, "50.00", ov.ProductProfit[1].Profit.StringFixed(2))
}

func TestFinanceOverviewClampsParameters(t *testing.T) {
	f := newFixture(t)
	svc := NewFinanceService(f.store.Finance(), time.UTC, logger.NewNop())
	svc.now = func() time.Time { return fixedNow }

	ov, err := svc.Overview(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, ov.DailyRevenueChart, 30)
	assert.Equal(t, 0, ov.TotalOrders)
	assert.True(t, ov.AverageCheck.IsZero())

	ov, err = svc.Overview(context.Background(), 1000, 1000)
	require.NoError(t, err)
	assert.Len(t, ov.DailyRevenueChart, 365)
}
