package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 30, ParseLimit("", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 30, ParseLimit("abc", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 30, ParseLimit("0", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 30, ParseLimit("-5", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 7, ParseLimit("7", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 365, ParseLimit("9999", DefaultChartDays, MaxChartDays))
	assert.Equal(t, 100, ParseLimit("500", DefaultTopLimit, MaxTopLimit))
}

func TestNewOverview(t *testing.T) {
	o := NewOverview(SalesTotals{Revenue: dec("400.00"), Cost: dec("250.00"), OrderCount: 1}, dec("50.00"))

	assert.True(t, o.GrossProfit.Equal(dec("150")))
	assert.True(t, o.NetProfit.Equal(dec("100")))
	assert.True(t, o.AverageCheck.Equal(dec("400")))
	assert.True(t, o.ProfitPercent.Equal(dec("25")))
}

func TestNewOverviewWithoutSales(t *testing.T) {
	o := NewOverview(SalesTotals{}, dec("10.00"))

	assert.True(t, o.AverageCheck.IsZero())
	assert.True(t, o.ProfitPercent.IsZero())
	assert.True(t, o.NetProfit.Equal(dec("-10")))
}

func TestBuildDailyChart(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)
	today := time.Date(2026, 3, 2, 15, 0, 0, 0, loc)

	rows := []DailyRevenue{
		{Day: "2026-02-28", Revenue: dec("50.00")},
		{Day: "2026-03-02", Revenue: dec("200.00")},
		{Day: "2026-01-01", Revenue: dec("999.00")},
	}
	points := BuildDailyChart(rows, today, 4)

	require.Len(t, points, 4)
	assert.Equal(t, "2026-02-27", points[0].Date)
	assert.Equal(t, "27-02", points[0].Label)
	assert.Equal(t, "2026-03-02", points[3].Date)
	assert.Equal(t, "02-03", points[3].Label)
	assert.Equal(t, 25.0, points[1].Percent)
	assert.Equal(t, 100.0, points[3].Percent)
	assert.True(t, points[2].Revenue.IsZero())
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Percent, 0.0)
		assert.LessOrEqual(t, p.Percent, 100.0)
	}
}

func TestBuildDailyChartAlwaysHasRequestedPoints(t *testing.T) {
	today := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	for _, days := range []int{1, 30, 365} {
		points := BuildDailyChart(nil, today, days)
		require.Len(t, points, days)
		assert.Equal(t, "2026-12-31", points[days-1].Date)
		for _, p := range points {
			assert.Zero(t, p.Percent)
		}
	}
}

func TestBuildProductProfit(t *testing.T) {
	rows := BuildProductProfit([]ProductSales{
		{ProductID: "2", Name: "Saw", QuantitySold: 2, Revenue: dec("200.00"), Cost: dec("120.00")},
		{ProductID: "3", Name: "Tape", QuantitySold: 1, Revenue: dec("0"), Cost: dec("0")},
		{ProductID: "1", Name: "Drill", QuantitySold: 1, Revenue: dec("200.00"), Cost: dec("130.00")},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "Drill", rows[0].Name)
	assert.Equal(t, "Saw", rows[1].Name)
	assert.Equal(t, "Tape", rows[2].Name)
	assert.True(t, rows[0].Profit.Equal(dec("70")))
	assert.True(t, rows[0].MarginPercent.Equal(dec("35")))
	assert.True(t, rows[2].MarginPercent.IsZero())

	assert.Len(t, Top(rows, 2), 2)
	assert.Len(t, Top(rows, 10), 3)
}
