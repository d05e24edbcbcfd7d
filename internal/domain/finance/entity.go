package finance

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Limites dos parâmetros do resumo financeiro
const (
	DefaultChartDays = 30
	MaxChartDays     = 365
	DefaultTopLimit  = 10
	MaxTopLimit      = 100

	DayLayout   = "2006-01-02"
	LabelLayout = "02-01"
)

var hundred = decimal.NewFromInt(100)

// PeriodWindow é uma janela móvel de receita
type PeriodWindow struct {
	Label string
	Days  int // 0 significa todo o histórico
}

// RevenueWindows são as janelas apresentadas em revenue_periods, nesta ordem
var RevenueWindows = []PeriodWindow{
	{Label: "1 dia", Days: 1},
	{Label: "7 dias", Days: 7},
	{Label: "30 dias", Days: 30},
	{Label: "90 dias", Days: 90},
	{Label: "Total", Days: 0},
}

// SalesTotals são os agregados de pedidos não cancelados
type SalesTotals struct {
	Revenue    decimal.Decimal `db:"revenue"`
	Cost       decimal.Decimal `db:"cost"`
	OrderCount int             `db:"order_count"`
}

// DailyRevenue é a receita de um dia no fuso da aplicação
type DailyRevenue struct {
	Day     string          `db:"day"`
	Revenue decimal.Decimal `db:"revenue"`
}

// ProductSales são as vendas agregadas de um produto
type ProductSales struct {
	ProductID    string          `db:"product_id"`
	Name         string          `db:"name"`
	QuantitySold int             `db:"quantity_sold"`
	Revenue      decimal.Decimal `db:"revenue"`
	Cost         decimal.Decimal `db:"cost"`
}

// Period é o valor de uma janela de receita
type Period struct {
	Label string
	Value decimal.Decimal
}

// ChartPoint é um ponto do gráfico diário
type ChartPoint struct {
	Date    string
	Label   string
	Revenue decimal.Decimal
	Percent float64
}

// ProductProfit é uma linha do relatório de lucro por produto
type ProductProfit struct {
	ProductID     string
	Name          string
	QuantitySold  int
	Revenue       decimal.Decimal
	Cost          decimal.Decimal
	Profit        decimal.Decimal
	MarginPercent decimal.Decimal
}

// Overview é o resumo financeiro completo
type Overview struct {
	TotalRevenue      decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalCost         decimal.Decimal
	GrossProfit       decimal.Decimal
	NetProfit         decimal.Decimal
	AverageCheck      decimal.Decimal
	ProfitPercent     decimal.Decimal
	TotalOrders       int
	RevenuePeriods    []Period
	DailyRevenueChart []ChartPoint
	TopProducts       []ProductProfit
	ProductProfit     []ProductProfit
}

// ParseLimit lê um inteiro positivo limitado a max. Valores ausentes ou inválidos usam def.
func ParseLimit(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// NewOverview calcula os campos derivados a partir dos agregados
func NewOverview(totals SalesTotals, totalExpense decimal.Decimal) *Overview {
	gross := totals.Revenue.Sub(totals.Cost)
	net := gross.Sub(totalExpense)

	averageCheck := decimal.Zero
	if totals.OrderCount > 0 {
		averageCheck = totals.Revenue.Div(decimal.NewFromInt(int64(totals.OrderCount)))
	}
	profitPercent := decimal.Zero
	if totals.Revenue.IsPositive() {
		profitPercent = net.Div(totals.Revenue).Mul(hundred)
	}

	return &Overview{
		TotalRevenue:  totals.Revenue,
		TotalExpense:  totalExpense,
		TotalCost:     totals.Cost,
		GrossProfit:   gross,
		NetProfit:     net,
		AverageCheck:  averageCheck,
		ProfitPercent: profitPercent,
		TotalOrders:   totals.OrderCount,
	}
}

// ChartStart retorna o primeiro dia do gráfico (meia-noite local)
func ChartStart(today time.Time, days int) time.Time {
	y, m, d := today.Date()
	return time.Date(y, m, d-(days-1), 0, 0, 0, 0, today.Location())
}

// BuildDailyChart gera exatamente days pontos terminando em today, preenchendo dias sem venda com zero
func BuildDailyChart(rows []DailyRevenue, today time.Time, days int) []ChartPoint {
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[row.Day] = byDay[row.Day].Add(row.Revenue)
	}

	start := ChartStart(today, days)
	points := make([]ChartPoint, 0, days)
	maxRevenue := decimal.Zero
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(DayLayout)
		revenue := byDay[key]
		if revenue.GreaterThan(maxRevenue) {
			maxRevenue = revenue
		}
		points = append(points, ChartPoint{
			Date:    key,
			Label:   day.Format(LabelLayout),
			Revenue: revenue,
		})
	}

	if maxRevenue.IsPositive() {
		for i := range points {
			points[i].Percent = points[i].Revenue.Div(maxRevenue).Mul(hundred).InexactFloat64()
		}
	}
	return points
}

// BuildProductProfit calcula lucro e margem por produto, ordenado por receita decrescente
func BuildProductProfit(rows []ProductSales) []ProductProfit {
	out := make([]ProductProfit, 0, len(rows))
	for _, row := range rows {
		profit := row.Revenue.Sub(row.Cost)
		margin := decimal.Zero
		if row.Revenue.IsPositive() {
			margin = profit.Div(row.Revenue).Mul(hundred)
		}
		out = append(out, ProductProfit{
			ProductID:     row.ProductID,
			Name:          row.Name,
			QuantitySold:  row.QuantitySold,
			Revenue:       row.Revenue,
			Cost:          row.Cost,
			Profit:        profit,
			MarginPercent: margin,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

// Top retorna as primeiras limit linhas
func Top(rows []ProductProfit, limit int) []ProductProfit {
	if limit < len(rows) {
		return rows[:limit]
	}
	return rows
}
