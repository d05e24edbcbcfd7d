package dto

import (
	"github.com/hugohenrick/loja-api/internal/domain/finance"
)

// RevenuePeriodResponse é a receita de uma janela móvel
type RevenuePeriodResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartPointResponse é um ponto do gráfico diário de receita
type ChartPointResponse struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Revenue string  `json:"revenue"`
	Percent float64 `json:"percent"`
}

// ProductProfitResponse é uma linha do relatório de lucro por produto
type ProductProfitResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	QuantitySold  int    `json:"quantity_sold"`
	Revenue       string `json:"revenue"`
	Cost          string `json:"cost"`
	Profit        string `json:"profit"`
	MarginPercent string `json:"margin_percent"`
}

// FinanceOverviewResponse é o resumo financeiro
type FinanceOverviewResponse struct {
	TotalRevenue      string                  `json:"total_revenue"`
	TotalExpense      string                  `json:"total_expense"`
	TotalCost         string                  `json:"total_cost"`
	GrossProfit       string                  `json:"gross_profit"`
	NetProfit         string                  `json:"net_profit"`
	AverageCheck      string                  `json:"average_check"`
	ProfitPercent     string                  `json:"profit_percent"`
	TotalOrders       int                     `json:"total_orders"`
	RevenuePeriods    []RevenuePeriodResponse `json:"revenue_periods"`
	DailyRevenueChart []ChartPointResponse    `json:"daily_revenue_chart"`
	TopProducts       []ProductProfitResponse `json:"top_products"`
	ProductProfit     []ProductProfitResponse `json:"product_profit"`
}

// ToFinanceOverviewResponse converte o resumo do domínio para DTO de resposta
func ToFinanceOverviewResponse(o *finance.Overview) FinanceOverviewResponse {
	periods := make([]RevenuePeriodResponse, len(o.RevenuePeriods))
	for i, p := range o.RevenuePeriods {
		periods[i] = RevenuePeriodResponse{Label: p.Label, Value: Money(p.Value)}
	}
	chart := make([]ChartPointResponse, len(o.DailyRevenueChart))
	for i, p := range o.DailyRevenueChart {
		chart[i] = ChartPointResponse{Date: p.Date, Label: p.Label, Revenue: Money(p.Revenue), Percent: p.Percent}
	}
	return FinanceOverviewResponse{
		TotalRevenue:      Money(o.TotalRevenue),
		TotalExpense:      Money(o.TotalExpense),
		TotalCost:         Money(o.TotalCost),
		GrossProfit:       Money(o.GrossProfit),
		NetProfit:         Money(o.NetProfit),
		AverageCheck:      Money(o.AverageCheck),
		ProfitPercent:     Money(o.ProfitPercent),
		TotalOrders:       o.TotalOrders,
		RevenuePeriods:    periods,
		DailyRevenueChart: chart,
		TopProducts:       toProductProfit(o.TopProducts),
		ProductProfit:     toProductProfit(o.ProductProfit),
	}
}

func toProductProfit(rows []finance.ProductProfit) []ProductProfitResponse {
	out := make([]ProductProfitResponse, len(rows))
	for i, r := range rows {
		out[i] = ProductProfitResponse{
			ProductID:     r.ProductID,
			Name:          r.Name,
			QuantitySold:  r.QuantitySold,
			Revenue:       Money(r.Revenue),
			Cost:          Money(r.Cost),
			Profit:        Money(r.Profit),
			MarginPercent: Money(r.MarginPercent),
		}
	}
	return out
}
