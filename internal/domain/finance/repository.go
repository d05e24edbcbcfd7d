package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository expõe as consultas agregadas de leitura usadas pelo resumo financeiro.
// Pedidos cancelados nunca entram nos agregados de vendas.
type Repository interface {
	// SalesTotals soma receita e custo dos itens e conta os pedidos
	SalesTotals(ctx context.Context) (SalesTotals, error)

	// RevenueSince soma a receita de pedidos criados a partir de since
	RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)

	// DailyRevenue agrupa a receita por dia local a partir de from
	DailyRevenue(ctx context.Context, from time.Time, loc *time.Location) ([]DailyRevenue, error)

	// ProductSales agrega quantidade, receita e custo por produto
	ProductSales(ctx context.Context) ([]ProductSales, error)

	// TotalExpense soma todas as despesas
	TotalExpense(ctx context.Context) (decimal.Decimal, error)
}
