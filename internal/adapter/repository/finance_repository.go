package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// FinanceRepository executa as consultas agregadas do resumo financeiro via sqlx
type FinanceRepository struct {
	db *sqlx.DB
}

// NewFinanceRepository cria uma nova instância de FinanceRepository
func NewFinanceRepository(db *sqlx.DB) finance.Repository {
	return &FinanceRepository{db: db}
}

// SalesTotals implementa finance.Repository.SalesTotals
func (r *FinanceRepository) SalesTotals(ctx context.Context) (finance.SalesTotals, error) {
	query := `
		WITH sales AS (
			SELECT
				COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue,
				COALESCE(SUM(oi.cost_price * oi.quantity), 0) AS cost
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.status <> $1
		)
		SELECT
			sales.revenue,
			sales.cost,
			(SELECT COUNT(*) FROM orders WHERE status <> $1) AS order_count
		FROM sales`

	var totals finance.SalesTotals
	if err := r.db.GetContext(ctx, &totals, query, string(order.StatusCanceled)); err != nil {
		return finance.SalesTotals{}, fmt.Errorf("erro ao somar vendas: %w", err)
	}
	return totals, nil
}

// RevenueSince implementa finance.Repository.RevenueSince
func (r *FinanceRepository) RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(oi.price * oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> $1 AND o.created_at >= $2`

	var revenue decimal.Decimal
	if err := r.db.GetContext(ctx, &revenue, query, string(order.StatusCanceled), since); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita do período: %w", err)
	}
	return revenue, nil
}

// DailyRevenue implementa finance.Repository.DailyRevenue
func (r *FinanceRepository) DailyRevenue(ctx context.Context, from time.Time, loc *time.Location) ([]finance.DailyRevenue, error) {
	query := `
		SELECT
			to_char((o.created_at AT TIME ZONE $3)::date, 'YYYY-MM-DD') AS day,
			COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> $1 AND o.created_at >= $2
		GROUP BY 1
		ORDER BY 1`

	rows := make([]finance.DailyRevenue, 0)
	if err := r.db.SelectContext(ctx, &rows, query, string(order.StatusCanceled), from, loc.String()); err != nil {
		return nil, fmt.Errorf("erro ao agrupar receita diária: %w", err)
	}
	return rows, nil
}

// ProductSales implementa finance.Repository.ProductSales
func (r *FinanceRepository) ProductSales(ctx context.Context) ([]finance.ProductSales, error) {
	query := `
		SELECT
			oi.product_id::text AS product_id,
			p.name AS name,
			COALESCE(SUM(oi.quantity), 0) AS quantity_sold,
			COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue,
			COALESCE(SUM(oi.cost_price * oi.quantity), 0) AS cost
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status <> $1
		GROUP BY oi.product_id, p.name
		ORDER BY revenue DESC, p.name`

	rows := make([]finance.ProductSales, 0)
	if err := r.db.SelectContext(ctx, &rows, query, string(order.StatusCanceled)); err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por produto: %w", err)
	}
	return rows, nil
}

// TotalExpense implementa finance.Repository.TotalExpense
func (r *FinanceRepository) TotalExpense(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, "SELECT COALESCE(SUM(amount), 0) FROM expenses"); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar despesas: %w", err)
	}
	return total, nil
}
