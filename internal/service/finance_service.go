package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// FinanceService monta o resumo financeiro a partir das consultas agregadas
type FinanceService struct {
	repo finance.Repository
	loc  *time.Location
	log  logger.Logger
	now  func() time.Time
}

// NewFinanceService cria uma nova instância de FinanceService.
// loc define o dia local usado no gráfico diário.
func NewFinanceService(repo finance.Repository, loc *time.Location, log logger.Logger) *FinanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &FinanceService{repo: repo, loc: loc, log: log, now: time.Now}
}

// Overview calcula o resumo financeiro. As consultas independentes rodam em paralelo.
func (s *FinanceService) Overview(ctx context.Context, chartDays, topLimit int) (*finance.Overview, error) {
	chartDays = clamp(chartDays, finance.DefaultChartDays, finance.MaxChartDays)
	topLimit = clamp(topLimit, finance.DefaultTopLimit, finance.MaxTopLimit)

	now := s.now().In(s.loc)

	var (
		totals       finance.SalesTotals
		totalExpense decimal.Decimal
		daily        []finance.DailyRevenue
		sales        []finance.ProductSales
	)
	periods := make([]finance.Period, len(finance.RevenueWindows))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.repo.SalesTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalExpense, err = s.repo.TotalExpense(gctx)
		return err
	})
	g.Go(func() (err error) {
		daily, err = s.repo.DailyRevenue(gctx, finance.ChartStart(now, chartDays), s.loc)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.repo.ProductSales(gctx)
		return err
	})
	for i, w := range finance.RevenueWindows {
		periods[i].Label = w.Label
		if w.Days == 0 {
			continue
		}
		i, w := i, w
		g.Go(func() error {
			value, err := s.repo.RevenueSince(gctx, now.AddDate(0, 0, -w.Days))
			periods[i].Value = value
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Error("erro ao calcular resumo financeiro", "error", err)
		return nil, fmt.Errorf("erro ao calcular resumo financeiro: %w", err)
	}

	for i, w := range finance.RevenueWindows {
		if w.Days == 0 {
			periods[i].Value = totals.Revenue
		}
	}

	overview := finance.NewOverview(totals, totalExpense)
	overview.RevenuePeriods = periods
	overview.DailyRevenueChart = finance.BuildDailyChart(daily, now, chartDays)
	overview.ProductProfit = finance.BuildProductProfit(sales)
	overview.TopProducts = finance.Top(overview.ProductProfit, topLimit)
	return overview, nil
}

func clamp(n, def, max int) int {
	if n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
