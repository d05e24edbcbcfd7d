package memory

import (
	"context"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/shopspring/decimal"
)

type financeRepo struct{ s *Store }

// salesItems percorre os itens de pedidos não cancelados
func (s *Store) salesItems(fn func(o *order.Order, it *order.Item)) {
	for _, it := range s.orderItems {
		o, ok := s.orders[it.OrderID]
		if !ok || o.Status == order.StatusCanceled {
			continue
		}
		fn(o, it)
	}
}

func (r financeRepo) SalesTotals(_ context.Context) (finance.SalesTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	totals := finance.SalesTotals{Revenue: decimal.Zero, Cost: decimal.Zero}
	r.s.salesItems(func(_ *order.Order, it *order.Item) {
		qty := decimal.NewFromInt(int64(it.Quantity))
		totals.Revenue = totals.Revenue.Add(it.Price.Mul(qty))
		totals.Cost = totals.Cost.Add(it.CostPrice.Mul(qty))
	})
	for _, o := range r.s.orders {
		if o.Status != order.StatusCanceled {
			totals.OrderCount++
		}
	}
	return totals, nil
}

func (r financeRepo) RevenueSince(_ context.Context, since time.Time) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := decimal.Zero
	r.s.salesItems(func(o *order.Order, it *order.Item) {
		if !o.CreatedAt.Before(since) {
			total = total.Add(it.LineTotal())
		}
	})
	return total, nil
}

func (r financeRepo) DailyRevenue(_ context.Context, from time.Time, loc *time.Location) ([]finance.DailyRevenue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byDay := map[string]decimal.Decimal{}
	r.s.salesItems(func(o *order.Order, it *order.Item) {
		if o.CreatedAt.Before(from) {
			return
		}
		day := o.CreatedAt.In(loc).Format(finance.DayLayout)
		byDay[day] = byDay[day].Add(it.LineTotal())
	})

	out := make([]finance.DailyRevenue, 0, len(byDay))
	for day, revenue := range byDay {
		out = append(out, finance.DailyRevenue{Day: day, Revenue: revenue})
	}
	return out, nil
}

func (r financeRepo) ProductSales(_ context.Context) ([]finance.ProductSales, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byProduct := map[string]*finance.ProductSales{}
	r.s.salesItems(func(_ *order.Order, it *order.Item) {
		row, ok := byProduct[it.ProductID]
		if !ok {
			row = &finance.ProductSales{ProductID: it.ProductID, Revenue: decimal.Zero, Cost: decimal.Zero}
			if p, found := r.s.products[it.ProductID]; found {
				row.Name = p.Name
			}
			byProduct[it.ProductID] = row
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		row.QuantitySold += it.Quantity
		row.Revenue = row.Revenue.Add(it.Price.Mul(qty))
		row.Cost = row.Cost.Add(it.CostPrice.Mul(qty))
	})

	out := make([]finance.ProductSales, 0, len(byProduct))
	for _, row := range byProduct {
		out = append(out, *row)
	}
	return out, nil
}

func (r financeRepo) TotalExpense(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := decimal.Zero
	for _, e := range r.s.expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}
