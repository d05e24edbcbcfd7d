package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/hugohenrick/loja-api/internal/domain/expense"
)

type expenseRepo struct{ s *Store }

func (r expenseRepo) Create(_ context.Context, e *expense.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r expenseRepo) FindByID(_ context.Context, id string) (*expense.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.expenses[id]
	if !ok {
		return nil, expense.ErrExpenseNotFound
	}
	cp := *e
	return &cp, nil
}

func (r expenseRepo) List(_ context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*expense.Expense, 0)
	for _, e := range r.s.expenses {
		if f.ExpenseDate != nil && e.ExpenseDate.Format(expense.DateLayout) != f.ExpenseDate.Format(expense.DateLayout) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Note), search) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}

	column, desc := f.OrderBy()
	less := func(a, b *expense.Expense) int {
		switch column {
		case "amount":
			return a.Amount.Cmp(b.Amount)
		case "created_at":
			return a.CreatedAt.Compare(b.CreatedAt)
		default:
			return a.ExpenseDate.Compare(b.ExpenseDate)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if c == 0 {
			return out[i].ID < out[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

func (r expenseRepo) Update(_ context.Context, e *expense.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.expenses[e.ID]; !ok {
		return expense.ErrExpenseNotFound
	}
	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r expenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.expenses[id]; !ok {
		return expense.ErrExpenseNotFound
	}
	delete(r.s.expenses, id)
	return nil
}
