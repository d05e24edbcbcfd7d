package expense

import (
	"context"
	"strings"
	"time"
)

// Campos aceitos em ListFilter.Ordering
var orderingFields = map[string]bool{
	"expense_date": true,
	"created_at":   true,
	"amount":       true,
}

// ListFilter restringe e ordena a listagem de despesas
type ListFilter struct {
	ExpenseDate *time.Time
	Search      string
	// Ordering aceita expense_date, created_at ou amount, com prefixo "-" para ordem decrescente
	Ordering string
}

// OrderBy retorna coluna e direção validadas. Valores desconhecidos usam -expense_date.
func (f ListFilter) OrderBy() (column string, desc bool) {
	field := strings.TrimSpace(f.Ordering)
	desc = strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")
	if !orderingFields[field] {
		return "expense_date", true
	}
	return field, desc
}

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filter ListFilter) ([]*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
}
