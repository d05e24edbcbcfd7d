package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ExpenseInput são os dados de escrita de uma despesa. Campos nil mantêm o valor atual na atualização.
type ExpenseInput struct {
	Title       *string
	Amount      *decimal.Decimal
	ExpenseDate *time.Time
	Note        *string
}

// ExpenseService implementa o cadastro de despesas
type ExpenseService struct {
	repo expense.Repository
	loc  *time.Location
	log  logger.Logger
	now  func() time.Time
}

// NewExpenseService cria uma nova instância de ExpenseService
func NewExpenseService(repo expense.Repository, loc *time.Location, log logger.Logger) *ExpenseService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseService{repo: repo, loc: loc, log: log, now: time.Now}
}

func (s *ExpenseService) List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	expenses, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("erro ao listar despesas", "error", err)
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	return expenses, nil
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*expense.Expense, error) {
	return s.repo.FindByID(ctx, id)
}

// Create registra uma despesa. Sem data, usa o dia local corrente.
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*expense.Expense, error) {
	verr := &validation.Error{}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		verr.Add("title", "Este campo é obrigatório.")
	}
	if in.Amount == nil {
		verr.Add("amount", "Este campo é obrigatório.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	date := s.today()
	if in.ExpenseDate != nil {
		date = dateOnly(*in.ExpenseDate)
	}
	note := ""
	if in.Note != nil {
		note = *in.Note
	}

	e, err := expense.NewExpense(*in.Title, *in.Amount, date, note)
	if err != nil {
		return nil, asFieldError(err)
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Error("erro ao criar despesa", "error", err)
		return nil, fmt.Errorf("erro ao criar despesa: %w", err)
	}
	return e, nil
}

// Update aplica os campos informados
func (s *ExpenseService) Update(ctx context.Context, id string, in ExpenseInput) (*expense.Expense, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.ExpenseDate != nil {
		e.ExpenseDate = dateOnly(*in.ExpenseDate)
	}
	if in.Note != nil {
		e.Note = *in.Note
	}
	if err := e.Validate(); err != nil {
		return nil, asFieldError(err)
	}
	e.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ExpenseService) today() time.Time {
	return dateOnly(s.now().In(s.loc))
}

// dateOnly descarta o horário mantendo o dia do calendário
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
