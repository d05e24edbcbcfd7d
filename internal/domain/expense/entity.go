package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseNotFound = errors.New("despesa não encontrada")
	ErrEmptyTitle      = errors.New("título não pode ser vazio")
	ErrInvalidAmount   = errors.New("valor não pode ser negativo")
)

// DateLayout é o formato de expense_date na API
const DateLayout = "2006-01-02"

// Expense representa uma despesa operacional
type Expense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expense_date"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewExpense cria uma nova despesa
func NewExpense(title string, amount decimal.Decimal, expenseDate time.Time, note string) (*Expense, error) {
	e := &Expense{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Amount:      amount,
		ExpenseDate: expenseDate,
		Note:        note,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return e, nil
}

// Validate verifica os invariantes da despesa
func (e *Expense) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
