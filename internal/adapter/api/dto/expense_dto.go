package dto

import (
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// ExpenseRequest representa os dados de escrita de uma despesa.
// expense_date usa o formato AAAA-MM-DD.
type ExpenseRequest struct {
	Title       *string          `json:"title"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
	ExpenseDate *string          `json:"expense_date" example:"2026-03-01"`
	Note        *string          `json:"note"`
}

// ExpenseResponse representa uma despesa
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      string    `json:"amount"`
	ExpenseDate string    `json:"expense_date"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      Money(e.Amount),
		ExpenseDate: e.ExpenseDate.Format(expense.DateLayout),
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToExpenseListResponse(expenses []*expense.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
