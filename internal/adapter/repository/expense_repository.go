package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, title, amount, expense_date, note, created_at, updated_at`

// ExpenseRepository implementa a interface expense.Repository usando PostgreSQL
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	if err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.ExpenseDate, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Title, e.Amount, e.ExpenseDate, e.Note, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar despesa: %w", err)
	}
	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	if !validID(id) {
		return nil, expense.ErrExpenseNotFound
	}
	e, err := scanExpense(r.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, expense.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}
	return e, nil
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context, f expense.ListFilter) ([]*expense.Expense, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}

	if f.ExpenseDate != nil {
		args = append(args, f.ExpenseDate.Format(expense.DateLayout))
		conditions = append(conditions, fmt.Sprintf("expense_date = $%d::date", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR note ILIKE $%d)", len(args), len(args)))
	}

	// column vem de uma lista fechada em expense.ListFilter.OrderBy
	column, desc := f.OrderBy()
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE %s ORDER BY %s %s, id`,
		expenseColumns, strings.Join(conditions, " AND "), column, direction)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if !validID(e.ID) {
		return expense.ErrExpenseNotFound
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE expenses SET title = $2, amount = $3, expense_date = $4, note = $5, updated_at = $6
		WHERE id = $1`,
		e.ID, e.Title, e.Amount, e.ExpenseDate, e.Note, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return expense.ErrExpenseNotFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao remover despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}
