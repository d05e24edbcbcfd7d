package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, first_name, last_name, password, is_staff, created_at, updated_at`

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Password, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName,
		u.Password, u.IsStaff, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrUserDuplicateUsername
		}
		return fmt.Errorf("falha ao criar usuário: %w", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if !validID(id) {
		return nil, user.ErrUserNotFound
	}
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return u, nil
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users
		ORDER BY created_at DESC, username
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	if !validID(u.ID) {
		return user.ErrUserNotFound
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			username = $2, email = $3, first_name = $4, last_name = $5,
			password = $6, is_staff = $7, updated_at = $8
		WHERE id = $1`,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Password, u.IsStaff, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrUserDuplicateUsername
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
