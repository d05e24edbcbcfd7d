package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implementa a interface catalog.CategoryRepository usando PostgreSQL
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) catalog.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create implementa catalog.CategoryRepository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)",
		c.ID, c.Name, c.Slug)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}
	return nil
}

// FindByID implementa catalog.CategoryRepository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*catalog.Category, error) {
	if !validID(id) {
		return nil, catalog.ErrCategoryNotFound
	}
	var c catalog.Category
	err := r.db.QueryRow(ctx,
		"SELECT id, name, slug FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}
	return &c, nil
}

// List implementa catalog.CategoryRepository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, slug FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Update implementa catalog.CategoryRepository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if !validID(c.ID) {
		return catalog.ErrCategoryNotFound
	}
	tag, err := r.db.Exec(ctx,
		"UPDATE categories SET name = $2, slug = $3 WHERE id = $1",
		c.ID, c.Name, c.Slug)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

// Delete implementa catalog.CategoryRepository.Delete. Os produtos da categoria são removidos em cascata.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return catalog.ErrCategoryNotFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return catalog.ErrProductProtected
		}
		return fmt.Errorf("erro ao remover categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}
