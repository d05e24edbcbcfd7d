package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `p.id, p.name, p.price, p.old_price, p.cost_price, p.description,
	p.stock, p.total_stock_in, p.total_stock_out, p.is_active, p.category_id, c.name,
	p.image, p.created_at, p.updated_at`

// ProductRepository implementa a interface catalog.ProductRepository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) catalog.ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.OldPrice, &p.CostPrice, &p.Description,
		&p.Stock, &p.TotalStockIn, &p.TotalStockOut, &p.IsActive, &p.CategoryID, &p.CategoryName,
		&p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implementa catalog.ProductRepository.Create
func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	if !validID(p.CategoryID) {
		return catalog.ErrCategoryNotFound
	}
	query := `
		INSERT INTO products (
			id, name, price, old_price, cost_price, description, stock,
			total_stock_in, total_stock_out, is_active, category_id, image,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Price, p.OldPrice, p.CostPrice, p.Description, p.Stock,
		p.TotalStockIn, p.TotalStockOut, p.IsActive, p.CategoryID, p.Image,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return catalog.ErrCategoryNotFound
		}
		if isCheckViolation(err) {
			return catalog.ErrInvalidStock
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	created, err := r.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *created
	return nil
}

// FindByID implementa catalog.ProductRepository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	if !validID(id) {
		return nil, catalog.ErrProductNotFound
	}
	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// List implementa catalog.ProductRepository.List
func (r *ProductRepository) List(ctx context.Context, f catalog.ProductFilter) ([]*catalog.Product, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.OnlyActive {
		conditions = append(conditions, "p.is_active = true")
	}
	if f.CategoryID != "" {
		if !validID(f.CategoryID) {
			return []*catalog.Product{}, nil
		}
		conditions = append(conditions, "p.category_id = "+arg(f.CategoryID))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		conditions = append(conditions, "p.name ILIKE "+arg("%"+s+"%"))
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "p.price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "p.price <= "+arg(*f.MaxPrice))
	}

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY p.name, p.id`
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update implementa catalog.ProductRepository.Update.
// total_stock_in recebe apenas o aumento em relação ao estoque persistido.
func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	if !validID(p.ID) {
		return catalog.ErrProductNotFound
	}
	if !validID(p.CategoryID) {
		return catalog.ErrCategoryNotFound
	}
	query := `
		UPDATE products SET
			name = $2,
			price = $3,
			old_price = $4,
			cost_price = $5,
			description = $6,
			total_stock_in = total_stock_in + GREATEST($7::integer - stock, 0),
			stock = $7,
			is_active = $8,
			category_id = $9,
			image = $10,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Price, p.OldPrice, p.CostPrice, p.Description,
		p.Stock, p.IsActive, p.CategoryID, p.Image,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return catalog.ErrCategoryNotFound
		}
		if isCheckViolation(err) {
			return catalog.ErrInvalidStock
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}

	updated, err := r.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

// Restock implementa catalog.ProductRepository.Restock
func (r *ProductRepository) Restock(ctx context.Context, id string, quantity int) (*catalog.Product, error) {
	if quantity < 1 {
		return nil, catalog.ErrInvalidQuantity
	}
	if !validID(id) {
		return nil, catalog.ErrProductNotFound
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			stock = stock + $2,
			total_stock_in = total_stock_in + $2,
			updated_at = now()
		WHERE id = $1`, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("erro ao repor estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, catalog.ErrProductNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete implementa catalog.ProductRepository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return catalog.ErrProductNotFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return catalog.ErrProductProtected
		}
		return fmt.Errorf("erro ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}
