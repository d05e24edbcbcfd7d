package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/hugohenrick/loja-api/internal/domain/catalog"
)

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(_ context.Context, c *catalog.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.duplicate(c) {
		return catalog.ErrCategoryDuplicate
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r categoryRepo) duplicate(c *catalog.Category) bool {
	for _, other := range r.s.categories {
		if other.ID != c.ID && (other.Name == c.Name || other.Slug == c.Slug) {
			return true
		}
	}
	return false
}

func (r categoryRepo) FindByID(_ context.Context, id string) (*catalog.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, catalog.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r categoryRepo) List(_ context.Context) ([]*catalog.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*catalog.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r categoryRepo) Update(_ context.Context, c *catalog.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[c.ID]; !ok {
		return catalog.ErrCategoryNotFound
	}
	if r.duplicate(c) {
		return catalog.ErrCategoryDuplicate
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	for _, p := range r.s.products {
		if p.CategoryID == c.ID {
			p.CategoryName = c.Name
		}
	}
	return nil
}

func (r categoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return catalog.ErrCategoryNotFound
	}
	for _, p := range r.s.products {
		if p.CategoryID == id && r.s.productReferenced(p.ID) {
			return catalog.ErrProductProtected
		}
	}
	for pid, p := range r.s.products {
		if p.CategoryID == id {
			delete(r.s.products, pid)
		}
	}
	delete(r.s.categories, id)
	return nil
}

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *catalog.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[p.CategoryID]
	if !ok {
		return catalog.ErrCategoryNotFound
	}
	now := r.s.now()
	cp := *p
	cp.CategoryName = c.Name
	cp.CreatedAt, cp.UpdatedAt = now, now
	r.s.products[p.ID] = &cp
	*p = cp
	return nil
}

func (r productRepo) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r productRepo) List(_ context.Context, f catalog.ProductFilter) ([]*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*catalog.Product, 0)
	for _, p := range r.s.products {
		if f.OnlyActive && !p.IsActive {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r productRepo) Update(_ context.Context, p *catalog.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.products[p.ID]
	if !ok {
		return catalog.ErrProductNotFound
	}
	c, ok := r.s.categories[p.CategoryID]
	if !ok {
		return catalog.ErrCategoryNotFound
	}

	updated := *current
	if err := updated.ApplyStockChange(p.Stock); err != nil {
		return err
	}
	updated.Name = p.Name
	updated.Price = p.Price
	updated.OldPrice = p.OldPrice
	updated.CostPrice = p.CostPrice
	updated.Description = p.Description
	updated.IsActive = p.IsActive
	updated.CategoryID = p.CategoryID
	updated.CategoryName = c.Name
	updated.Image = p.Image
	updated.UpdatedAt = r.s.now()

	r.s.products[p.ID] = &updated
	*p = updated
	return nil
}

func (r productRepo) Restock(_ context.Context, id string, quantity int) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	if err := p.Restock(quantity); err != nil {
		return nil, err
	}
	p.UpdatedAt = r.s.now()
	cp := *p
	return &cp, nil
}

func (r productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return catalog.ErrProductNotFound
	}
	if r.s.productReferenced(id) {
		return catalog.ErrProductProtected
	}
	delete(r.s.products, id)
	return nil
}
