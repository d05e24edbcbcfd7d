package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/loja-api/internal/domain/user"
)

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.users {
		if other.Username == u.Username {
			return user.ErrUserDuplicateUsername
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r userRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r userRepo) List(_ context.Context, limit, offset int) ([]*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Username < out[j].Username
	})
	return page(out, limit, offset), nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	for _, other := range r.s.users {
		if other.ID != u.ID && other.Username == u.Username {
			return user.ErrUserDuplicateUsername
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}
