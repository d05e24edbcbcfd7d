package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// UserInput são os dados de escrita de um usuário. Campos nil mantêm o valor atual na atualização.
type UserInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

// UserService implementa o cadastro e a consulta de usuários
type UserService struct {
	users user.Repository
	log   logger.Logger
}

// NewUserService cria uma nova instância de UserService
func NewUserService(users user.Repository, log logger.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Create cadastra um novo usuário. Senha é obrigatória.
func (s *UserService) Create(ctx context.Context, in UserInput) (*user.User, error) {
	verr := &validation.Error{}
	if in.Username == nil || strings.TrimSpace(*in.Username) == "" {
		verr.Add("username", "Este campo é obrigatório.")
	}
	if in.Password == nil || *in.Password == "" {
		verr.Add("password", "Este campo é obrigatório.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	u, err := user.NewUser(*in.Username, deref(in.Email), deref(in.FirstName), deref(in.LastName), *in.Password)
	if err != nil {
		return nil, asFieldError(err)
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("usuário criado", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// List retorna todos os usuários para a equipe e apenas o próprio perfil para os demais
func (s *UserService) List(ctx context.Context, p auth.Principal, limit, offset int) ([]*user.User, error) {
	if !p.IsStaff {
		u, err := s.users.FindByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		if offset > 0 {
			return []*user.User{}, nil
		}
		return []*user.User{u}, nil
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		s.log.Error("erro ao listar usuários", "error", err)
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	return users, nil
}

// Get busca um usuário. Perfis de terceiros aparecem como inexistentes para quem não é da equipe.
func (s *UserService) Get(ctx context.Context, p auth.Principal, id string) (*user.User, error) {
	if !p.CanAccessUser(id) {
		return nil, user.ErrUserNotFound
	}
	return s.users.FindByID(ctx, id)
}

// Update aplica os campos informados. A senha só muda quando enviada.
func (s *UserService) Update(ctx context.Context, p auth.Principal, id string, in UserInput) (*user.User, error) {
	u, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, validation.New("username", user.ErrEmptyUsername.Error())
		}
		u.Username = username
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Password != nil && *in.Password != "" {
		if err := u.SetPassword(*in.Password); err != nil {
			return nil, asFieldError(err)
		}
	}
	u.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
