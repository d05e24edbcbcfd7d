package user

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserDuplicateUsername = errors.New("nome de usuário já está em uso")
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um usuário pelo nome de usuário
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List lista os usuários, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error
}
