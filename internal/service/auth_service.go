package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// AuthService emite tokens para registro, login e renovação
type AuthService struct {
	users  *UserService
	repo   user.Repository
	tokens *auth.JWTService
	log    logger.Logger
}

// NewAuthService cria uma nova instância de AuthService
func NewAuthService(users *UserService, repo user.Repository, tokens *auth.JWTService, log logger.Logger) *AuthService {
	return &AuthService{users: users, repo: repo, tokens: tokens, log: log}
}

// Register cadastra o usuário e já devolve o par de tokens
func (s *AuthService) Register(ctx context.Context, in UserInput) (*user.User, *auth.TokenPair, error) {
	u, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	pair, err := s.tokens.GenerateTokenPair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Login verifica as credenciais e devolve o par de tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (*user.User, *auth.TokenPair, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !u.CheckPassword(password) {
		s.log.Warn("falha de login", "username", username)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.GenerateTokenPair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Refresh troca um token de renovação válido por um novo par, relendo o usuário
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*user.User, *auth.TokenPair, error) {
	claims, err := s.tokens.ValidateTokenOfType(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil, nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil, auth.ErrInvalidToken
		}
		return nil, nil, err
	}

	pair, err := s.tokens.GenerateTokenPair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Me retorna o perfil do principal
func (s *AuthService) Me(ctx context.Context, p auth.Principal) (*user.User, error) {
	return s.repo.FindByID(ctx, p.UserID)
}
