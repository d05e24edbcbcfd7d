package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/internal/domain/user"
)

// Erros específicos
var (
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrInvalidClaims       = errors.New("claims inválidas")
	ErrMissingJWTKey       = errors.New("chave secreta JWT não configurada")
	ErrUnexpectedTokenType = errors.New("tipo de token inesperado")
)

const issuer = "loja-api"

// TokenType distingue tokens de acesso e de renovação
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// JWTClaims representa as claims personalizadas do token JWT
type JWTClaims struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	IsStaff   bool      `json:"is_staff"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Principal retorna o usuário autenticado descrito pelas claims
func (c *JWTClaims) Principal() Principal {
	return Principal{UserID: c.UserID, Username: c.Username, IsStaff: c.IsStaff}
}

// TokenPair agrupa o par de tokens emitido no login
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// JWTService implementa serviços relacionados a tokens JWT
type JWTService struct {
	secretKey         []byte
	accessExpiration  time.Duration
	refreshExpiration time.Duration
	now               func() time.Time
}

// NewJWTService cria uma nova instância de JWTService
func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingJWTKey
	}

	access := cfg.AccessExpiration
	if access <= 0 {
		access = 24 * time.Hour
	}
	refresh := cfg.RefreshExpiration
	if refresh <= 0 {
		refresh = 7 * 24 * time.Hour
	}

	return &JWTService{
		secretKey:         []byte(cfg.SecretKey),
		accessExpiration:  access,
		refreshExpiration: refresh,
		now:               time.Now,
	}, nil
}

// GenerateTokenPair gera os tokens de acesso e de renovação do usuário
func (s *JWTService) GenerateTokenPair(u *user.User) (*TokenPair, error) {
	access, expiresAt, err := s.GenerateToken(u, AccessToken)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.GenerateToken(u, RefreshToken)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// GenerateToken gera um token JWT do tipo informado para o usuário
func (s *JWTService) GenerateToken(u *user.User, tokenType TokenType) (string, time.Time, error) {
	now := s.now()
	expiration := s.accessExpiration
	if tokenType == RefreshToken {
		expiration = s.refreshExpiration
	}
	expirationTime := now.Add(expiration)

	claims := JWTClaims{
		UserID:    u.ID,
		Username:  u.Username,
		IsStaff:   u.IsStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expirationTime, nil
}

// ValidateToken valida um token JWT e retorna as claims se for válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// ValidateTokenOfType valida o token e exige o tipo informado
func (s *JWTService) ValidateTokenOfType(tokenString string, tokenType TokenType) (*JWTClaims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrUnexpectedTokenType
	}
	return claims, nil
}
