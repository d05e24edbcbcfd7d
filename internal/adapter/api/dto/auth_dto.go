package dto

import (
	"time"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login, registro ou renovação bem-sucedidos
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access"`
	RefreshToken string       `json:"refresh"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}
