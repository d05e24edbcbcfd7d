package dto

import (
	"time"

	"github.com/hugohenrick/loja-api/internal/domain/user"
)

// UserRequest representa os dados de um usuário para criação ou atualização.
// Na atualização, campos ausentes mantêm o valor atual e a senha é opcional.
type UserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// UserResponse representa a resposta com dados de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO de resposta
func ToUserListResponse(users []*user.User) []UserResponse {
	data := make([]UserResponse, len(users))
	for i, u := range users {
		data[i] = ToUserResponse(u)
	}
	return data
}
