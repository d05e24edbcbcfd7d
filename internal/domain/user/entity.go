package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength é o tamanho mínimo aceito para senhas
const MinPasswordLength = 6

var (
	ErrEmptyUsername    = errors.New("nome de usuário não pode ser vazio")
	ErrPasswordTooShort = errors.New("senha deve ter no mínimo 6 caracteres")
)

// User representa um usuário do sistema
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já protegida por hash
func NewUser(username, email, firstName, lastName, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     strings.TrimSpace(email),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// CanAccess indica se o usuário pode ver ou alterar o perfil informado
func (u *User) CanAccess(targetID string) bool {
	return u.IsStaff || u.ID == targetID
}
