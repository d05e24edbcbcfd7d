package service

import (
	"errors"

	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
)

// ErrInvalidCredentials é retornado quando usuário ou senha não conferem
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// Erros de invariantes do domínio que viram erro de validação no campo correspondente
var fieldErrors = []struct {
	err   error
	field string
}{
	{catalog.ErrEmptyName, "name"},
	{catalog.ErrInvalidPrice, "price"},
	{catalog.ErrInvalidStock, "stock"},
	{catalog.ErrInvalidQuantity, "quantity"},
	{cart.ErrInvalidQuantity, "quantity"},
	{expense.ErrEmptyTitle, "title"},
	{expense.ErrInvalidAmount, "amount"},
	{user.ErrEmptyUsername, "username"},
	{user.ErrPasswordTooShort, "password"},
}

// asFieldError converte erros de invariantes em *validation.Error
func asFieldError(err error) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return validation.New(fe.field, fe.err.Error())
		}
	}
	return err
}
