package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("  maria ", "maria@example.com", "Maria", "Silva", "segredo123")
	require.NoError(t, err)

	assert.Equal(t, "maria", u.Username)
	assert.NotEqual(t, "segredo123", u.Password)
	assert.True(t, u.CheckPassword("segredo123"))
	assert.False(t, u.CheckPassword("errada"))
	assert.False(t, u.IsStaff)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "", "", "", "segredo123")
	assert.ErrorIs(t, err, ErrEmptyUsername)

	_, err = NewUser("joao", "", "", "", "123")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestCanAccess(t *testing.T) {
	u := &User{ID: "a"}
	assert.True(t, u.CanAccess("a"))
	assert.False(t, u.CanAccess("b"))

	u.IsStaff = true
	assert.True(t, u.CanAccess("b"))
}
