package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	principalKey contextKey = "principal"

	// GinPrincipalKey é a chave usada no contexto do Gin
	GinPrincipalKey = "principal"
)

// Principal identifica quem está fazendo a requisição
type Principal struct {
	UserID   string
	Username string
	IsStaff  bool
}

// CanAccessUser informa se o principal pode ver ou alterar o usuário informado
func (p Principal) CanAccessUser(userID string) bool {
	return p.IsStaff || p.UserID == userID
}

// WithPrincipal define o principal no contexto
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext obtém o principal do contexto
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// PrincipalFromGin obtém o principal de um contexto do Gin
func PrincipalFromGin(c *gin.Context) (Principal, bool) {
	if val, exists := c.Get(GinPrincipalKey); exists {
		if p, ok := val.(Principal); ok {
			return p, true
		}
	}
	return PrincipalFromContext(c.Request.Context())
}
