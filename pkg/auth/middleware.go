package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
)

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		// Formato "Bearer <token>"
		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateTokenOfType(tokenParts[1], AccessToken)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		principal := claims.Principal()
		c.Set(GinPrincipalKey, principal)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// AdminOnlyMiddleware restringe a rota a usuários da equipe
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromGin(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		if !principal.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Acesso negado",
				"Você não tem permissão para acessar este recurso",
			))
			return
		}

		c.Next()
	}
}
