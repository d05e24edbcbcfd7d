package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(svc), func(c *gin.Context) {
		p, ok := PrincipalFromGin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		fromCtx, _ := PrincipalFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "ctx_user_id": fromCtx.UserID})
	})
	r.GET("/admin", JWTAuthMiddleware(svc), AdminOnlyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestService(t)
	r := newTestRouter(svc)

	pair, err := svc.GenerateTokenPair(&user.User{ID: "u-1", Username: "joao"})
	require.NoError(t, err)

	t.Run("sem cabeçalho", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", "").Code)
	})

	t.Run("formato inválido", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", "Token "+pair.AccessToken).Code)
	})

	t.Run("token de renovação não autentica", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/me", "Bearer "+pair.RefreshToken).Code)
	})

	t.Run("token válido", func(t *testing.T) {
		w := doRequest(r, "/me", "Bearer "+pair.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","ctx_user_id":"u-1"}`, w.Body.String())
	})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	svc := newTestService(t)
	r := newTestRouter(svc)

	customer, err := svc.GenerateTokenPair(&user.User{ID: "u-1", Username: "joao"})
	require.NoError(t, err)
	staff, err := svc.GenerateTokenPair(&user.User{ID: "u-2", Username: "ana", IsStaff: true})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", "Bearer "+customer.AccessToken).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, "/admin", "Bearer "+staff.AccessToken).Code)
}

func TestPrincipalCanAccessUser(t *testing.T) {
	assert.True(t, Principal{UserID: "a"}.CanAccessUser("a"))
	assert.False(t, Principal{UserID: "a"}.CanAccessUser("b"))
	assert.True(t, Principal{UserID: "a", IsStaff: true}.CanAccessUser("b"))
}
