package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	authService *service.AuthService
	log         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authService *service.AuthService, log logger.Logger) *AuthController {
	return &AuthController{authService: authService, log: log}
}

// Register cria uma conta e retorna os tokens
// @Summary Registra um usuário
// @Description Cria a conta e retorna o usuário com tokens de acesso e renovação
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, pair, err := c.authService.Register(ctx.Request.Context(), toUserInput(request))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, toLoginResponse(u, pair))
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna os tokens JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, pair, err := c.authService.Login(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, toLoginResponse(u, pair))
}

// RefreshToken renova os tokens JWT
// @Summary Renova os tokens JWT
// @Description Troca um token de renovação válido por um novo par de tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token de renovação"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, pair, err := c.authService.Refresh(ctx.Request.Context(), request.RefreshToken)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, toLoginResponse(u, pair))
}

// Me retorna informações do usuário atual
// @Summary Retorna informações do usuário atual
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	u, err := c.authService.Me(ctx.Request.Context(), p)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func toLoginResponse(u *user.User, pair *auth.TokenPair) dto.LoginResponse {
	return dto.LoginResponse{
		User:         dto.ToUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}
}

func toUserInput(r dto.UserRequest) service.UserInput {
	return service.UserInput{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
	}
}
