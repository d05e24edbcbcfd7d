package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userService *service.UserService
	log         logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userService *service.UserService, log logger.Logger) *UserController {
	return &UserController{userService: userService, log: log}
}

// Create cria um novo usuário
// @Summary Cria um novo usuário
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userService.Create(ctx.Request.Context(), toUserInput(request))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// GetByID busca um usuário pelo ID
// @Summary Busca um usuário pelo ID
// @Description Usuários comuns só enxergam o próprio perfil
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	u, err := c.userService.Get(ctx.Request.Context(), p, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List lista os usuários com paginação
// @Summary Lista os usuários
// @Description A equipe vê todos os usuários, os demais apenas o próprio perfil
// @Tags users
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	pg := pagination(ctx)
	users, err := c.userService.List(ctx.Request.Context(), p, pg.PageSize, pg.Offset())
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Update atualiza um usuário existente
// @Summary Atualiza um usuário
// @Description Campos ausentes são mantidos. A senha só muda quando enviada.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	p, ok := currentPrincipal(ctx)
	if !ok {
		return
	}

	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}

	u, err := c.userService.Update(ctx.Request.Context(), p, ctx.Param("id"), toUserInput(request))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
