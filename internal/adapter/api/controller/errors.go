package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

var notFoundErrors = []error{
	catalog.ErrCategoryNotFound,
	catalog.ErrProductNotFound,
	cart.ErrCartNotFound,
	cart.ErrItemNotFound,
	order.ErrOrderNotFound,
	expense.ErrExpenseNotFound,
	user.ErrUserNotFound,
}

var conflictErrors = []error{
	catalog.ErrCategoryDuplicate,
	catalog.ErrProductProtected,
	user.ErrUserDuplicateUsername,
}

var unauthorizedErrors = []error{
	service.ErrInvalidCredentials,
	auth.ErrInvalidToken,
	auth.ErrExpiredToken,
	auth.ErrInvalidClaims,
	auth.ErrUnexpectedTokenType,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError traduz erros de domínio e de serviço em respostas HTTP
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	if verr, ok := validation.As(err); ok {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(http.StatusBadRequest, "Dados inválidos", verr.Fields))
		return
	}

	switch {
	case matches(err, notFoundErrors):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Recurso não encontrado", err.Error()))
	case matches(err, conflictErrors):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Conflito", err.Error()))
	case matches(err, unauthorizedErrors):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autorizado", err.Error()))
	default:
		log.Error("erro ao processar requisição",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro interno do servidor", ""))
	}
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
}

// currentPrincipal obtém o principal autenticado ou responde 401
func currentPrincipal(ctx *gin.Context) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromGin(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", ""))
	}
	return p, ok
}

// pagination lê page e page_size da query string
func pagination(ctx *gin.Context) dto.Pagination {
	page := parseInt(ctx.Query("page"))
	pageSize := parseInt(ctx.Query("page_size"))
	return dto.GetPagination(page, pageSize)
}
