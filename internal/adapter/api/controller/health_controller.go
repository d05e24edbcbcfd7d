package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// StorageChecker verifica se o armazenamento responde
type StorageChecker func(ctx context.Context) error

// HealthController responde à verificação de saúde da API
type HealthController struct {
	storage string
	check   StorageChecker
	log     logger.Logger
}

// NewHealthController cria uma nova instância de HealthController. check pode ser nil.
func NewHealthController(storage string, check StorageChecker, log logger.Logger) *HealthController {
	return &HealthController{storage: storage, check: check, log: log}
}

// Check verifica a saúde da API
// @Summary Verificação de saúde
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if c.check != nil {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.check(checkCtx); err != nil {
			c.log.Warn("armazenamento indisponível", "storage", c.storage, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Storage: c.storage})
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: c.storage})
}
