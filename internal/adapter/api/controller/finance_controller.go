package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// FinanceController expõe o painel financeiro
type FinanceController struct {
	financeService *service.FinanceService
	log            logger.Logger
}

// NewFinanceController cria uma nova instância de FinanceController
func NewFinanceController(financeService *service.FinanceService, log logger.Logger) *FinanceController {
	return &FinanceController{financeService: financeService, log: log}
}

// Overview retorna o resumo financeiro
// @Summary Resumo financeiro
// @Description Receita, custo, lucro e despesas, com receita por período, gráfico diário e ranking de produtos.
// @Description Pedidos cancelados não entram nos cálculos.
// @Tags finance
// @Produce json
// @Security Bearer
// @Param chart_days query int false "Dias no gráfico (padrão 30, máximo 365)"
// @Param top_limit query int false "Produtos no ranking (padrão 10, máximo 100)"
// @Success 200 {object} dto.FinanceOverviewResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /finance/overview [get]
func (c *FinanceController) Overview(ctx *gin.Context) {
	chartDays := finance.ParseLimit(ctx.Query("chart_days"), finance.DefaultChartDays, finance.MaxChartDays)
	topLimit := finance.ParseLimit(ctx.Query("top_limit"), finance.DefaultTopLimit, finance.MaxTopLimit)

	overview, err := c.financeService.Overview(ctx.Request.Context(), chartDays, topLimit)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFinanceOverviewResponse(overview))
}
