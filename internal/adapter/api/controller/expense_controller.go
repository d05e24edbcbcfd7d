package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

// ExpenseController gerencia o cadastro de despesas
type ExpenseController struct {
	expenseService *service.ExpenseService
	log            logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseService *service.ExpenseService, log logger.Logger) *ExpenseController {
	return &ExpenseController{expenseService: expenseService, log: log}
}

// List lista as despesas
// @Summary Lista as despesas
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param expense_date query string false "Data exata (AAAA-MM-DD)"
// @Param search query string false "Busca em título e observação"
// @Param ordering query string false "expense_date, created_at ou amount, com - para ordem decrescente"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	verr := &validation.Error{}
	raw := ctx.Query("expense_date")
	date := optionalDate(&raw, expense.DateLayout, "expense_date", verr)
	if !verr.Empty() {
		respondError(ctx, c.log, verr)
		return
	}

	expenses, err := c.expenseService.List(ctx.Request.Context(), expense.ListFilter{
		ExpenseDate: date,
		Search:      ctx.Query("search"),
		Ordering:    ctx.Query("ordering"),
	})
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// GetByID busca uma despesa pelo ID
// @Summary Busca uma despesa pelo ID
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) GetByID(ctx *gin.Context) {
	e, err := c.expenseService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Create registra uma despesa
// @Summary Registra uma despesa
// @Description Sem expense_date a data de hoje é usada
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	in, ok := c.bindInput(ctx)
	if !ok {
		return
	}

	e, err := c.expenseService.Create(ctx.Request.Context(), in)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// Update atualiza uma despesa
// @Summary Atualiza uma despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	in, ok := c.bindInput(ctx)
	if !ok {
		return
	}

	e, err := c.expenseService.Update(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete remove uma despesa
// @Summary Remove uma despesa
// @Tags expenses
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.expenseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ExpenseController) bindInput(ctx *gin.Context) (service.ExpenseInput, bool) {
	var request dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return service.ExpenseInput{}, false
	}

	verr := &validation.Error{}
	date := optionalDate(request.ExpenseDate, expense.DateLayout, "expense_date", verr)
	if !verr.Empty() {
		respondError(ctx, c.log, verr)
		return service.ExpenseInput{}, false
	}

	return service.ExpenseInput{
		Title:       request.Title,
		Amount:      request.Amount,
		ExpenseDate: date,
		Note:        request.Note,
	}, true
}
