package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/domain/validation"
	"github.com/shopspring/decimal"
)

func parseInt(raw string) int {
	n, _ := strconv.Atoi(raw)
	return n
}

// optionalDecimal lê um decimal opcional da query string
func optionalDecimal(ctx *gin.Context, key string, verr *validation.Error) *decimal.Decimal {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(key, "Informe um número válido.")
		return nil
	}
	return &d
}

// optionalDate lê uma data AAAA-MM-DD
func optionalDate(raw *string, layout, field string, verr *validation.Error) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(layout, *raw)
	if err != nil {
		verr.Add(field, "Data inválida. Use o formato AAAA-MM-DD.")
		return nil
	}
	return &t
}
