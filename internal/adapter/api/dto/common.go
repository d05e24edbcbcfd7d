package dto

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details string         `json:"details,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse é a resposta do endpoint de saúde
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Pagination representa a estrutura de paginação
type Pagination struct {
	Page     int
	PageSize int
}

// Offset retorna o deslocamento correspondente à página
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// GetPagination retorna uma estrutura de paginação com valores padrão
func GetPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = 20
	} else if pageSize > 100 {
		pageSize = 100
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationErrorResponse cria uma resposta de erro com os campos inválidos
func NewValidationErrorResponse(code int, message string, fields map[string]any) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// Money formata valores monetários com duas casas decimais
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OptionalMoney formata um valor monetário opcional
func OptionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

// Coordinate formata coordenadas com seis casas decimais
func Coordinate(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(6)
	return &s
}
