package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error agrupa mensagens de validação indexadas pelo nome do campo
type Error struct {
	Fields map[string]any
}

// New cria um erro de validação para um único campo
func New(field string, detail any) *Error {
	return &Error{Fields: map[string]any{field: detail}}
}

// Add acrescenta uma mensagem a um campo
func (e *Error) Add(field string, detail any) *Error {
	if e.Fields == nil {
		e.Fields = map[string]any{}
	}
	e.Fields[field] = detail
	return e
}

// Empty indica se nenhum campo foi registrado
func (e *Error) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, e.Fields[k]))
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// As extrai um *Error da cadeia de erros
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
