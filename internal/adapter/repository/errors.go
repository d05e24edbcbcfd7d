package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE tratados pelos repositórios
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// validID indica se id pode ser comparado com uma coluna UUID.
// IDs malformados vindos da rota ou do corpo viram "não encontrado" sem ir ao banco.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func filterValidIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			out = append(out, id)
		}
	}
	return out
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pgErrorCode(err) == pgCheckViolation
}
