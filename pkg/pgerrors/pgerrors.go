// Package pgerrors классифицирует ошибки драйвера lib/pq по SQLSTATE.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation      pq.ErrorCode = "23505"
	codeForeignKeyViolation  pq.ErrorCode = "23503"
	codeSerializationFailure pq.ErrorCode = "40001"
	codeDeadlockDetected     pq.ErrorCode = "40P01"
)

func code(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Constraint, true
	}
	return "", "", false
}

// IsUniqueViolation нарушение уникального индекса или ограничения
func IsUniqueViolation(err error) bool {
	c, _, ok := code(err)
	return ok && c == codeUniqueViolation
}

// IsUniqueViolationOn нарушение конкретного уникального ограничения
func IsUniqueViolationOn(err error, constraint string) bool {
	c, name, ok := code(err)
	return ok && c == codeUniqueViolation && name == constraint
}

// IsForeignKeyViolation ссылка на несуществующую запись
func IsForeignKeyViolation(err error) bool {
	c, _, ok := code(err)
	return ok && c == codeForeignKeyViolation
}

// IsRetryable ошибка сериализации или взаимоблокировка: транзакцию можно повторить
func IsRetryable(err error) bool {
	c, _, ok := code(err)
	return ok && (c == codeSerializationFailure || c == codeDeadlockDetected)
}
