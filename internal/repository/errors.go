package repository

import (
	"errors"
	"fmt"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/base"
)

var (
	// ErrNotFound UPDATE/DELETE не затронул ни одной строки
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate нарушено ограничение уникальности (username, email, телефон)
	ErrDuplicate = errors.New("duplicate value violates unique constraint")
)

// wrapWriteErr оборачивает ошибку записи, выделяя нарушение уникальности
func wrapWriteErr(op string, err error) error {
	if base.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
