package service

import (
	"errors"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/auth"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrTutorNotFound   = errors.New("tutor not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrGenderRequired  = errors.New("gender cannot be null or empty")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidDateTime = errors.New("invalid booking date-time")

	// ErrPasswordTooLong пароль длиннее 72 байт не помещается в bcrypt
	ErrPasswordTooLong = auth.ErrPasswordTooLong

	// ErrConflict нарушение уникальности username/email/телефона в хранилище
	ErrConflict = repository.ErrDuplicate
)
