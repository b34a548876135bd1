package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes предел bcrypt на длину пароля
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// HashPassword возвращает bcrypt хэш пароля
func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", fmt.Errorf("%w: got %d", ErrPasswordTooLong, len(plain))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword сравнивает пароль с сохранённым хэшем
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
