package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// MinLength is the shortest password accepted when a user chooses one.
	MinLength = 8

	// bcrypt ignores everything past 72 bytes.
	maxBytes = 72
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrTooShort        = fmt.Errorf("password must be at least %d characters", MinLength)
	ErrTooLong         = fmt.Errorf("password must be at most %d bytes", maxBytes)
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}

// CheckStrength enforces the length rules for a password picked by a user.
func CheckStrength(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinLength:
		return ErrTooShort
	case len(password) > maxBytes:
		return ErrTooLong
	}

	return nil
}
