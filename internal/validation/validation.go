package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrRequired = errors.New("required")

// Field is a named form value.
type Field struct {
	Name  string
	Value string
}

// Required reports the first field that is empty after trimming.
// The error reads "<name> is required".
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return fmt.Errorf("%s is %w", f.Name, ErrRequired)
		}
	}
	return nil
}

// Email checks an address for the admin account tooling. The login form itself
// only checks presence and leaves the rest to the auth backend.
func Email(email string) error {
	if email == "" {
		return fmt.Errorf("email is %w", ErrRequired)
	}

	// RFC 5321: 254 characters including the @
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}
	return nil
}

// Password enforces a minimum length for admin accounts created from the CLI.
func Password(password string) error {
	if len(password) < 12 {
		return errors.New("password must be at least 12 characters")
	}
	return nil
}
