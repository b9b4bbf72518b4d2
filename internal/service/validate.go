package service

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateSignup enforces the registration rules: both names and the
// userName present, a well-formed email and a strong password.
func validateSignup(in SignupInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(in.UserName) == "" {
		return ErrInvalidName
	}
	if err := validate.Var(in.EmailID, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	if !isStrongPassword(in.Password) {
		return ErrWeakPassword
	}
	return nil
}

// isStrongPassword requires at least 8 characters with a lowercase
// letter, an uppercase letter, a digit and a symbol.
func isStrongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
