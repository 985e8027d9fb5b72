package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 30
)

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password against a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordComplexity enforces the registration/reset password policy:
// length 8-30 with at least one lowercase letter, one uppercase letter, one
// digit and one symbol. The returned string is the client-facing message;
// empty means the password passes.
func ValidatePasswordComplexity(password string) string {
	if len(password) < passwordMinLength {
		return fmt.Sprintf("Password should be at least %d characters long.", passwordMinLength)
	}
	if len(password) > passwordMaxLength {
		return fmt.Sprintf("Password should not be longer than %d characters.", passwordMaxLength)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return "Password should contain at least 1 lower-cased letter."
	case !hasUpper:
		return "Password should contain at least 1 upper-cased letter."
	case !hasDigit:
		return "Password should contain at least 1 number."
	case !hasSymbol:
		return "Password should contain at least 1 symbol."
	}

	return ""
}
