package auth

import (
	"regexp"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/basharkhan/brainly/internal/common"
)

const minUsernameLength = 3
const minPasswordLength = 8

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// HashPassword returns a salted bcrypt digest of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt digest against a candidate password.
// The comparison is constant-time inside bcrypt.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateUsername enforces the signup format rules: at least three
// characters from [A-Za-z0-9_].
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || !usernameRe.MatchString(username) {
		return common.ErrInvalidInput
	}
	return nil
}

// ValidatePassword enforces the complexity rules: at least eight characters
// with one upper, one lower, one digit, and one symbol.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return common.ErrInvalidInput
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return common.ErrInvalidInput
	}
	return nil
}
