package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"loginflow/internal/domain"
)

// emailTag is the validator rule applied to identifiers.
const emailTag = "required,email"

var v = validator.New(validator.WithRequiredStructEnabled())

// IsEmail reports whether s is email shaped. The domain part must contain
// at least one dot, so bare hosts such as "a@localhost" are rejected.
func IsEmail(s string) bool {
	if err := v.Var(s, emailTag); err != nil {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	host := s[at+1:]
	dot := strings.IndexByte(host, '.')
	return dot > 0 && dot < len(host)-1
}

// IsValid reports whether identifier and secret may be submitted.
func IsValid(identifier, secret string) bool {
	return IsEmail(identifier) && len(secret) > 0
}

// IsValidPair is IsValid for a CredentialPair.
func IsValidPair(p domain.CredentialPair) bool {
	return IsValid(p.Identifier, p.Secret)
}
