// Package validate holds the pure login-form validity rules.
//
// The rules are stateless and safe to call from any goroutine:
//
//   - the identifier must be email shaped (local part, "@", a dotted domain)
//   - the secret must be non-empty
package validate
