// Package main runs the in-memory credential-exchange server used by
// loginflow during development and tests.
//
// HTTP API
//
//	POST /xauth/access_token?client_id={id}
//	    Body {"email", "password", "code"?}. Returns 200 with
//	    {"access_token", "user"} on success, or an error envelope
//	    {"ksr_code", "http_code", "error_messages"}.
//
//	GET /health/live
//	    Liveness probe.
//
// Behaviour
//
//   - Accounts are held in memory. alice@example.com signs in with a
//     password alone; bob@example.com also needs the step-up code 123456.
//     Both use the password "password".
//   - A missing client_id is rejected with ksr_code "missing_client_id".
//   - Wrong credentials yield "invalid_xauth_login". An account with a
//     step-up code answers "tfa_required" without a code and "tfa_failed"
//     for a wrong one.
//   - Access tokens are HS256 JWTs carrying sub, iat and exp.
//   - The default listen address is :8080.
package main
