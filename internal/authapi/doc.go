// Package authapi provides an HTTP implementation of the domain.AuthClient
// interface used by loginflow.
//
// The credential-exchange endpoint trades an email and password (and, after
// a step-up challenge, a one-time code) for an access token and the account
// it belongs to:
//
//	POST {base}/xauth/access_token?client_id={id}
//	{"email": "...", "password": "...", "code": "..."}
//
// Failures are reported in the shapes the login controller classifies:
//   - *domain.APIError when the server answered with an error envelope.
//   - *domain.TransportError{Kind: KindNetwork} when the server could not be
//     reached. These are retried according to the client's retry policy.
//   - *domain.TransportError{Kind: KindHTTP} for a non-2xx answer without an
//     envelope.
//   - *domain.TransportError{Kind: KindConversion} for an undecodable body.
package authapi
