// Package store persists the authenticated session for loginflow.
//
// It contains concrete implementations of domain.SessionStore. Sessions are
// serialised as JSON and sealed with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305) before they leave the process. All methods are
// concurrency-safe.
//
// The package includes:
//   - SessionFileStore   one sealed file per profile under the home directory
//   - RedisSessionStore  one sealed value per profile in Redis, expiring
//     with the access token
package store
