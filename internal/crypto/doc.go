// Package crypto exposes the minimal primitives used by loginflow.
//
// Contents
//
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short token fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Callers should treat secrets as sensitive and rely on Wipe when practical
// to reduce their lifetime in memory.
package crypto
