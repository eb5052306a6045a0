package crypto

import "runtime"

// Wipe zeroes b in place. It is best-effort: copies the runtime made earlier
// (string conversions, GC moves) are out of reach.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
