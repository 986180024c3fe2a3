// Package memzero wipes transient key material.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}

// ZeroSeed wipes a fixed-size seed once a source has been built from it.
func ZeroSeed(seed *[32]byte) {
	Zero(seed[:])
}
