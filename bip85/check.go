package bip85

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CheckKey reports whether a 32-byte candidate scalar is usable as a
// secp256k1 private key: zero and values at or above the group order
// fail with ErrUnusableKey. BIP-85 allows this to happen with
// vanishingly small probability; the remedy is to re-derive at the next
// child index, which is left to the caller.
func CheckKey(candidate []byte) error {
	if len(candidate) != 32 {
		return fmt.Errorf("%w: want 32 bytes, got %d", ErrUnusableKey, len(candidate))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(candidate)
	if overflow || s.IsZero() {
		return ErrUnusableKey
	}
	return nil
}
