package bip85

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// DRNG is the BIP-85 deterministic random generator: a SHAKE256 stream
// over a 64-byte seed, read sequentially. Because SHAKE256 is a true
// extensible-output function, Read(a) followed by Read(b) yields the
// same bytes as a single Read(a+b) on a fresh generator with the same
// seed. Single-use, not safe for concurrent readers.
type DRNG struct {
	shake  sha3.ShakeHash
	cursor int
}

// NewDRNG seeds a fresh generator. The seed must be exactly 64 bytes,
// which is what Entropy always produces.
func NewDRNG(seed []byte) (*DRNG, error) {
	if len(seed) != 64 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeedLength, len(seed))
	}
	shake := sha3.NewShake256()
	shake.Write(seed)
	return &DRNG{shake: shake}, nil
}

// Read returns the next n bytes of the stream and advances the cursor.
func (d *DRNG) Read(n int) []byte {
	out := make([]byte, n)
	d.shake.Read(out)
	d.cursor += n
	return out
}

// Cursor reports how many bytes have been emitted so far.
func (d *DRNG) Cursor() int { return d.cursor }
