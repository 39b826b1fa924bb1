package bip85

import (
	"crypto/hmac"
	"crypto/sha512"
)

// domainKey is the fixed, public HMAC key from BIP-85.
const domainKey = "bip-entropy-from-k"

// Entropy stretches 32 bytes of derived private key material into the
// 64-byte BIP-85 entropy value. Deterministic and position-independent:
// the key's place in the tree does not matter, only its bytes.
func Entropy(key []byte) []byte {
	mac := hmac.New(sha512.New, []byte(domainKey))
	mac.Write(key)
	return mac.Sum(nil)
}
