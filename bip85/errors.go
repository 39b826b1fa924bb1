package bip85

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath            = errors.New("invalid derivation path")
	ErrNotBIP85               = errors.New("not a BIP-85 path")
	ErrMalformedPath          = errors.New("BIP-85 paths need 4+ segments and hardened children")
	ErrUnsupportedApplication = errors.New("unsupported BIP-85 application")
	ErrInvalidSeedLength      = errors.New("seed must be exactly 64 bytes long")
	ErrParameterOutOfRange    = errors.New("parameter out of range")

	// ErrUnusableKey reports a derived scalar that cannot serve as a
	// secp256k1 private key. Callers should re-derive at the next child
	// index; this package never retries on its own.
	ErrUnusableKey = errors.New("invalid derived key, try again with next child index")
)

// RangeError reports an application parameter outside its documented
// bound. It unwraps to ErrParameterOutOfRange.
type RangeError struct {
	App   Application
	Param string
	Value uint32
	Bound string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s %d outside %s", e.App, e.Param, e.Value, e.Bound)
}

func (e *RangeError) Unwrap() error { return ErrParameterOutOfRange }
