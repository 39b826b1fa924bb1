package bip85

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"github.com/keyfu/seedsdk/hdw"
)

// DeriveApplication is the top-level entry point: it builds the path for
// an application, derives the child key from the master, stretches the
// entropy and renders the output. Params are the application's ordered
// segment values with the child index last; for drng the leading
// parameter is the byte count, which is not path-encoded.
//
// There is no partial success: either a fully formed Result comes back
// or an error does.
func DeriveApplication(master *hdkeychain.ExtendedKey, app Application, params ...uint32) (*Result, error) {
	if app == AppDRNG {
		return deriveRandomStream(master, params)
	}

	pathStr, err := BuildPath(app, params...)
	if err != nil {
		return nil, err
	}
	path, err := ParsePath(pathStr)
	if err != nil {
		return nil, err
	}
	derived, err := hdw.Derive(master, path)
	if err != nil {
		return nil, err
	}
	return Apply(derived, path)
}

// deriveRandomStream serves the drng application: the child key at
// m/83696968'/0'/{index}' is stretched a second time into a DRNG seed
// and the requested number of bytes is read off the stream.
func deriveRandomStream(master *hdkeychain.ExtendedKey, params []uint32) (*Result, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("%w: drng needs a byte count and index", ErrMalformedPath)
	}
	n, index := params[0], params[1]
	if n < 1 {
		return nil, &RangeError{App: AppDRNG, Param: "num_bytes", Value: n, Bound: "[1, 2^31)"}
	}

	pathStr, err := BuildPath(AppDRNG, index)
	if err != nil {
		return nil, err
	}
	path, err := ParsePath(pathStr)
	if err != nil {
		return nil, err
	}
	derived, err := hdw.Derive(master, path)
	if err != nil {
		return nil, err
	}
	key, err := hdw.PrivKeyBytes(derived)
	if err != nil {
		return nil, err
	}

	seed := Entropy(key)
	drng, err := NewDRNG(seed)
	if err != nil {
		return nil, err
	}
	return &Result{Entropy: seed, Output: hex.EncodeToString(drng.Read(int(n)))}, nil
}
