// Package bip85 derives deterministic secrets from a BIP-32 master key
// per the BIP-85 scheme: hardened derivation paths addressing an
// application code, an HMAC-SHA512 entropy stretch, and per-application
// output formatting.
package bip85

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/mr-tron/base58"
	"github.com/samber/lo"
	"github.com/tyler-smith/go-bip39"

	"github.com/keyfu/seedsdk/base85"
	"github.com/keyfu/seedsdk/hdw"
)

// compressed-key suffix: BIP-32 keys map to compressed public keys
const wifCompressedSuffix = 0x01

// Result is the outcome of one BIP-85 derivation: the (possibly trimmed)
// entropy and the application's rendered output.
type Result struct {
	Entropy []byte
	Output  string
}

// Apply consumes an already-derived child key together with the
// validated BIP-85 path it was derived at, and renders the output the
// path's application code selects. The random-stream application is not
// served here because its byte count is not path-encoded; use
// DeriveApplication or NewDRNG directly.
func Apply(derived *hdkeychain.ExtendedKey, path accounts.DerivationPath) (*Result, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	key, err := hdw.PrivKeyBytes(derived)
	if err != nil {
		return nil, err
	}
	entropy := Entropy(key)
	params := lo.Map(path[2:], func(c uint32, _ int) uint32 { return c - hardened })

	switch code := path[1] - hardened; code {
	case codeWords:
		return applyWords(entropy, params)
	case codeWIF:
		return applyWIF(entropy, derived)
	case codeXPRV:
		return applyXPRV(entropy)
	case codeHex:
		return applyHex(entropy, params)
	case codeBase64:
		return applyBase64(entropy, params)
	case codeBase85:
		return applyBase85(entropy, params)
	case codeDice:
		return applyDice(entropy, params)
	default:
		return nil, fmt.Errorf("%w: code %d'", ErrUnsupportedApplication, code)
	}
}

func applyWords(entropy []byte, params []uint32) (*Result, error) {
	if len(params) < 3 {
		return nil, fmt.Errorf("%w: words paths need language, word count and index", ErrMalformedPath)
	}
	language, count := params[0], params[1]
	if language != LanguageEnglish {
		return nil, fmt.Errorf("%w: only English (0') mnemonics are supported, got %d'", ErrUnsupportedApplication, language)
	}
	nbits, ok := wordBits[count]
	if !ok {
		return nil, &RangeError{
			App:   AppWords,
			Param: "word count",
			Value: count,
			Bound: fmt.Sprintf("%v", lo.Keys(wordBits)),
		}
	}

	trimmed := entropy[:nbits/8]
	words, err := bip39.NewMnemonic(trimmed)
	if err != nil {
		return nil, err
	}
	return &Result{Entropy: trimmed, Output: words}, nil
}

func applyWIF(entropy []byte, derived *hdkeychain.ExtendedKey) (*Result, error) {
	trimmed := entropy[:32]
	if err := CheckKey(trimmed); err != nil {
		return nil, err
	}

	prefix := chaincfg.TestNet3Params.PrivateKeyID
	if derived.IsForNet(&chaincfg.MainNetParams) {
		prefix = chaincfg.MainNetParams.PrivateKeyID
	}

	payload := make([]byte, 0, 38)
	payload = append(payload, prefix)
	payload = append(payload, trimmed...)
	payload = append(payload, wifCompressedSuffix)
	checksum := chainhash.DoubleHashB(payload)[:4]

	return &Result{
		Entropy: trimmed,
		Output:  base58.Encode(append(payload, checksum...)),
	}, nil
}

func applyXPRV(entropy []byte) (*Result, error) {
	chainCode, key := entropy[:32], entropy[32:]
	if err := CheckKey(key); err != nil {
		return nil, err
	}

	// a fresh root: zero depth, fingerprint and child number
	root := hdkeychain.NewExtendedKey(
		chaincfg.MainNetParams.HDPrivateKeyID[:],
		key, chainCode, make([]byte, 4), 0, 0, true,
	)
	return &Result{Entropy: key, Output: root.String()}, nil
}

func applyHex(entropy []byte, params []uint32) (*Result, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%w: hex paths need a byte count and index", ErrMalformedPath)
	}
	n := params[0]
	if err := checkRange(AppHex, "num_bytes", n); err != nil {
		return nil, err
	}
	return &Result{Entropy: entropy, Output: hex.EncodeToString(entropy[:n])}, nil
}

func applyBase64(entropy []byte, params []uint32) (*Result, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%w: base64 paths need a password length and index", ErrMalformedPath)
	}
	pwdLen := params[0]
	if err := checkRange(AppBase64, "pwd_len", pwdLen); err != nil {
		return nil, err
	}
	return &Result{
		Entropy: entropy,
		Output:  base64.StdEncoding.EncodeToString(entropy)[:pwdLen],
	}, nil
}

func applyBase85(entropy []byte, params []uint32) (*Result, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%w: base85 paths need a password length and index", ErrMalformedPath)
	}
	pwdLen := params[0]
	if err := checkRange(AppBase85, "pwd_len", pwdLen); err != nil {
		return nil, err
	}
	return &Result{
		Entropy: entropy,
		Output:  base85.Encode(entropy)[:pwdLen],
	}, nil
}

// applyDice draws rolls from the DRNG with rejection sampling so every
// side stays equally likely: candidates are ceil(log2(sides)) bits wide
// and values at or above sides are discarded.
func applyDice(entropy []byte, params []uint32) (*Result, error) {
	if len(params) < 3 {
		return nil, fmt.Errorf("%w: dice paths need sides, rolls and index", ErrMalformedPath)
	}
	sides, rolls := params[0], params[1]
	if sides < 2 {
		return nil, &RangeError{App: AppDice, Param: "sides", Value: sides, Bound: "[2, 2^31)"}
	}
	if rolls < 1 {
		return nil, &RangeError{App: AppDice, Param: "rolls", Value: rolls, Bound: "[1, 2^31)"}
	}

	drng, err := NewDRNG(entropy)
	if err != nil {
		return nil, err
	}

	bitsPerRoll := bits.Len32(sides - 1)
	bytesPerRoll := (bitsPerRoll + 7) / 8
	mask := uint32(1)<<bitsPerRoll - 1

	out := make([]string, 0, rolls)
	for uint32(len(out)) < rolls {
		var candidate uint32
		for _, b := range drng.Read(bytesPerRoll) {
			candidate = candidate<<8 | uint32(b)
		}
		candidate &= mask
		if candidate >= sides {
			continue
		}
		out = append(out, strconv.FormatUint(uint64(candidate), 10))
	}
	return &Result{Entropy: entropy, Output: strings.Join(out, ",")}, nil
}
