package bip85

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

var segmentPattern = regexp.MustCompile(`^\d+['hH]?$`)

// ParsePath splits a slash-delimited derivation path into child indices.
// The root must be the literal "m" and every child segment must be digits
// with an optional hardened marker (', h, or H). Application parameter
// ranges are not checked here; that belongs to the formatter.
func ParsePath(path string) (accounts.DerivationPath, error) {
	segments := strings.Split(path, "/")
	if segments[0] != "m" {
		return nil, fmt.Errorf("%w: expected 'm' at root of %q", ErrInvalidPath, path)
	}

	var errs error
	parsed := make(accounts.DerivationPath, 0, len(segments)-1)
	for _, s := range segments[1:] {
		if !segmentPattern.MatchString(s) {
			errs = multierr.Append(errs, fmt.Errorf("%w: unexpected segment %q", ErrInvalidPath, s))
			continue
		}
		digits := s
		hard := false
		switch s[len(s)-1] {
		case '\'', 'h', 'H':
			digits = s[:len(s)-1]
			hard = true
		}
		n, err := strconv.ParseUint(digits, 10, 32)
		if err != nil || (hard && uint32(n) >= hardened) {
			errs = multierr.Append(errs, fmt.Errorf("%w: segment %q out of the uint32 index space", ErrInvalidPath, s))
			continue
		}
		child := uint32(n)
		if hard {
			child += hardened
		}
		parsed = append(parsed, child)
	}
	if errs != nil {
		return nil, errs
	}
	return parsed, nil
}

// ValidatePath enforces the BIP-85 shape on a parsed path: the purpose
// segment 83696968' first, at least an application code and one
// parameter after it, and every segment hardened.
func ValidatePath(path accounts.DerivationPath) error {
	if len(path) == 0 || path[0] != PurposeCode+hardened {
		return fmt.Errorf("%w: %s", ErrNotBIP85, path)
	}
	if len(path) < 3 {
		return fmt.Errorf("%w: %s", ErrMalformedPath, path)
	}
	for _, child := range path {
		if child < hardened {
			return fmt.Errorf("%w: segment %d is not hardened", ErrMalformedPath, child)
		}
	}
	return nil
}

// BuildPath assembles the canonical path string for an application and
// its ordered parameter values, child index last. Every segment is
// rendered hardened.
func BuildPath(app Application, params ...uint32) (string, error) {
	code, ok := Codes[app]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedApplication, app)
	}
	for _, p := range params {
		if p >= hardened {
			return "", fmt.Errorf("%w: parameter %d too large for a hardened child", ErrInvalidPath, p)
		}
	}

	path := append(accounts.DerivationPath{PurposeCode + hardened, code + hardened},
		lo.Map(params, func(p uint32, _ int) uint32 { return p + hardened })...)
	return path.String(), nil
}
