package hdw

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/tyler-smith/go-bip39"
)

var ErrNotPrivate = errors.New("derivations should begin with a private master key")

// Master builds a BIP-32 master extended key from a seed.
func Master(seed []byte, net *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {
	return hdkeychain.NewMaster(seed, net)
}

// MasterFromMnemonic builds a master extended key from a BIP-39 mnemonic
// and optional passphrase.
func MasterFromMnemonic(mnemonic, passphrase string, net *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {
	return hdkeychain.NewMaster(bip39.NewSeed(mnemonic, passphrase), net)
}

// ParseMaster decodes a serialized extended private key (xprv/tprv).
func ParseMaster(xprv string) (*hdkeychain.ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(xprv)
	if err != nil {
		return nil, err
	}
	if !key.IsPrivate() {
		return nil, ErrNotPrivate
	}
	return key, nil
}

// Derive walks a parsed derivation path down from a private master key.
func Derive(master *hdkeychain.ExtendedKey, path accounts.DerivationPath) (*hdkeychain.ExtendedKey, error) {
	if !master.IsPrivate() {
		return nil, ErrNotPrivate
	}
	key := master
	for _, child := range path {
		var err error
		if key, err = key.Derive(child); err != nil {
			return nil, fmt.Errorf("derive child %d: %w", child, err)
		}
	}
	return key, nil
}

// PrivKeyBytes returns the 32 bytes of private key material behind an
// extended private key.
func PrivKeyBytes(key *hdkeychain.ExtendedKey) ([]byte, error) {
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}
	return priv.Serialize(), nil
}

// eth : "m/44'/60'/0'/0/0"
// tron: "m/44'/195'/0'/0/0"
func DeriveECDSAKey(path, mnemonic, password string) (*ecdsa.PrivateKey, error) {
	derivationPath, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	master, err := MasterFromMnemonic(mnemonic, password, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}

	key, err := Derive(master, derivationPath)
	if err != nil {
		return nil, err
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}
	return priv.ToECDSA(), nil
}
