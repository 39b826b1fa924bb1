package hdw_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/stretchr/testify/require"

	"github.com/keyfu/seedsdk/hdw"
)

// BIP-32 test vector 1
const (
	vec1SeedHex   = "000102030405060708090a0b0c0d0e0f"
	vec1MasterPrv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	vec1MasterPub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	vec1Child0H   = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
)

func TestMasterVector(t *testing.T) {
	seed, err := hex.DecodeString(vec1SeedHex)
	require.NoError(t, err)

	master, err := hdw.Master(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, vec1MasterPrv, master.String())

	child, err := hdw.Derive(master, accounts.DerivationPath{hdkeychain.HardenedKeyStart})
	require.NoError(t, err)
	require.Equal(t, vec1Child0H, child.String())

	key, err := hdw.PrivKeyBytes(child)
	require.NoError(t, err)
	require.Len(t, key, 32)
}

func TestParseMaster(t *testing.T) {
	master, err := hdw.ParseMaster(vec1MasterPrv)
	require.NoError(t, err)
	require.True(t, master.IsPrivate())
	require.Equal(t, vec1MasterPrv, master.String())

	_, err = hdw.ParseMaster(vec1MasterPub)
	require.ErrorIs(t, err, hdw.ErrNotPrivate)

	_, err = hdw.ParseMaster("not a key")
	require.Error(t, err)
}

func TestDeriveRequiresPrivateMaster(t *testing.T) {
	master, err := hdw.ParseMaster(vec1MasterPrv)
	require.NoError(t, err)

	neutered, err := master.Neuter()
	require.NoError(t, err)

	_, err = hdw.Derive(neutered, accounts.DerivationPath{0})
	require.ErrorIs(t, err, hdw.ErrNotPrivate)
}

func TestDeriveECDSAKey(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	priv, err := hdw.DeriveECDSAKey("m/44'/60'/0'/0/0", mnemonic, "")
	require.NoError(t, err)
	require.Equal(t,
		"1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727",
		fmt.Sprintf("%064x", priv.D))
}

func TestMasterFromMnemonicDeterministic(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	a, err := hdw.MasterFromMnemonic(mnemonic, "", &chaincfg.MainNetParams)
	require.NoError(t, err)
	b, err := hdw.MasterFromMnemonic(mnemonic, "", &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	// passphrase changes the seed, and so the master
	c, err := hdw.MasterFromMnemonic(mnemonic, "TREZOR", &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.NotEqual(t, a.String(), c.String())
}
