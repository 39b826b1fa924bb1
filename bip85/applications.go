package bip85

import "fmt"

// Application names the output format a BIP-85 path targets.
type Application string

const (
	AppBase64 Application = "base64"
	AppBase85 Application = "base85"
	AppDice   Application = "dice"
	AppDRNG   Application = "drng"
	AppHex    Application = "hex"
	AppWords  Application = "words"
	AppWIF    Application = "wif"
	AppXPRV   Application = "xprv"
)

// PurposeCode is the registered BIP-85 purpose segment, 83696968'.
const PurposeCode uint32 = 83696968

const hardened uint32 = 0x80000000

const (
	codeDRNG   uint32 = 0
	codeWIF    uint32 = 2
	codeXPRV   uint32 = 32
	codeWords  uint32 = 39
	codeDice   uint32 = 89101
	codeHex    uint32 = 128169
	codeBase64 uint32 = 707764
	codeBase85 uint32 = 707785
)

// Codes maps each application to its registered hardened path-segment
// code. Read-only after init.
var Codes = map[Application]uint32{
	AppBase64: codeBase64,
	AppBase85: codeBase85,
	AppDice:   codeDice,
	AppDRNG:   codeDRNG,
	AppHex:    codeHex,
	AppWords:  codeWords,
	AppWIF:    codeWIF,
	AppXPRV:   codeXPRV,
}

// LanguageEnglish is the only word-list language code this package emits.
const LanguageEnglish uint32 = 0

// wordBits maps the word-count path code to mnemonic entropy bits.
var wordBits = map[uint32]int{
	12: 128,
	18: 192,
	21: 224,
	24: 256,
}

type appRange struct{ min, max uint32 }

var ranges = map[Application]appRange{
	AppBase64: {20, 86},
	AppBase85: {10, 80},
	AppHex:    {16, 64},
}

func checkRange(app Application, param string, v uint32) error {
	r := ranges[app]
	if v < r.min || v > r.max {
		return &RangeError{
			App:   app,
			Param: param,
			Value: v,
			Bound: fmt.Sprintf("[%d, %d]", r.min, r.max),
		}
	}
	return nil
}
