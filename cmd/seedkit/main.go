// seedkit derives deterministic secrets (BIP-85) from a BIP-32 master
// key, and covers the surrounding chores: generating a fresh BIP-39
// mnemonic, validating one, and turning one into a master xprv.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"github.com/keyfu/seedsdk/bip85"
	"github.com/keyfu/seedsdk/hdw"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var wordCountBits = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

var rootCmd = &cobra.Command{
	Use:           "seedkit",
	Short:         "Deterministic secrets from a BIP-32 master key",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(mnemonicCmd(), validateCmd(), xprvCmd(), deriveCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("seedkit failed")
		os.Exit(1)
	}
}

func mnemonicCmd() *cobra.Command {
	var number int
	var pretty bool

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a fresh BIP-39 mnemonic from system randomness",
		RunE: func(cmd *cobra.Command, args []string) error {
			nbits, ok := wordCountBits[number]
			if !ok {
				return fmt.Errorf("--number must be one of 12, 15, 18, 21, 24")
			}
			entropy, err := bip39.NewEntropy(nbits)
			if err != nil {
				return err
			}
			words, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			if pretty {
				for i, w := range strings.Fields(words) {
					fmt.Printf("%d) %s\n", i+1, w)
				}
				return nil
			}
			fmt.Println(words)
			return nil
		},
	}
	cmd.Flags().IntVarP(&number, "number", "n", 24, "number of mnemonic words")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "number each word on its own line")
	return cmd
}

func validateCmd() *cobra.Command {
	var mnemonic string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate and normalize a BIP-39 mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := inputOrPipe(mnemonic, "--mnemonic")
			if err != nil {
				return err
			}
			normalized := strings.Join(strings.Fields(strings.ToLower(words)), " ")
			if !bip39.IsMnemonicValid(normalized) {
				return fmt.Errorf("invalid mnemonic: bad word, checksum, or word count")
			}
			fmt.Println(normalized)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mnemonic, "mnemonic", "m", "", "quoted mnemonic")
	return cmd
}

func xprvCmd() *cobra.Command {
	var mnemonic, passphrase string
	var testnet bool

	cmd := &cobra.Command{
		Use:   "xprv",
		Short: "Derive a BIP-32 master xprv from a mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := inputOrPipe(mnemonic, "--mnemonic")
			if err != nil {
				return err
			}
			net := &chaincfg.MainNetParams
			if testnet {
				net = &chaincfg.TestNet3Params
			}
			master, err := hdw.MasterFromMnemonic(words, passphrase, net)
			if err != nil {
				return err
			}
			fmt.Println(master)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mnemonic, "mnemonic", "m", "", "quoted mnemonic")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "BIP-39 passphrase")
	cmd.Flags().BoolVar(&testnet, "testnet", false, "derive a testnet tprv")
	return cmd
}

func deriveCmd() *cobra.Command {
	var application, xprv string
	var number, index, sides int

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a BIP-85 secret from a master xprv",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := inputOrPipe(xprv, "--xprv")
			if err != nil {
				return err
			}
			master, err := hdw.ParseMaster(key)
			if err != nil {
				return err
			}

			app := bip85.Application(application)
			if _, ok := bip85.Codes[app]; !ok {
				return fmt.Errorf("unrecognized --application %q", application)
			}
			if number < 1 {
				return fmt.Errorf("--number must be positive")
			}

			var params []uint32
			switch app {
			case bip85.AppWords:
				params = []uint32{bip85.LanguageEnglish, uint32(number), uint32(index)}
			case bip85.AppWIF, bip85.AppXPRV:
				if cmd.Flags().Changed("number") {
					return fmt.Errorf("--number has no effect for --application %s", app)
				}
				params = []uint32{uint32(index)}
			case bip85.AppDice:
				params = []uint32{uint32(sides), uint32(number), uint32(index)}
			default: // hex, base64, base85, drng
				params = []uint32{uint32(number), uint32(index)}
			}

			res, err := bip85.DeriveApplication(master, app, params...)
			if err != nil {
				if errors.Is(err, bip85.ErrUnusableKey) {
					log.Warn().Int("index", index).Msg("derived key unusable, rerun with the next index")
				}
				return err
			}
			fmt.Println(res.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&application, "application", "a", "", "one of base64, base85, dice, drng, hex, words, wif, xprv")
	cmd.Flags().IntVarP(&number, "number", "n", 24, "output length in bytes, chars, words, or rolls")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "child index, increment for fresh secrets")
	cmd.Flags().IntVarP(&sides, "sides", "s", 10, "number of die sides for --application dice")
	cmd.Flags().StringVarP(&xprv, "xprv", "x", "", "extended private master key (or pipe it in)")
	cobra.CheckErr(cmd.MarkFlagRequired("application"))
	return cmd
}

// inputOrPipe prefers the flag value and falls back to the last
// non-empty line on stdin when stdin is a pipe.
func inputOrPipe(flag, name string) (string, error) {
	if s := strings.TrimSpace(flag); s != "" {
		return s, nil
	}
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return "", fmt.Errorf("missing %s (or pipe it in)", name)
	}
	var last string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		return "", fmt.Errorf("missing %s (or pipe it in)", name)
	}
	return last, nil
}
