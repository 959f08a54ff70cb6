package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/weave/crypto"
	"github.com/lexuandaibn123/surveyhub/client"
	"github.com/mr-tron/base58/base58"
	"github.com/stellar/go/exp/crypto/derivation"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

// defaultDerivationPath follows bip44 with the coin type of weave based
// chains.
const defaultDerivationPath = "m/44'/234'/0'"

func cmdMnemonic(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate and print out a new mnemonic. Keep the result in a safe place. A
private key can be derived from it using the keygen command.
`)
		fl.PrintDefaults()
	}
	var (
		bitSizeFl = fl.Uint("size", 256, "Entropy bit size, one of 128, 160, 192, 224 or 256.")
	)
	fl.Parse(args)

	entropy, err := bip39.NewEntropy(int(*bitSizeFl))
	if err != nil {
		return fmt.Errorf("cannot create entropy instance: %s", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return fmt.Errorf("cannot create mnemonic instance: %s", err)
	}
	_, err = fmt.Fprintln(output, mnemonic)
	return err
}

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a mnemonic from the standard input and derive a private key from it.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use SURVEYCLI_PRIV_KEY environment variable to set it.")
		pathFl = fl.String("path", defaultDerivationPath, "Derivation path as described in BIP-44.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first to ensure we do not delete
		// such crucial data by an accident (bad command usage).
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	mnemonic, err := readMnemonic(input)
	if err != nil {
		return err
	}
	priv, err := keygen(mnemonic, *pathFl)
	if err != nil {
		return fmt.Errorf("cannot generate key: %s", err)
	}
	key, err := client.NewPrivateKey(priv)
	if err != nil {
		return err
	}
	if err := client.SavePrivateKey(key, *keyPathFl, false); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	return nil
}

// readMnemonic reads the first line of the input.
func readMnemonic(input io.Reader) (string, error) {
	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("cannot read mnemonic: %s", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no mnemonic given")
	}
	return line, nil
}

// keygen returns a private key generated using given mnemonic and derivation
// path.
func keygen(mnemonic, path string) (ed25519.PrivateKey, error) {
	// Whitespace must be a single space between words, so that the same
	// mnemonic always produces the same seed.
	if strings.Join(strings.Fields(mnemonic), " ") != mnemonic {
		return nil, errors.New("mnemonic words must be separated by a single space")
	}
	// We do not allow for passphrase.
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %s", err)
	}

	key, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("cannot derive master key from seed: %s", err)
	}

	_, priv, err := ed25519.GenerateKey(bytes.NewReader(key.Key))
	if err != nil {
		return nil, fmt.Errorf("cannot generate ed25519 private key: %s", err)
	}
	return priv, nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use SURVEYCLI_PRIV_KEY environment variable to set it.")
		formatFl = fl.String("format", "hex", "Address encoding, one of hex, bech32 or base58.")
		prefixFl = fl.String("prefix", "survey", "Human readable part of a bech32 address.")
	)
	fl.Parse(args)

	key, err := client.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}
	addr, err := formatAddress(key.PublicKey(), *formatFl, *prefixFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, addr)
	return err
}

// formatAddress returns the address of the public key in the requested
// encoding.
func formatAddress(pub *crypto.PublicKey, format, prefix string) (string, error) {
	addr := pub.Address()
	switch format {
	case "hex":
		return addr.String(), nil
	case "bech32":
		b, err := toBech32(prefix, pub.GetEd25519())
		if err != nil {
			return "", fmt.Errorf("cannot serialize to bech32: %s", err)
		}
		return string(b), nil
	case "base58":
		return base58.Encode(addr), nil
	default:
		return "", fmt.Errorf("unknown address format %q", format)
	}
}

// toBech32 returns the bech32 encoded address of the ed25519 public key.
func toBech32(prefix string, pubkey ed25519.PublicKey) ([]byte, error) {
	key := &crypto.PublicKey{
		Pub: &crypto.PublicKey_Ed25519{Ed25519: pubkey},
	}
	data, err := bech32.ConvertBits(key.Address(), 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("cannot convert bits: %s", err)
	}
	enc, err := bech32.Encode(prefix, data)
	if err != nil {
		return nil, fmt.Errorf("cannot encode: %s", err)
	}
	return []byte(enc), nil
}
