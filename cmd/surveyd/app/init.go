package surveyd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/lexuandaibn123/surveyhub/x/survey"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DefaultTicker is the payout currency used when none is given.
const DefaultTicker = "SVY"

// GenInitOptions will produce some basic options for one rich custodian
// account funding a sample form, to use for dev mode.
//
// Arguments are an optional ticker and an optional hex encoded custodian
// address.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr weave.Address
	if len(args) > 1 {
		a, err := weave.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
		addr = a
	} else {
		// if no address provided, auto-generate one
		// and print out the key
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}
	return GenesisAppState(addr, ticker)
}

// GenesisAppState returns the application state of a chain with one funded
// custodian account and the "welcome" sample form paid out in ticker.
func GenesisAppState(custodian weave.Address, ticker string) (json.RawMessage, error) {
	type (
		dict  map[string]interface{}
		array []interface{}
	)
	// Fees are collected by an address that nobody holds a key for.
	collector := weave.NewCondition("surveyd", "collector", []byte{0}).Address()

	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": custodian,
				"coins": array{
					dict{"whole": 1000000, "ticker": ticker},
				},
			},
		},
		"survey": dict{
			"forms": array{
				dict{
					"id":                    "welcome",
					"custodian":             custodian,
					"owner":                 custodian,
					"name":                  "Welcome survey",
					"description":           "Tell us how you found us",
					"created_at":            weave.AsUnixTime(time.Now()),
					"content":               `{"questions":["How did you find us?"]}`,
					"total_funded":          dict{"whole": 100, "ticker": ticker},
					"payout_per_respondent": dict{"whole": 1, "ticker": ticker},
					"published":             true,
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				Metadata:         &weave.Metadata{Schema: 1},
				CollectorAddress: collector,
				MinimalFee:       coin.Coin{}, // no fee
			},
			"migration": dict{
				"metadata": dict{"schema": 1},
				"admin":    custodian,
			},
			"survey": survey.Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        custodian,
				PayoutTicker: ticker,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "survey", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "migration", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "survey.db")
	}

	application, err := Application("surveyd", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// Initializers returns the genesis initializers of all extensions used by the
// application.
func Initializers() weave.Initializer {
	return app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&survey.Initializer{},
	)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
