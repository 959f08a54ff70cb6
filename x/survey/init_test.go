package survey

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	const genesis = `
{
	"conf": {
		"survey": {
			"metadata": {"schema": 1},
			"payout_ticker": "IOV",
			"max_submission_space": 4096
		}
	},
	"survey": {
		"forms": [
			{
				"id": "onboarding",
				"custodian": "b1ca7e78f74423ae01da3b51e676934d9105f282",
				"owner": "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0",
				"name": "Onboarding",
				"created_at": 1546300800,
				"content": "{}",
				"total_funded": {"whole": 3, "ticker": "IOV"},
				"remaining": {"whole": 1, "fractional": 500000000, "ticker": "IOV"},
				"payout_per_respondent": {"fractional": 500000000, "ticker": "IOV"},
				"published": true
			},
			{
				"id": "exit",
				"custodian": "b1ca7e78f74423ae01da3b51e676934d9105f282",
				"owner": "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0",
				"created_at": 1546300800,
				"total_funded": {"whole": 1, "ticker": "IOV"},
				"payout_per_respondent": {"whole": 1, "ticker": "IOV"}
			}
		]
	}
}`

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "survey")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, "IOV", conf.PayoutTicker)
	assert.Equal(t, uint32(4096), conf.MaxSubmissionSpace)

	ctrl := NewController(nil)
	f, err := ctrl.Form(db, "onboarding")
	assert.Nil(t, err)
	assert.Equal(t, uint64(3000000000), f.TotalFunded)
	assert.Equal(t, uint64(1500000000), f.RemainingBudget)
	assert.Equal(t, uint64(500000000), f.PayoutPerRespondent)
	assert.Equal(t, true, f.Published)

	f, err = ctrl.Form(db, "exit")
	assert.Nil(t, err)
	assert.Equal(t, f.TotalFunded, f.RemainingBudget)
}

func TestGenesisWithInvalidForm(t *testing.T) {
	const form = `
		"id": "f1",
		"custodian": "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"owner": "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0",
		"created_at": 1546300800,
		"total_funded": {"whole": 1, "ticker": "IOV"}`

	cases := map[string]struct {
		forms   string
		wantErr *errors.Error
	}{
		"wrong ticker": {
			forms:   `[{` + form + `, "payout_per_respondent": {"whole": 1, "ticker": "ETH"}}]`,
			wantErr: errors.ErrCurrency,
		},
		"no payout": {
			forms:   `[{` + form + `}]`,
			wantErr: errors.ErrCurrency,
		},
		"remaining above total": {
			forms:   `[{` + form + `, "remaining": {"whole": 2, "ticker": "IOV"}, "payout_per_respondent": {"whole": 1, "ticker": "IOV"}}]`,
			wantErr: errors.ErrAmount,
		},
		"duplicated id": {
			forms: `[{` + form + `, "payout_per_respondent": {"whole": 1, "ticker": "IOV"}},
				{` + form + `, "payout_per_respondent": {"whole": 1, "ticker": "IOV"}}]`,
			wantErr: errors.ErrDuplicate,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			genesis := `{
				"conf": {"survey": {"metadata": {"schema": 1}, "payout_ticker": "IOV"}},
				"survey": {"forms": ` + tc.forms + `}
			}`
			var opts weave.Options
			if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}

			db := store.MemStore()
			migration.MustInitPkg(db, "survey")
			var ini Initializer
			if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestGenesisRequiresConfiguration(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "survey")
	var ini Initializer
	if err := ini.FromGenesis(weave.Options{}, weave.GenesisParams{}, db); err == nil {
		t.Fatal("want missing configuration error")
	}
}
