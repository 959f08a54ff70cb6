package survey

import (
	"fmt"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// genesisForm is the genesis representation of a form. Amounts are given as
// coins and stored as ledger units.
type genesisForm struct {
	ID                  string         `json:"id"`
	Custodian           weave.Address  `json:"custodian"`
	Owner               weave.Address  `json:"owner"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	CreatedAt           weave.UnixTime `json:"created_at"`
	Content             string         `json:"content"`
	TotalFunded         coin.Coin      `json:"total_funded"`
	Remaining           *coin.Coin     `json:"remaining"`
	PayoutPerRespondent coin.Coin      `json:"payout_per_respondent"`
	Published           bool           `json:"published"`
}

// FromGenesis will parse initial forms and the configuration from genesis and
// save them to the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, packageName, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var state struct {
		Forms []genesisForm `json:"forms"`
	}
	if err := opts.ReadOptions("survey", &state); err != nil {
		return errors.Wrap(err, "cannot load forms")
	}

	bucket := NewFormBucket()
	for i, g := range state.Forms {
		form, err := g.asForm(conf.PayoutTicker)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("form #%d is invalid", i))
		}
		if err := form.Validate(); err != nil {
			return errors.Wrap(err, fmt.Sprintf("form #%d is invalid", i))
		}
		if err := bucket.One(kv, []byte(form.ID), &Form{}); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "form #%d id %q", i, form.ID)
		}
		if _, err := bucket.Put(kv, []byte(form.ID), form); err != nil {
			return errors.Wrap(err, fmt.Sprintf("cannot store #%d form", i))
		}
	}
	return nil
}

func (g *genesisForm) asForm(ticker string) (*Form, error) {
	units := func(name string, c coin.Coin) (uint64, error) {
		if c.Ticker != ticker {
			return 0, errors.Wrapf(errors.ErrCurrency, "%s must be in %s", name, ticker)
		}
		return LedgerUnits(c)
	}

	total, err := units("total_funded", g.TotalFunded)
	if err != nil {
		return nil, err
	}
	remaining := total
	if g.Remaining != nil {
		if remaining, err = units("remaining", *g.Remaining); err != nil {
			return nil, err
		}
	}
	payout, err := units("payout_per_respondent", g.PayoutPerRespondent)
	if err != nil {
		return nil, err
	}
	return &Form{
		Metadata:            &weave.Metadata{Schema: 1},
		ID:                  g.ID,
		Custodian:           g.Custodian,
		Owner:               g.Owner,
		Name:                g.Name,
		Description:         g.Description,
		CreatedAt:           g.CreatedAt,
		Content:             g.Content,
		TotalFunded:         total,
		RemainingBudget:     remaining,
		PayoutPerRespondent: payout,
		Published:           g.Published,
	}, nil
}
