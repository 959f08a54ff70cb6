package survey

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

const (
	// packageName is used for schema versioning and as the configuration
	// namespace.
	packageName = "survey"

	// defaultMaxSubmissionSpace is used when the configuration does not
	// limit the submission size.
	defaultMaxSubmissionSpace = 10240
)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	// Owner field is optional.
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	if !coin.IsCC(c.PayoutTicker) {
		errs = errors.AppendField(errs, "PayoutTicker", errors.ErrCurrency)
	}
	return errs
}

// submissionSpaceLimit returns the configured submission size limit.
func (c *Configuration) submissionSpaceLimit() uint32 {
	if c.MaxSubmissionSpace == 0 {
		return defaultMaxSubmissionSpace
	}
	return c.MaxSubmissionSpace
}

func loadConf(db weave.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// NewConfigHandler returns a handler that updates the survey configuration.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(packageName, &conf, auth, migration.CurrentAdmin)
}
