package survey

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SubmitMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*SubmitMsg)(nil)

// Validate ensures the message is well formed. The declared content length
// must match the content, because the storage size is derived from it.
func (m *SubmitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !isFormID(m.FormID) {
		errs = errors.AppendField(errs, "FormID", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "Respondent", m.Respondent.Validate())
	errs = errors.AppendField(errs, "SubmissionID", validateSubmissionID(m.SubmissionID))
	if n := len(m.Content); uint32(n) != m.ContentLength {
		errs = errors.Append(errs, errors.Field("ContentLength", errors.ErrInput,
			"declared %d, got %d", m.ContentLength, n))
	}
	return errs
}

func (SubmitMsg) Path() string {
	return "survey/submit"
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		return errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	if len(m.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", m.Patch.Owner.Validate())
	}
	if t := m.Patch.PayoutTicker; t != "" && !coin.IsCC(t) {
		errs = errors.AppendField(errs, "Patch.PayoutTicker", errors.ErrCurrency)
	}
	return errs
}

func (*UpdateConfigurationMsg) Path() string {
	return "survey/update_configuration"
}
