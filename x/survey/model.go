package survey

import (
	"regexp"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Form{}, migration.NoModification)
	migration.MustRegister(1, &Submission{}, migration.NoModification)
	migration.MustRegister(1, &Payout{}, migration.NoModification)
}

const (
	// maxSubmissionIDLength is the longest submission identifier accepted.
	// Submission identifiers take part in the storage slot derivation and
	// cannot exceed the size of a single slot seed.
	maxSubmissionIDLength = 32

	// maxFormSpace is the largest serialized form size accepted.
	maxFormSpace = 10240

	// addressSpace is the fixed width reserved for an identity in the
	// storage layout, independent of weave.AddressLength.
	addressSpace = 32
)

var isFormID = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}$`).MatchString

var _ orm.CloneableData = (*Form)(nil)

// Validate ensures the form is consistent. In particular the remaining budget
// can never exceed what was funded.
func (f *Form) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", f.Metadata.Validate())
	if !isFormID(f.ID) {
		errs = errors.AppendField(errs, "ID", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "Custodian", f.Custodian.Validate())
	errs = errors.AppendField(errs, "Owner", f.Owner.Validate())
	errs = errors.AppendField(errs, "CreatedAt", f.CreatedAt.Validate())
	if f.PayoutPerRespondent == 0 {
		errs = errors.Append(errs, errors.Field("PayoutPerRespondent", errors.ErrAmount, "must be greater than zero"))
	}
	if f.RemainingBudget > f.TotalFunded {
		errs = errors.Append(errs, errors.Field("RemainingBudget", errors.ErrAmount, "cannot exceed total funded"))
	}
	if n := f.Space(); n > maxFormSpace {
		errs = errors.Append(errs, errors.Field("Content", errors.ErrInput, "form too big"))
	}
	return errs
}

// Space returns the number of bytes the serialized form occupies.
func (f *Form) Space() int {
	return 8 + // discriminator
		4 + len(f.ID) +
		addressSpace + // custodian
		addressSpace + // owner
		4 + len(f.Name) +
		4 + len(f.Description) +
		8 + // created at
		4 + len(f.Content) +
		4 + // visits
		4 + // submissions
		8 + // total funded
		8 + // remaining budget
		8 + // payout per respondent
		1 // published
}

func (f *Form) Copy() orm.CloneableData {
	return &Form{
		Metadata:            f.Metadata.Copy(),
		ID:                  f.ID,
		Custodian:           f.Custodian.Clone(),
		Owner:               f.Owner.Clone(),
		Name:                f.Name,
		Description:         f.Description,
		CreatedAt:           f.CreatedAt,
		Content:             f.Content,
		Visits:              f.Visits,
		Submissions:         f.Submissions,
		TotalFunded:         f.TotalFunded,
		RemainingBudget:     f.RemainingBudget,
		PayoutPerRespondent: f.PayoutPerRespondent,
		Published:           f.Published,
	}
}

// NewFormBucket returns a bucket for storing forms, keyed by their ID.
func NewFormBucket() orm.ModelBucket {
	b := orm.NewModelBucket("form", &Form{},
		orm.WithIndex("owner", idxFormOwner, false),
		orm.WithIndex("custodian", idxFormCustodian, false),
	)
	return migration.NewModelBucket("survey", b)
}

func toForm(obj orm.Object) (*Form, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	f, ok := obj.Value().(*Form)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Form")
	}
	return f, nil
}

func idxFormOwner(obj orm.Object) ([]byte, error) {
	f, err := toForm(obj)
	if err != nil {
		return nil, err
	}
	return f.Owner, nil
}

func idxFormCustodian(obj orm.Object) ([]byte, error) {
	f, err := toForm(obj)
	if err != nil {
		return nil, err
	}
	return f.Custodian, nil
}

// SubmissionSpace returns the storage size of a submission with an
// identifier and content of given lengths.
func SubmissionSpace(idLen, contentLen int) uint32 {
	return uint32(8 + // discriminator
		4 + idLen +
		addressSpace + // respondent
		addressSpace + // form reference
		8 + // created at
		4 + contentLen)
}

// SubmissionKey returns the key a submission of given respondent to given
// form is stored under. There can be only one submission per key.
func SubmissionKey(formID string, respondent weave.Address) []byte {
	key := make([]byte, 0, len(formID)+1+len(respondent))
	key = append(key, formID...)
	key = append(key, '/')
	return append(key, respondent...)
}

var _ orm.CloneableData = (*Submission)(nil)

func (s *Submission) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if !isFormID(s.FormID) {
		errs = errors.AppendField(errs, "FormID", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "Respondent", s.Respondent.Validate())
	errs = errors.AppendField(errs, "SubmissionID", validateSubmissionID(s.SubmissionID))
	errs = errors.AppendField(errs, "CreatedAt", s.CreatedAt.Validate())
	if want := SubmissionSpace(len(s.SubmissionID), len(s.Content)); s.Space != want {
		errs = errors.Append(errs, errors.Field("Space", errors.ErrInput, "does not match content"))
	}
	return errs
}

func validateSubmissionID(id string) error {
	switch n := len(id); {
	case n == 0:
		return errors.ErrEmpty
	case n > maxSubmissionIDLength:
		return errors.Wrapf(errors.ErrInput, "too long, %d > %d", n, maxSubmissionIDLength)
	}
	return nil
}

func (s *Submission) Copy() orm.CloneableData {
	return &Submission{
		Metadata:     s.Metadata.Copy(),
		FormID:       s.FormID,
		Respondent:   s.Respondent.Clone(),
		SubmissionID: s.SubmissionID,
		CreatedAt:    s.CreatedAt,
		Content:      s.Content,
		Space:        s.Space,
	}
}

// NewSubmissionBucket returns a bucket for storing submissions. A submission
// is stored under the key built by SubmissionKey. The unique "slot" index
// guards a respondent from reusing a submission ID.
func NewSubmissionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("subm", &Submission{},
		orm.WithIndex("form", idxSubmissionForm, false),
		orm.WithIndex("slot", idxSubmissionSlot, true),
	)
	return migration.NewModelBucket("survey", b)
}

func toSubmission(obj orm.Object) (*Submission, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	s, ok := obj.Value().(*Submission)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Submission")
	}
	return s, nil
}

func idxSubmissionForm(obj orm.Object) ([]byte, error) {
	s, err := toSubmission(obj)
	if err != nil {
		return nil, err
	}
	return []byte(s.FormID), nil
}

func idxSubmissionSlot(obj orm.Object) ([]byte, error) {
	s, err := toSubmission(obj)
	if err != nil {
		return nil, err
	}
	return slotKey(s.SubmissionID, s.Respondent), nil
}

func slotKey(submissionID string, respondent weave.Address) []byte {
	key := make([]byte, 0, len(submissionID)+len(respondent))
	key = append(key, submissionID...)
	return append(key, respondent...)
}

var _ orm.CloneableData = (*Payout)(nil)

func (p *Payout) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if !isFormID(p.FormID) {
		errs = errors.AppendField(errs, "FormID", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "Respondent", p.Respondent.Validate())
	if err := p.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !p.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "PaidAt", p.PaidAt.Validate())
	return errs
}

func (p *Payout) Copy() orm.CloneableData {
	return &Payout{
		Metadata:   p.Metadata.Copy(),
		FormID:     p.FormID,
		Respondent: p.Respondent.Clone(),
		Amount:     *p.Amount.Clone(),
		PaidAt:     p.PaidAt,
	}
}

// NewPayoutBucket returns a bucket for storing payout receipts. A receipt is
// stored under the same key as the submission it settles.
func NewPayoutBucket() orm.ModelBucket {
	b := orm.NewModelBucket("payout", &Payout{},
		orm.WithIndex("form", idxPayoutForm, false),
	)
	return migration.NewModelBucket("survey", b)
}

func idxPayoutForm(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	p, ok := obj.Value().(*Payout)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Payout")
	}
	return []byte(p.FormID), nil
}
