package survey

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// RegisterQuery will register forms as "/surveys", submissions as
// "/surveys/submissions", payout receipts as "/surveys/payouts" and the
// reconciliation listing as "/surveys/unpaid".
func RegisterQuery(qr weave.QueryRouter) {
	NewFormBucket().Register("surveys", qr)
	NewSubmissionBucket().Register("surveys/submissions", qr)
	NewPayoutBucket().Register("surveys/payouts", qr)
	NewUnpaidQuery().RegisterQuery(qr)
}

var _ weave.QueryHandler = (*UnpaidQuery)(nil)

// UnpaidQuery lists submissions that were recorded, but their payout never
// settled. Query data is the form ID.
type UnpaidQuery struct {
	ctrl *Controller
}

func NewUnpaidQuery() *UnpaidQuery {
	// Balance lookups are not used by Unpaid.
	return &UnpaidQuery{ctrl: NewController(nil)}
}

func (q *UnpaidQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != "" {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	formID := string(data)
	if !isFormID(formID) {
		return nil, errors.Wrap(errors.ErrInput, "form ID")
	}
	subs, err := q.ctrl.Unpaid(db, formID)
	if err != nil {
		return nil, err
	}
	models := make([]weave.Model, 0, len(subs))
	for _, s := range subs {
		raw, err := s.Marshal()
		if err != nil {
			return nil, errors.Wrap(err, "cannot marshal submission")
		}
		models = append(models, weave.Pair(UnpaidDBKey(s.FormID, s.Respondent), raw))
	}
	return models, nil
}

func (q *UnpaidQuery) RegisterQuery(qr weave.QueryRouter) {
	qr.Register("/surveys/unpaid", q)
}

// UnpaidDBKey returns the key under which an unpaid submission is returned.
// It is the database key of the submission.
func UnpaidDBKey(formID string, respondent weave.Address) []byte {
	return append([]byte("subm:"), SubmissionKey(formID, respondent)...)
}
