package survey

import (
	"github.com/iov-one/weave/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "surveyhub",
		Subsystem: "survey",
		Name:      "submissions_total",
		Help:      "Number of delivered submissions, labeled by result.",
	}, []string{"result"})

	payoutUnitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "surveyhub",
		Subsystem: "survey",
		Name:      "payout_units_total",
		Help:      "Ledger units paid out to respondents.",
	})
)

// submissionResult returns the metric label describing the outcome of a
// delivered submission.
func submissionResult(err error) string {
	switch {
	case err == nil:
		return "settled"
	case ErrTransferFailed.Is(err):
		return "transfer_failed"
	case ErrDuplicateSubmission.Is(err):
		return "duplicate"
	case ErrInsufficientCustodianFunds.Is(err):
		return "custodian_funds"
	case ErrInsufficientFormBudget.Is(err):
		return "form_budget"
	case errors.ErrNotFound.Is(err):
		return "unknown_form"
	default:
		return "rejected"
	}
}
