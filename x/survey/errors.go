package survey

import (
	"github.com/iov-one/weave/errors"
)

// ABCI Response Codes
// survey takes 210-219
var (
	// ErrDuplicateSubmission is returned when a respondent already answered a
	// form. It is not retryable.
	ErrDuplicateSubmission = errors.Register(210, "duplicate submission")

	// ErrInsufficientCustodianFunds is returned when the custodian cannot
	// cover a single payout. Submitting again after the custodian is funded
	// may succeed.
	ErrInsufficientCustodianFunds = errors.Register(211, "insufficient custodian funds")

	// ErrInsufficientFormBudget is returned when the remaining form budget is
	// lower than the per respondent payout.
	ErrInsufficientFormBudget = errors.Register(212, "insufficient form budget")

	// ErrTransferFailed is returned when a payout was attempted after the
	// submission was recorded but the ledger rejected it.
	ErrTransferFailed = errors.Register(213, "payout transfer failed")

	// ErrBudgetUnderflow signals a broken form budget accounting.
	ErrBudgetUnderflow = errors.Register(214, "form budget underflow")
)
