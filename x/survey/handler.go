package survey

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	submitCost int64 = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry(packageName, r)

	r.Handle(&SubmitMsg{}, NewSubmitHandler(auth, NewController(cashctrl)))
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// SubmitHandler processes respondent submissions.
type SubmitHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weave.Handler = SubmitHandler{}

// NewSubmitHandler returns a handler for SubmitMsg.
func NewSubmitHandler(auth x.Authenticator, ctrl *Controller) SubmitHandler {
	return SubmitHandler{auth: auth, ctrl: ctrl}
}

// Check runs all submission preconditions and returns the cost of
// executing it.
func (h SubmitHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Check(db, msg); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: submitCost}, nil
}

// Deliver records the submission and pays the respondent. A failed payout
// is returned as an error, but the submission remains recorded.
func (h SubmitHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	sub, err := h.ctrl.Submit(db, msg, weave.AsUnixTime(now))
	submissionsTotal.WithLabelValues(submissionResult(err)).Inc()
	if err != nil {
		if ErrTransferFailed.Is(err) {
			weave.GetLogger(ctx).Error("survey payout failed",
				"form", msg.FormID,
				"respondent", msg.Respondent,
				"err", err)
		}
		return nil, err
	}
	return &weave.DeliverResult{Data: SubmissionKey(sub.FormID, sub.Respondent)}, nil
}

// validate does all common pre-processing between Check and Deliver.
// Both the respondent and the form custodian must sign the transaction.
func (h SubmitHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SubmitMsg, error) {
	var msg SubmitMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Respondent) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "respondent signature required")
	}
	form, err := h.ctrl.Form(db, msg.FormID)
	if err != nil {
		return nil, err
	}
	if form.Custodian.Equals(msg.Respondent) {
		return nil, errors.Wrap(errors.ErrInput, "custodian cannot answer its own form")
	}
	if !h.auth.HasAddress(ctx, form.Custodian) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "custodian signature required")
	}
	return &msg, nil
}
