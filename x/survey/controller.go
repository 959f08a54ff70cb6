package survey

import (
	"math"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x/cash"
)

// Controller implements the submission acceptance protocol. A repeated
// answer is rejected before anything else. A new one goes through the
// following states:
//
//   requested -> funds checked -> recorded -> payout attempted -> settled
//                                                             \-> failed
//
// A failed payout leaves the submission recorded and counted while the form
// budget stays untouched. Such submissions are reported by Unpaid.
type Controller struct {
	forms       orm.ModelBucket
	submissions orm.ModelBucket
	payouts     orm.ModelBucket
	bank        cash.Controller
}

// NewController returns a controller paying respondents using given cash
// controller.
func NewController(bank cash.Controller) *Controller {
	return &Controller{
		forms:       NewFormBucket(),
		submissions: NewSubmissionBucket(),
		payouts:     NewPayoutBucket(),
		bank:        bank,
	}
}

// Check runs every precondition of Submit without modifying the state. It
// returns the form the message is submitted to.
func (c *Controller) Check(db weave.KVStore, msg *SubmitMsg) (*Form, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	form, err := c.Form(db, msg.FormID)
	if err != nil {
		return nil, err
	}
	if err := c.checkUnique(db, msg.FormID, msg.Respondent, msg.SubmissionID); err != nil {
		return nil, err
	}
	if err := c.checkFunds(db, conf, form); err != nil {
		return nil, err
	}
	if err := checkSpace(conf, msg); err != nil {
		return nil, err
	}
	return form, nil
}

// Submit records the submission and pays the respondent out of the form
// custodian funds.
//
// When the payout transfer fails ErrTransferFailed is returned together with
// the already recorded submission.
func (c *Controller) Submit(db weave.KVStore, msg *SubmitMsg, now weave.UnixTime) (*Submission, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	form, err := c.Form(db, msg.FormID)
	if err != nil {
		return nil, err
	}

	// A repeated answer is always a duplicate, whatever the state of the
	// funds.
	if err := c.checkUnique(db, msg.FormID, msg.Respondent, msg.SubmissionID); err != nil {
		return nil, err
	}
	if err := c.checkFunds(db, conf, form); err != nil {
		return nil, err
	}
	if err := checkSpace(conf, msg); err != nil {
		return nil, err
	}
	amount, err := payoutAmount(conf, form)
	if err != nil {
		return nil, err
	}

	sub := &Submission{
		Metadata:     &weave.Metadata{Schema: 1},
		FormID:       form.ID,
		Respondent:   msg.Respondent,
		SubmissionID: msg.SubmissionID,
		CreatedAt:    now,
		Content:      msg.Content,
		Space:        SubmissionSpace(len(msg.SubmissionID), len(msg.Content)),
	}
	if err := c.record(db, form, sub); err != nil {
		return nil, err
	}

	if err := AtomicTransfer(db, c.bank, form.Custodian, sub.Respondent, amount); err != nil {
		return sub, errors.Wrapf(ErrTransferFailed, "%s to %s: %s", amount, sub.Respondent, err)
	}

	if err := c.settle(db, form, sub, amount, now); err != nil {
		return sub, err
	}
	return sub, nil
}

// checkFunds ensures that both the custodian and the form budget can cover a
// single payout. Custodian funds are checked first.
func (c *Controller) checkFunds(db weave.KVStore, conf *Configuration, form *Form) error {
	available, err := c.CustodianFunds(db, form.Custodian, conf.PayoutTicker)
	if err != nil {
		return err
	}
	if available < form.PayoutPerRespondent {
		return errors.Wrapf(ErrInsufficientCustodianFunds,
			"custodian holds %d units, payout is %d units", available, form.PayoutPerRespondent)
	}
	if form.RemainingBudget < form.PayoutPerRespondent {
		return errors.Wrapf(ErrInsufficientFormBudget,
			"form %q has %d units left, payout is %d units", form.ID, form.RemainingBudget, form.PayoutPerRespondent)
	}
	return nil
}

// CustodianFunds returns the balance of the custodian, in ledger units of
// the payout currency. A custodian without a wallet has no funds.
func (c *Controller) CustodianFunds(db weave.KVStore, custodian weave.Address, ticker string) (uint64, error) {
	coins, err := c.bank.Balance(db, custodian)
	switch {
	case err == nil:
		return balanceUnits(coins, ticker)
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "custodian balance")
	}
}

func (c *Controller) checkUnique(db weave.ReadOnlyKVStore, formID string, respondent weave.Address, submissionID string) error {
	switch err := c.submissions.One(db, SubmissionKey(formID, respondent), &Submission{}); {
	case err == nil:
		return errors.Wrapf(ErrDuplicateSubmission, "respondent %s already answered %q", respondent, formID)
	case !errors.ErrNotFound.Is(err):
		return errors.Wrap(err, "cannot load submission")
	}

	var taken []*Submission
	if _, err := c.submissions.ByIndex(db, "slot", slotKey(submissionID, respondent), &taken); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot query submission slot")
	}
	if len(taken) != 0 {
		return errors.Wrapf(ErrDuplicateSubmission, "submission %q already used", submissionID)
	}
	return nil
}

// payoutAmount returns the single respondent payout of the form as a coin
// of the configured ticker. It must succeed before anything is recorded.
func payoutAmount(conf *Configuration, form *Form) (coin.Coin, error) {
	amount, err := UnitsAsCoin(form.PayoutPerRespondent, conf.PayoutTicker)
	if err != nil {
		return coin.Coin{}, errors.Wrapf(err, "payout amount of form %q", form.ID)
	}
	return amount, nil
}

func checkSpace(conf *Configuration, msg *SubmitMsg) error {
	space := SubmissionSpace(len(msg.SubmissionID), len(msg.Content))
	if limit := conf.submissionSpaceLimit(); space > limit {
		return errors.Wrapf(errors.ErrInput, "submission requires %d bytes, limit is %d", space, limit)
	}
	return nil
}

// record stores the submission and increments the form submission counter.
func (c *Controller) record(db weave.KVStore, form *Form, sub *Submission) error {
	if err := c.checkUnique(db, sub.FormID, sub.Respondent, sub.SubmissionID); err != nil {
		return err
	}
	if form.Submissions == math.MaxUint32 {
		return errors.Wrap(errors.ErrOverflow, "submission counter")
	}
	if _, err := c.submissions.Put(db, SubmissionKey(sub.FormID, sub.Respondent), sub); err != nil {
		if errors.ErrDuplicate.Is(err) {
			return errors.Wrap(ErrDuplicateSubmission, err.Error())
		}
		return errors.Wrap(err, "cannot store submission")
	}
	form.Submissions++
	if _, err := c.forms.Put(db, []byte(form.ID), form); err != nil {
		return errors.Wrap(err, "cannot store form")
	}
	return nil
}

// settle decrements the form budget by a single payout and stores the payout
// receipt.
func (c *Controller) settle(db weave.KVStore, form *Form, sub *Submission, amount coin.Coin, now weave.UnixTime) error {
	if form.RemainingBudget < form.PayoutPerRespondent {
		return errors.Wrapf(ErrBudgetUnderflow, "form %q", form.ID)
	}
	form.RemainingBudget -= form.PayoutPerRespondent
	if _, err := c.forms.Put(db, []byte(form.ID), form); err != nil {
		return errors.Wrap(err, "cannot store form")
	}

	receipt := &Payout{
		Metadata:   &weave.Metadata{Schema: 1},
		FormID:     sub.FormID,
		Respondent: sub.Respondent,
		Amount:     amount,
		PaidAt:     now,
	}
	if _, err := c.payouts.Put(db, SubmissionKey(sub.FormID, sub.Respondent), receipt); err != nil {
		return errors.Wrap(err, "cannot store payout")
	}
	payoutUnitsTotal.Add(float64(form.PayoutPerRespondent))
	return nil
}

// Form returns the form with given ID.
func (c *Controller) Form(db weave.ReadOnlyKVStore, formID string) (*Form, error) {
	var form Form
	if err := c.forms.One(db, []byte(formID), &form); err != nil {
		return nil, errors.Wrapf(err, "form %q", formID)
	}
	return &form, nil
}

// Unpaid returns all submissions to given form that were recorded but never
// paid out.
func (c *Controller) Unpaid(db weave.ReadOnlyKVStore, formID string) ([]*Submission, error) {
	var subs []*Submission
	if _, err := c.submissions.ByIndex(db, "form", []byte(formID), &subs); err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "cannot query submissions")
	}

	var unpaid []*Submission
	for _, s := range subs {
		switch err := c.payouts.One(db, SubmissionKey(s.FormID, s.Respondent), &Payout{}); {
		case err == nil:
			// Settled.
		case errors.ErrNotFound.Is(err):
			unpaid = append(unpaid, s)
		default:
			return nil, errors.Wrap(err, "cannot load payout")
		}
	}
	return unpaid, nil
}

// AtomicTransfer moves given amount from src to dst. When the move fails the
// store is left untouched.
func AtomicTransfer(db weave.KVStore, bank cash.CoinMover, src, dst weave.Address, amount coin.Coin) error {
	cdb, ok := db.(weave.CacheableKVStore)
	if !ok {
		return bank.MoveCoins(db, src, dst, amount)
	}
	cache := cdb.CacheWrap()
	if err := bank.MoveCoins(cache, src, dst, amount); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write transfer")
	}
	return nil
}
