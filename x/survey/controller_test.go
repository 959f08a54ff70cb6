package survey

import (
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	. "github.com/smartystreets/goconvey/convey"
)

const testTicker = "IOV"

// testEnv is a database with the survey configuration, a funded custodian
// and a single form.
type testEnv struct {
	db        weave.CacheableKVStore
	bank      cash.BaseController
	form      *Form
	custodian weave.Address
	// signer authenticates as the custodian.
	signer weave.Condition
}

// newTestEnv creates a form paying payout units per respondent out of
// budget units, with a custodian holding funds units.
func newTestEnv(t testing.TB, payout, budget, funds uint64) *testEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "survey", "cash")

	conf := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		PayoutTicker: testTicker,
	}
	if err := gconf.Save(db, packageName, &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	signer := weavetest.NewCondition()
	custodian := signer.Address()
	bank := cash.NewController(cash.NewBucket())
	if funds > 0 {
		amount, err := UnitsAsCoin(funds, testTicker)
		if err != nil {
			t.Fatalf("cannot build funds: %s", err)
		}
		if err := bank.CoinMint(db, custodian, amount); err != nil {
			t.Fatalf("cannot fund custodian: %s", err)
		}
	}

	form := &Form{
		Metadata:            &weave.Metadata{Schema: 1},
		ID:                  "feedback-2019",
		Custodian:           custodian,
		Owner:               weavetest.NewCondition().Address(),
		Name:                "Feedback",
		Description:         "Tell us what you think",
		CreatedAt:           weave.AsUnixTime(time.Now()),
		Content:             `{"questions":["How are you?"]}`,
		TotalFunded:         budget,
		RemainingBudget:     budget,
		PayoutPerRespondent: payout,
		Published:           true,
	}
	if _, err := NewFormBucket().Put(db, []byte(form.ID), form); err != nil {
		t.Fatalf("cannot store form: %s", err)
	}

	return &testEnv{db: db, bank: bank, form: form, custodian: custodian, signer: signer}
}

func (e *testEnv) submitMsg(respondent weave.Address, submissionID, content string) *SubmitMsg {
	return &SubmitMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		FormID:        e.form.ID,
		Respondent:    respondent,
		SubmissionID:  submissionID,
		Content:       content,
		ContentLength: uint32(len(content)),
	}
}

func (e *testEnv) loadForm() *Form {
	var f Form
	if err := NewFormBucket().One(e.db, []byte(e.form.ID), &f); err != nil {
		panic(err)
	}
	return &f
}

func (e *testEnv) units(addr weave.Address) uint64 {
	coins, err := e.bank.Balance(e.db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	if err != nil {
		panic(err)
	}
	n, err := balanceUnits(coins, testTicker)
	if err != nil {
		panic(err)
	}
	return n
}

// rejectingBank refuses every transfer.
type rejectingBank struct {
	cash.Controller
}

func (rejectingBank) MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error {
	return errors.Wrap(errors.ErrState, "ledger is frozen")
}

// halfwayBank moves the coins and then fails, leaving a partial transfer
// behind unless the caller reverts it.
type halfwayBank struct {
	cash.Controller
}

func (b halfwayBank) MoveCoins(db weave.KVStore, src, dst weave.Address, amount coin.Coin) error {
	if err := b.Controller.MoveCoins(db, src, dst, amount); err != nil {
		return err
	}
	return errors.Wrap(errors.ErrState, "confirmation lost")
}

func TestControllerSubmit(t *testing.T) {
	Convey("Given a form paying 1 coin out of a 2 coin budget", t, func() {
		const payout = 1000000000
		env := newTestEnv(t, payout, 2*payout, 5*payout)
		ctrl := NewController(env.bank)
		now := weave.AsUnixTime(time.Now())

		r1 := weavetest.NewCondition().Address()
		r2 := weavetest.NewCondition().Address()
		r3 := weavetest.NewCondition().Address()

		Convey("The first respondent is recorded and paid", func() {
			sub, err := ctrl.Submit(env.db, env.submitMsg(r1, "s1", "yes"), now)
			So(err, ShouldBeNil)
			So(sub.Space, ShouldEqual, SubmissionSpace(2, 3))
			So(env.units(r1), ShouldEqual, uint64(payout))
			So(env.units(env.custodian), ShouldEqual, uint64(4*payout))

			form := env.loadForm()
			So(form.Submissions, ShouldEqual, uint32(1))
			So(form.RemainingBudget, ShouldEqual, uint64(payout))

			Convey("Answering again is a duplicate", func() {
				_, err := ctrl.Submit(env.db, env.submitMsg(r1, "s1", "no"), now)
				So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)

				_, err = ctrl.Submit(env.db, env.submitMsg(r1, "s9", "no"), now)
				So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)

				So(env.units(r1), ShouldEqual, uint64(payout))
				So(env.loadForm().Submissions, ShouldEqual, uint32(1))
			})

			Convey("The second respondent drains the budget", func() {
				_, err := ctrl.Submit(env.db, env.submitMsg(r2, "s1", "maybe"), now)
				So(err, ShouldBeNil)

				form := env.loadForm()
				So(form.Submissions, ShouldEqual, uint32(2))
				So(form.RemainingBudget, ShouldEqual, uint64(0))
				So(env.units(env.custodian), ShouldEqual, uint64(3*payout))

				Convey("The first respondent answering again is still a duplicate", func() {
					_, err := ctrl.Check(env.db, env.submitMsg(r1, "s7", "again"))
					So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)

					_, err = ctrl.Submit(env.db, env.submitMsg(r1, "s7", "again"), now)
					So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)
					So(env.loadForm().Submissions, ShouldEqual, uint32(2))
					So(env.units(r1), ShouldEqual, uint64(payout))
				})

				Convey("The third respondent is rejected", func() {
					_, err := ctrl.Submit(env.db, env.submitMsg(r3, "s1", "late"), now)
					So(ErrInsufficientFormBudget.Is(err), ShouldBeTrue)

					var sub Submission
					err = NewSubmissionBucket().One(env.db, SubmissionKey(env.form.ID, r3), &sub)
					So(errors.ErrNotFound.Is(err), ShouldBeTrue)
					So(env.loadForm().Submissions, ShouldEqual, uint32(2))
					So(env.units(r3), ShouldEqual, uint64(0))
				})
			})

			Convey("Nothing is left unpaid", func() {
				unpaid, err := ctrl.Unpaid(env.db, env.form.ID)
				So(err, ShouldBeNil)
				So(unpaid, ShouldBeEmpty)
			})
		})

		Convey("Unknown form is not found", func() {
			msg := env.submitMsg(r1, "s1", "yes")
			msg.FormID = "does-not-exist"
			_, err := ctrl.Submit(env.db, msg, now)
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})

		Convey("Oversized submission is rejected before recording", func() {
			conf := Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				PayoutTicker:       testTicker,
				MaxSubmissionSpace: SubmissionSpace(2, 3),
			}
			So(gconf.Save(env.db, packageName, &conf), ShouldBeNil)

			_, err := ctrl.Submit(env.db, env.submitMsg(r1, "s1", "yes!"), now)
			So(errors.ErrInput.Is(err), ShouldBeTrue)
			So(env.loadForm().Submissions, ShouldEqual, uint32(0))
		})
	})
}

func TestControllerCustodianFunds(t *testing.T) {
	Convey("Given a form whose custodian cannot cover a payout", t, func() {
		const payout = 1000000000
		env := newTestEnv(t, payout, 2*payout, payout/2)
		ctrl := NewController(env.bank)
		now := weave.AsUnixTime(time.Now())
		r1 := weavetest.NewCondition().Address()

		Convey("Custodian funds are checked first", func() {
			_, err := ctrl.Submit(env.db, env.submitMsg(r1, "s1", "yes"), now)
			So(ErrInsufficientCustodianFunds.Is(err), ShouldBeTrue)
			So(env.loadForm().Submissions, ShouldEqual, uint32(0))
		})

		Convey("Even when the budget is gone too", func() {
			form := env.loadForm()
			form.RemainingBudget = 0
			_, err := NewFormBucket().Put(env.db, []byte(form.ID), form)
			So(err, ShouldBeNil)

			_, err = ctrl.Check(env.db, env.submitMsg(r1, "s1", "yes"))
			So(ErrInsufficientCustodianFunds.Is(err), ShouldBeTrue)
		})

		Convey("A custodian without a wallet holds nothing", func() {
			n, err := ctrl.CustodianFunds(env.db, weavetest.NewCondition().Address(), testTicker)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, uint64(0))
		})
	})
}

func TestControllerTransferFailure(t *testing.T) {
	Convey("Given a ledger that fails transfers", t, func() {
		const payout = 1000000000
		env := newTestEnv(t, payout, 2*payout, 5*payout)
		now := weave.AsUnixTime(time.Now())
		r1 := weavetest.NewCondition().Address()

		cases := map[string]cash.Controller{
			"rejecting": rejectingBank{Controller: env.bank},
			"halfway":   halfwayBank{Controller: env.bank},
		}
		for name, bank := range cases {
			bank := bank
			Convey("When the "+name+" ledger is used", func() {
				ctrl := NewController(bank)
				sub, err := ctrl.Submit(env.db, env.submitMsg(r1, "s1", "yes"), now)

				Convey("The failure reason is reported", func() {
					So(ErrTransferFailed.Is(err), ShouldBeTrue)
					So(sub, ShouldNotBeNil)
				})

				Convey("The submission stays recorded and counted", func() {
					var stored Submission
					So(NewSubmissionBucket().One(env.db, SubmissionKey(env.form.ID, r1), &stored), ShouldBeNil)
					So(stored.Content, ShouldEqual, "yes")

					form := env.loadForm()
					So(form.Submissions, ShouldEqual, uint32(1))
					So(form.RemainingBudget, ShouldEqual, uint64(2*payout))
				})

				Convey("No funds moved", func() {
					So(env.units(env.custodian), ShouldEqual, uint64(5*payout))
					So(env.units(r1), ShouldEqual, uint64(0))
				})

				Convey("The submission is listed as unpaid", func() {
					unpaid, err := ctrl.Unpaid(env.db, env.form.ID)
					So(err, ShouldBeNil)
					So(unpaid, ShouldHaveLength, 1)
					So(unpaid[0].Respondent, ShouldResemble, r1)
				})

				Convey("The respondent cannot retry", func() {
					_, err := NewController(env.bank).Submit(env.db, env.submitMsg(r1, "s2", "yes"), now)
					So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)
				})

				Convey("A retry after the custodian is emptied is a duplicate", func() {
					all, err := UnitsAsCoin(5*payout, testTicker)
					So(err, ShouldBeNil)
					elsewhere := weavetest.NewCondition().Address()
					So(env.bank.MoveCoins(env.db, env.custodian, elsewhere, all), ShouldBeNil)
					So(env.units(env.custodian), ShouldEqual, uint64(0))

					retry := NewController(env.bank)
					_, err = retry.Check(env.db, env.submitMsg(r1, "s2", "yes"))
					So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)
					_, err = retry.Submit(env.db, env.submitMsg(r1, "s2", "yes"), now)
					So(ErrDuplicateSubmission.Is(err), ShouldBeTrue)

					// A new respondent still gets the funds error.
					r2 := weavetest.NewCondition().Address()
					_, err = retry.Submit(env.db, env.submitMsg(r2, "s1", "yes"), now)
					So(ErrInsufficientCustodianFunds.Is(err), ShouldBeTrue)
				})
			})
		}
	})
}

func TestAtomicTransfer(t *testing.T) {
	Convey("Given a funded source", t, func() {
		db := store.MemStore()
		migration.MustInitPkg(db, "cash")
		bank := cash.NewController(cash.NewBucket())
		src := weavetest.NewCondition().Address()
		dst := weavetest.NewCondition().Address()
		So(bank.CoinMint(db, src, coin.NewCoin(3, 0, testTicker)), ShouldBeNil)

		Convey("A successful move is written", func() {
			So(AtomicTransfer(db, bank, src, dst, coin.NewCoin(1, 0, testTicker)), ShouldBeNil)
			got, err := bank.Balance(db, dst)
			So(err, ShouldBeNil)
			So(got.Equals(coin.Coins{coin.NewCoinp(1, 0, testTicker)}), ShouldBeTrue)
		})

		Convey("A failed move leaves no trace", func() {
			err := AtomicTransfer(db, halfwayBank{Controller: bank}, src, dst, coin.NewCoin(1, 0, testTicker))
			So(errors.ErrState.Is(err), ShouldBeTrue)

			ctrl := NewController(bank)
			n, err := ctrl.CustodianFunds(db, dst, testTicker)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, uint64(0))
			n, err = ctrl.CustodianFunds(db, src, testTicker)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3*unitsPerCoin)
		})

		Convey("Overdraft is refused", func() {
			err := AtomicTransfer(db, bank, src, dst, coin.NewCoin(4, 0, testTicker))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPayoutAmount(t *testing.T) {
	form := &Form{ID: "feedback-2019", PayoutPerRespondent: 1500000000}

	amount, err := payoutAmount(&Configuration{PayoutTicker: testTicker}, form)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !amount.Equals(coin.NewCoin(1, 500000000, testTicker)) {
		t.Fatalf("unexpected amount: %s", amount)
	}

	if _, err := payoutAmount(&Configuration{PayoutTicker: "not a ticker"}, form); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %+v", err)
	}
}
