package survey

import (
	"strings"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestFormValidate(t *testing.T) {
	cases := map[string]struct {
		Mutator func(*Form)
		Field   string
		Exp     *errors.Error
	}{
		"valid form": {},
		"invalid id": {
			Mutator: func(f *Form) { f.ID = "" },
			Field:   "ID",
			Exp:     errors.ErrInput,
		},
		"missing custodian": {
			Mutator: func(f *Form) { f.Custodian = nil },
			Field:   "Custodian",
			Exp:     errors.ErrEmpty,
		},
		"zero payout": {
			Mutator: func(f *Form) { f.PayoutPerRespondent = 0 },
			Field:   "PayoutPerRespondent",
			Exp:     errors.ErrAmount,
		},
		"remaining exceeds funded": {
			Mutator: func(f *Form) { f.RemainingBudget = f.TotalFunded + 1 },
			Field:   "RemainingBudget",
			Exp:     errors.ErrAmount,
		},
		"content too big": {
			Mutator: func(f *Form) { f.Content = strings.Repeat("q", maxFormSpace) },
			Field:   "Content",
			Exp:     errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := &Form{
				Metadata:            &weave.Metadata{Schema: 1},
				ID:                  "f1",
				Custodian:           weavetest.NewCondition().Address(),
				Owner:               weavetest.NewCondition().Address(),
				Name:                "Survey",
				CreatedAt:           weave.AsUnixTime(time.Now()),
				TotalFunded:         10,
				RemainingBudget:     10,
				PayoutPerRespondent: 1,
			}
			if tc.Mutator != nil {
				tc.Mutator(f)
			}
			err := f.Validate()
			if tc.Exp == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.Field, tc.Exp)
		})
	}
}

func TestSubmissionSpace(t *testing.T) {
	// discriminator, id prefix, two identities, timestamp, content prefix
	const fixed = 8 + 4 + 32 + 32 + 8 + 4

	assert.Equal(t, uint32(fixed), SubmissionSpace(0, 0))
	assert.Equal(t, uint32(fixed+8+100), SubmissionSpace(8, 100))
}

func TestSubmissionValidate(t *testing.T) {
	valid := func() *Submission {
		return &Submission{
			Metadata:     &weave.Metadata{Schema: 1},
			FormID:       "f1",
			Respondent:   weavetest.NewCondition().Address(),
			SubmissionID: "s1",
			CreatedAt:    weave.AsUnixTime(time.Now()),
			Content:      "hello",
			Space:        SubmissionSpace(2, 5),
		}
	}

	assert.Nil(t, valid().Validate())

	s := valid()
	s.Content = "hello world"
	assert.FieldError(t, s.Validate(), "Space", errors.ErrInput)

	s = valid()
	s.SubmissionID = strings.Repeat("s", maxSubmissionIDLength+1)
	s.Space = SubmissionSpace(len(s.SubmissionID), len(s.Content))
	assert.FieldError(t, s.Validate(), "SubmissionID", errors.ErrInput)
}

func TestPayoutValidate(t *testing.T) {
	p := &Payout{
		Metadata:   &weave.Metadata{Schema: 1},
		FormID:     "f1",
		Respondent: weavetest.NewCondition().Address(),
		Amount:     coin.NewCoin(1, 0, "IOV"),
		PaidAt:     weave.AsUnixTime(time.Now()),
	}
	assert.Nil(t, p.Validate())

	p.Amount = coin.NewCoin(0, 0, "IOV")
	assert.FieldError(t, p.Validate(), "Amount", errors.ErrAmount)
}

func TestSubmissionSlotIsUnique(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "survey")
	b := NewSubmissionBucket()

	respondent := weavetest.NewCondition().Address()
	first := &Submission{
		Metadata:     &weave.Metadata{Schema: 1},
		FormID:       "f1",
		Respondent:   respondent,
		SubmissionID: "same",
		CreatedAt:    weave.AsUnixTime(time.Now()),
		Space:        SubmissionSpace(4, 0),
	}
	_, err := b.Put(db, SubmissionKey(first.FormID, respondent), first)
	assert.Nil(t, err)

	second := first.Copy().(*Submission)
	second.FormID = "f2"
	_, err = b.Put(db, SubmissionKey(second.FormID, respondent), second)
	if !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want a duplicate error, got %+v", err)
	}

	other := first.Copy().(*Submission)
	other.FormID = "f2"
	other.Respondent = weavetest.NewCondition().Address()
	_, err = b.Put(db, SubmissionKey(other.FormID, other.Respondent), other)
	assert.Nil(t, err)

	var byForm []*Submission
	_, err = b.ByIndex(db, "form", []byte("f2"), &byForm)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(byForm))
}
