package survey

import (
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestUnpaidQuery(t *testing.T) {
	env := newTestEnv(t, 1000000000, 3000000000, 5000000000)
	now := weave.AsUnixTime(time.Now())

	paid := weavetest.NewCondition().Address()
	_, err := NewController(env.bank).Submit(env.db, env.submitMsg(paid, "s1", "paid"), now)
	assert.Nil(t, err)

	unpaid := weavetest.NewCondition().Address()
	_, err = NewController(rejectingBank{Controller: env.bank}).Submit(env.db, env.submitMsg(unpaid, "s1", "unpaid"), now)
	if !ErrTransferFailed.Is(err) {
		t.Fatalf("want transfer failure, got %+v", err)
	}

	qr := weave.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/surveys/unpaid")
	if h == nil {
		t.Fatal("unpaid query not registered")
	}

	models, err := h.Query(env.db, "", []byte(env.form.ID))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	assert.Equal(t, UnpaidDBKey(env.form.ID, unpaid), models[0].Key)

	var got Submission
	assert.Nil(t, got.Unmarshal(models[0].Value))
	assert.Equal(t, "unpaid", got.Content)

	models, err = h.Query(env.db, "", []byte("other-form"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))

	if _, err := h.Query(env.db, "prefix", []byte(env.form.ID)); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
	if _, err := h.Query(env.db, "", []byte("not a form")); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

func TestBucketQueries(t *testing.T) {
	env := newTestEnv(t, 1000000000, 3000000000, 5000000000)
	respondent := weavetest.NewCondition().Address()
	_, err := NewController(env.bank).Submit(env.db, env.submitMsg(respondent, "s1", "yes"), weave.AsUnixTime(time.Now()))
	assert.Nil(t, err)

	qr := weave.NewQueryRouter()
	RegisterQuery(qr)

	cases := map[string]struct {
		path string
		key  []byte
	}{
		"form":    {path: "/surveys", key: []byte(env.form.ID)},
		"answer":  {path: "/surveys/submissions", key: SubmissionKey(env.form.ID, respondent)},
		"receipt": {path: "/surveys/payouts", key: SubmissionKey(env.form.ID, respondent)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := qr.Handler(tc.path)
			if h == nil {
				t.Fatalf("%s not registered", tc.path)
			}
			models, err := h.Query(env.db, "", tc.key)
			assert.Nil(t, err)
			assert.Equal(t, 1, len(models))
		})
	}

	// Submissions are indexed by form.
	h := qr.Handler("/surveys/submissions/form")
	if h == nil {
		t.Fatal("form index not registered")
	}
	models, err := h.Query(env.db, "", []byte(env.form.ID))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
}
