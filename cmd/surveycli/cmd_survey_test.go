package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/lexuandaibn123/surveyhub/x/survey"
)

func TestSubmitForm(t *testing.T) {
	respondent := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Args        []string
		Input       string
		WantContent string
		WantID      string
		WantErr     bool
	}{
		"content from flag": {
			Args:        []string{"-form", "welcome", "-respondent", respondent.String(), "-id", "s1", "-content", "yes"},
			WantContent: "yes",
			WantID:      "s1",
		},
		"content from input": {
			Args:        []string{"-form", "welcome", "-respondent", respondent.String(), "-id", "s1"},
			Input:       `{"q1":"no"}`,
			WantContent: `{"q1":"no"}`,
			WantID:      "s1",
		},
		"generated submission id": {
			Args:        []string{"-form", "welcome", "-respondent", respondent.String(), "-content", "yes"},
			WantContent: "yes",
		},
		"empty content": {
			Args:    []string{"-form", "welcome", "-respondent", respondent.String()},
			WantErr: true,
		},
		"invalid form id": {
			Args:    []string{"-form", "no spaces allowed", "-respondent", respondent.String(), "-content", "yes"},
			WantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			err := cmdSubmitForm(strings.NewReader(tc.Input), &out, tc.Args)
			if hasErr := err != nil; hasErr != tc.WantErr {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr {
				return
			}
			tx, _, err := readTx(&out)
			assert.Nil(t, err)
			msg := tx.GetSurveySubmitMsg()
			if msg == nil {
				t.Fatal("not a submit message")
			}
			assert.Equal(t, "welcome", msg.FormID)
			assert.Equal(t, respondent, msg.Respondent)
			assert.Equal(t, tc.WantContent, msg.Content)
			assert.Equal(t, uint32(len(tc.WantContent)), msg.ContentLength)
			if tc.WantID != "" {
				assert.Equal(t, tc.WantID, msg.SubmissionID)
			} else {
				assert.Equal(t, 32, len(msg.SubmissionID))
			}
		})
	}
}

func TestFormAndUnpaid(t *testing.T) {
	custodian := weavetest.NewCondition().Address()
	respondent := weavetest.NewCondition().Address()
	form := &survey.Form{
		Metadata:            &weave.Metadata{Schema: 1},
		ID:                  "welcome",
		Custodian:           custodian,
		Owner:               custodian,
		Name:                "Welcome",
		Submissions:         3,
		TotalFunded:         5000000000,
		RemainingBudget:     3000000000,
		PayoutPerRespondent: 1000000000,
	}
	withClient(t, &fakeClient{
		forms: map[string]*survey.Form{"welcome": form},
		unpaid: map[string][]*survey.Submission{
			"welcome": {
				{Metadata: &weave.Metadata{Schema: 1}, FormID: "welcome", Respondent: respondent, SubmissionID: "s3"},
			},
		},
	})

	var out bytes.Buffer
	assert.Nil(t, cmdForm(nil, &out, []string{"-id", "welcome"}))
	var gotForm survey.Form
	assert.Nil(t, json.Unmarshal(out.Bytes(), &gotForm))
	assert.Equal(t, uint32(3), gotForm.Submissions)
	assert.Equal(t, uint64(3000000000), gotForm.RemainingBudget)

	if err := cmdForm(nil, ioutil.Discard, []string{"-id", "missing"}); err == nil {
		t.Fatal("missing form must fail")
	}

	out.Reset()
	assert.Nil(t, cmdUnpaid(nil, &out, []string{"-form", "welcome"}))
	var subs []*survey.Submission
	assert.Nil(t, json.Unmarshal(out.Bytes(), &subs))
	assert.Equal(t, 1, len(subs))
	assert.Equal(t, "s3", subs[0].SubmissionID)
	assert.Equal(t, respondent, subs[0].Respondent)
}
