package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/lexuandaibn123/surveyhub/client"
)

func TestTransactionView(t *testing.T) {
	respondent := weavetest.NewCondition().Address()
	var input bytes.Buffer
	_, err := writeTx(&input, client.BuildSubmitTx("welcome", respondent, "s1", "yes"))
	assert.Nil(t, err)

	var output bytes.Buffer
	assert.Nil(t, cmdTransactionView(&input, &output, nil))

	var view map[string]interface{}
	assert.Nil(t, json.Unmarshal(output.Bytes(), &view))
	if _, ok := view["Sum"]; !ok {
		t.Fatalf("no message in the view: %s", output.String())
	}
	if !bytes.Contains(output.Bytes(), []byte(`"welcome"`)) {
		t.Fatalf("form ID not shown: %s", output.String())
	}
}
