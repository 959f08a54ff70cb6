package client

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/x/sigs"
	surveyd "github.com/lexuandaibn123/surveyhub/cmd/surveyd/app"
	"github.com/lexuandaibn123/surveyhub/x/survey"
	"github.com/pkg/errors"
)

// submissionIDSize is the number of random bytes in a generated
// submission ID.
const submissionIDSize = 16

// NewSubmissionID returns a random, hex encoded submission ID.
func NewSubmissionID() (string, error) {
	raw := make([]byte, submissionIDSize)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "cannot read random bytes")
	}
	return hex.EncodeToString(raw), nil
}

// BuildSubmitTx will create an unsigned tx answering the form. The declared
// content length is taken from the content itself.
func BuildSubmitTx(formID string, respondent weave.Address, submissionID, content string) *surveyd.Tx {
	return &surveyd.Tx{
		Sum: &surveyd.Tx_SurveySubmitMsg{
			SurveySubmitMsg: &survey.SubmitMsg{
				Metadata:      &weave.Metadata{Schema: 1},
				FormID:        formID,
				Respondent:    respondent,
				SubmissionID:  submissionID,
				Content:       content,
				ContentLength: uint32(len(content)),
			},
		},
	}
}

// SignTx modifies the tx in-place, adding signatures
func SignTx(tx *surveyd.Tx, signer *PrivateKey, chainID string, nonce int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, nonce)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// ParseTx will load a serialized tx into a format we can read
func ParseTx(data []byte) (*surveyd.Tx, error) {
	var tx surveyd.Tx
	if err := tx.Unmarshal(data); err != nil {
		return nil, err
	}
	return &tx, nil
}
