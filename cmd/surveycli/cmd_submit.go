package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/weave"
	"github.com/lexuandaibn123/surveyhub/x/survey"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

For certain transactions response is written out. Make sure to collect enough
signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use SURVEYCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	resp := newClient(*tmAddrFl).BroadcastTx(tx)
	if err := resp.IsError(); err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}

	pretty, err := extractResponse(tx, resp.Response.DeliverTx.Data, formatters)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if pretty != "" {
		fmt.Fprintln(output, pretty)
	}
	return nil
}

// extractResponse parse given raw response data bytes according to what is
// expected considering the submitted transaction. It returns a human readable
// representation of given response. It can return no data (and no error) if
// response does not contain anythink worth showing to the user.
func extractResponse(tx weave.Tx, respData []byte, fmts map[string]func([]byte) (string, error)) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", fmt.Errorf("cannot extract message from transaction: %s", err)
	}
	format, ok := fmts[msg.Path()]
	if !ok {
		// If no formatter is registered, we do not print the result.
		return "", nil
	}
	pretty, err := format(respData)
	if err != nil {
		return "", fmt.Errorf("cannot format result data %x: %s", respData, err)
	}
	return pretty, nil
}

// formatters contains a mapping of a message path to response parser. Response
// parse function accepts a raw bytes of serialized response and must return a
// human representation of that data.
var formatters = map[string]func([]byte) (string, error){
	survey.SubmitMsg{}.Path(): fmtSubmissionKey,
}

// fmtSubmissionKey prints the form ID and the respondent address of the
// recorded submission.
func fmtSubmissionKey(raw []byte) (string, error) {
	i := bytes.IndexByte(raw, '/')
	if i < 1 {
		return "", fmt.Errorf("invalid submission key")
	}
	respondent := weave.Address(raw[i+1:])
	if err := respondent.Validate(); err != nil {
		return "", fmt.Errorf("invalid respondent address: %s", err)
	}
	return fmt.Sprintf("%s %s", raw[:i], respondent), nil
}
