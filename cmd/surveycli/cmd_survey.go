package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/lexuandaibn123/surveyhub/client"
)

func cmdSubmitForm(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction answering a form. Answer content is read from the
standard input unless the -content flag is used.

The transaction must be signed by both the respondent and the custodian of the
form. Each respondent can answer a form only once and is paid out when the
answer is recorded.
`)
		fl.PrintDefaults()
	}
	var (
		formFl       = fl.String("form", "", "ID of the form being answered.")
		respondentFl = flAddress(fl, "respondent", "", "Address of the respondent, that is paid out.")
		idFl         = fl.String("id", "", "Submission ID. A random one is generated if not provided.")
		contentFl    = fl.String("content", "", "Answer content. If not provided, standard input is used.")
	)
	fl.Parse(args)

	if *formFl == "" {
		flagDie("-form is required")
	}
	if len(*respondentFl) == 0 {
		flagDie("-respondent is required")
	}

	content := *contentFl
	if content == "" {
		raw, err := ioutil.ReadAll(input)
		if err != nil {
			return fmt.Errorf("cannot read content: %s", err)
		}
		content = string(raw)
	}
	if content == "" {
		return errors.New("no content")
	}

	submissionID := *idFl
	if submissionID == "" {
		id, err := client.NewSubmissionID()
		if err != nil {
			return fmt.Errorf("cannot generate submission ID: %s", err)
		}
		submissionID = id
	}

	tx := client.BuildSubmitTx(*formFl, *respondentFl, submissionID, content)
	msg, err := tx.GetMsg()
	if err != nil {
		return fmt.Errorf("cannot extract message: %s", err)
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid submission: %s", err)
	}
	_, err = writeTx(output, tx)
	return err
}

func cmdForm(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Display the form with the given ID, including its submission counter and the
remaining payable budget.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use SURVEYCLI_TM_ADDR environment variable to set it.")
		idFl = fl.String("id", "", "Form ID.")
	)
	fl.Parse(args)

	if *idFl == "" {
		flagDie("-id is required")
	}

	resp, err := newClient(*tmAddrFl).GetForm(*idFl)
	if err != nil {
		return fmt.Errorf("cannot fetch form: %s", err)
	}
	if resp == nil {
		return fmt.Errorf("form %q not found", *idFl)
	}
	return writeJSON(output, resp.Form)
}

func cmdUnpaid(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List answers of a form that were recorded, but whose payout failed.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use SURVEYCLI_TM_ADDR environment variable to set it.")
		formFl = fl.String("form", "", "Form ID.")
	)
	fl.Parse(args)

	if *formFl == "" {
		flagDie("-form is required")
	}

	subs, err := newClient(*tmAddrFl).Unpaid(*formFl)
	if err != nil {
		return fmt.Errorf("cannot fetch unpaid submissions: %s", err)
	}
	return writeJSON(output, subs)
}

func writeJSON(output io.Writer, v interface{}) error {
	pretty, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}
