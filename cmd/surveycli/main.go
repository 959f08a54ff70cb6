package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lexuandaibn123/surveyhub"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. Given args are the command line arguments, without
// the program name, that should be parsed using the flag package.
//
// Commands are meant to be combined using a unix pipe. For example, answering
// a form is done by creating a transaction, signing it by the respondent and
// the custodian, and submitting it:
//
//   $ surveycli submit-form -form welcome -respondent $(surveycli keyaddr) -content '{"q1":"yes"}' \
//       | surveycli sign \
//       | surveycli sign -key custodian.key \
//       | surveycli submit
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"form":        cmdForm,
	"keyaddr":     cmdKeyaddr,
	"keygen":      cmdKeygen,
	"mnemonic":    cmdMnemonic,
	"sign":        cmdSignTransaction,
	"submit":      cmdSubmitTransaction,
	"submit-form": cmdSubmitForm,
	"unpaid":      cmdUnpaid,
	"version":     cmdVersion,
	"view":        cmdTransactionView,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the surveyd application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, surveyhub.Version())
	return err
}
