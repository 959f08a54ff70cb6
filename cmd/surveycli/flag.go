package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/weave"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a weave.Address
	if defaultVal != "" {
		var err error
		a, err = weave.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&flagAddress{addr: &a}, name, usage)
	return &a
}

type flagAddress struct {
	addr *weave.Address
}

func (f *flagAddress) String() string {
	if f.addr == nil || *f.addr == nil {
		return ""
	}
	return f.addr.String()
}

func (f *flagAddress) Set(raw string) error {
	a, err := weave.ParseAddress(raw)
	if err != nil {
		return err
	}
	*f.addr = a
	return nil
}

// flagDie terminates the program when a flag is invalid.
func flagDie(description string, args ...interface{}) {
	msg := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
