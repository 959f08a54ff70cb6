package main

import (
	"os"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// defaultKeyPath is where the private key of the current user is stored.
func defaultKeyPath() string {
	return env("SURVEYCLI_PRIV_KEY", os.Getenv("HOME")+"/.surveyd.priv.key")
}

// defaultTmAddr is the tendermint node address used by all commands talking
// to the network.
func defaultTmAddr() string {
	return env("SURVEYCLI_TM_ADDR", "http://localhost:26657")
}
