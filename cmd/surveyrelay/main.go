package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexuandaibn123/surveyhub"
	"github.com/lexuandaibn123/surveyhub/client"
	"github.com/tendermint/tendermint/libs/log"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func main() {
	var (
		httpFl = flag.String("http", env("SURVEYRELAY_HTTP", ":8080"),
			"Address to listen on. You can use SURVEYRELAY_HTTP environment variable to set it.")
		tmAddrFl = flag.String("tm", env("SURVEYRELAY_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use SURVEYRELAY_TM_ADDR environment variable to set it.")
		keyPathFl = flag.String("key", env("SURVEYRELAY_CUSTODIAN_KEY", ""),
			"Path to the custodian private key file. You can use SURVEYRELAY_CUSTODIAN_KEY environment variable to set it.")
		versionFl = flag.Bool("version", false, "Print the version and exit.")
	)
	flag.Parse()

	if *versionFl {
		fmt.Println(surveyhub.Version())
		return
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "surveyrelay")

	if err := run(logger, *httpFl, *tmAddrFl, *keyPathFl); err != nil {
		logger.Error("relay stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, httpAddr, tmAddr, keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("custodian key is required")
	}
	custodian, err := client.LoadPrivateKey(keyPath)
	if err != nil {
		return fmt.Errorf("cannot load custodian key: %s", err)
	}

	relay := NewRelay(logger, client.NewClient(client.NewHTTPConnection(tmAddr)), custodian)
	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      relay.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", httpAddr,
			"custodian", custodian.PublicKey().Address())
		errc <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
