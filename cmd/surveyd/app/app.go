/*
Package surveyd links together all the various components
to construct the surveyd app.
*/
package surveyd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
	"github.com/lexuandaibn123/surveyhub/x/survey"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery.
//
// The chain has no savepoint on DeliverTx. Every route that must not leave
// partial state behind on failure is registered behind its own savepoint by
// Router. Survey submissions are not: a submission whose payout failed must
// remain recorded, while the failed transfer itself never leaves partial
// changes behind.
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, CashControl()),
	)
}

// Router returns a default router, dispatching to cash, migration and survey
// messages. Cash and migration messages are delivered atomically.
func Router(authFn x.Authenticator) *app.Router {
	return newRouter(authFn, CashControl())
}

func newRouter(authFn x.Authenticator, ctrl cash.Controller) *app.Router {
	r := app.NewRouter()
	atomic := SavepointRegistry(r)
	cash.RegisterRoutes(atomic, authFn, ctrl)
	migration.RegisterRoutes(atomic, authFn)
	survey.RegisterRoutes(r, authFn, ctrl)
	return r
}

// SavepointRegistry decorates given registry so that every handler it
// registers discards all its changes when delivery fails.
func SavepointRegistry(r weave.Registry) weave.Registry {
	return &savepointRegistry{reg: r}
}

type savepointRegistry struct {
	reg weave.Registry
}

func (r *savepointRegistry) Handle(m weave.Msg, h weave.Handler) {
	r.reg.Handle(m, app.ChainDecorators(utils.NewSavepoint().OnDeliver()).WithHandler(h))
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/surveys", "/surveys/submissions",
// "/surveys/payouts", "/surveys/unpaid" and "/"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
		survey.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("Invalid Database Name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
