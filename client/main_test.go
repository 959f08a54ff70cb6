package client

import (
	"sync"
	"testing"
	"time"

	"github.com/iov-one/weave/app"
	surveyd "github.com/lexuandaibn123/surveyhub/cmd/surveyd/app"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

const testChainID = "survey-client-test"

// appConn runs an in memory surveyd application, committing one block per
// broadcast transaction.
type appConn struct {
	mu     sync.Mutex
	app    app.BaseApp
	height int64
}

var _ Conn = (*appConn)(nil)

// newAppConn starts a chain whose sample form is funded by custodian.
func newAppConn(t testing.TB, custodian *PrivateKey) *appConn {
	t.Helper()

	state, err := surveyd.GenesisAppState(custodian.PublicKey().Address(), surveyd.DefaultTicker)
	if err != nil {
		t.Fatalf("genesis: %s", err)
	}
	application, err := surveyd.Application("surveyd", surveyd.Stack(), surveyd.TxDecoder, "", false)
	if err != nil {
		t.Fatalf("application: %s", err)
	}
	application.WithInit(surveyd.Initializers())
	application.WithLogger(log.NewNopLogger())
	application.InitChain(abci.RequestInitChain{
		ChainId:       testChainID,
		AppStateBytes: state,
	})

	c := &appConn{app: application}
	// An empty first block, so that check calls have a block context.
	c.block(nil)
	return c
}

func (c *appConn) block(tx []byte) abci.ResponseDeliverTx {
	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: testChainID,
			Height:  c.height,
			Time:    time.Now(),
		},
	})
	var res abci.ResponseDeliverTx
	if tx != nil {
		res = c.app.DeliverTx(tx)
	}
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	return res
}

func (c *appConn) Status() (*ctypes.ResultStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &ctypes.ResultStatus{
		SyncInfo: ctypes.SyncInfo{LatestBlockHeight: c.height},
	}, nil
}

func (c *appConn) Genesis() (*ctypes.ResultGenesis, error) {
	return &ctypes.ResultGenesis{
		Genesis: &tmtypes.GenesisDoc{ChainID: testChainID},
	}, nil
}

func (c *appConn) ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	return &ctypes.ResultABCIQuery{Response: res}, nil
}

func (c *appConn) BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	check := c.app.CheckTx(tx)
	if check.IsErr() {
		return &ctypes.ResultBroadcastTxCommit{CheckTx: check, Hash: tx.Hash()}, nil
	}
	deliver := c.block(tx)
	return &ctypes.ResultBroadcastTxCommit{
		CheckTx:   check,
		DeliverTx: deliver,
		Hash:      tx.Hash(),
		Height:    c.height,
	}, nil
}
