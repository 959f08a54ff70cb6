package client

import (
	"bytes"
	"sync"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/lexuandaibn123/surveyhub/x/survey"
	"github.com/pkg/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

type Status = ctypes.ResultStatus
type GenesisDoc = tmtypes.GenesisDoc

// Conn is the part of the tendermint rpc client used by SurveyClient. Both
// the http and the local client implement it.
type Conn interface {
	Status() (*ctypes.ResultStatus, error)
	Genesis() (*ctypes.ResultGenesis, error)
	ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error)
	BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error)
}

// Client is an interface to interact with a survey node.
type Client interface {
	ChainID() (string, error)
	GetUser(addr weave.Address) (*UserResponse, error)
	GetWallet(addr weave.Address) (*WalletResponse, error)
	GetForm(id string) (*FormResponse, error)
	Unpaid(formID string) ([]*survey.Submission, error)
	BroadcastTx(tx weave.Tx) BroadcastTxResponse
	AbciQuery(path string, data []byte) (AbciResponse, error)
}

// SurveyClient is a tendermint client wrapped to provide
// simple access to the data structures used by surveyd.
type SurveyClient struct {
	conn Conn
}

var _ Client = (*SurveyClient)(nil)

// NewClient wraps a SurveyClient around an existing
// tendermint client connection.
func NewClient(conn Conn) *SurveyClient {
	return &SurveyClient{conn: conn}
}

// Nonce has a client/address pair, queries for the nonce
// and caches recent nonce locally to quickly sign
type Nonce struct {
	mutex     sync.Mutex
	client    Client
	addr      weave.Address
	nonce     int64
	fromQuery bool
}

// NewNonce creates a nonce for a client / address pair.
// Call Query to force a query, Next to use cache if possible
func NewNonce(client Client, addr weave.Address) *Nonce {
	return &Nonce{client: client, addr: addr}
}

// Query always queries the blockchain for the next nonce
func (n *Nonce) Query() (int64, error) {
	user, err := n.client.GetUser(n.addr)
	if err != nil {
		return 0, err
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if user != nil {
		n.nonce = user.UserData.Sequence
	} else {
		n.nonce = 0 // new account starts at 0
	}
	n.fromQuery = true
	return n.nonce, nil
}

// Next will use a cached value if present, otherwise Query.
// It will always increment by 1, assuming last nonce
// was properly used.
func (n *Nonce) Next() (int64, error) {
	n.mutex.Lock()
	initializedFromBlockchain := !n.fromQuery && n.nonce == 0
	n.mutex.Unlock()
	if initializedFromBlockchain {
		return n.Query()
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.nonce++
	n.fromQuery = false
	return n.nonce, nil
}

// Status will return the raw status from the node
func (b *SurveyClient) Status() (*Status, error) {
	return b.conn.Status()
}

// Genesis will return the genesis directly from the node
func (b *SurveyClient) Genesis() (*GenesisDoc, error) {
	gen, err := b.conn.Genesis()
	if err != nil {
		return nil, err
	}
	return gen.Genesis, nil
}

// ChainID will parse out the chainID from the genesis
func (b *SurveyClient) ChainID() (string, error) {
	gen, err := b.Genesis()
	if err != nil {
		return "", err
	}
	return gen.ChainID, nil
}

// Height will parse out the Height from the status result
func (b *SurveyClient) Height() (int64, error) {
	status, err := b.conn.Status()
	if err != nil {
		return -1, err
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// AbciResponse contains a query result:
// a (possibly empty) list of key-value pairs, and the height
// at which it queried
type AbciResponse struct {
	// a list of key/value pairs
	Models []weave.Model
	Height int64
}

// AbciQuery calls abci query on tendermint rpc,
// verifies if it is an error or empty, and if there is
// data pulls out the ResultSets from keys and values into
// a useful AbciResponse struct
func (b *SurveyClient) AbciQuery(path string, data []byte) (AbciResponse, error) {
	var out AbciResponse

	q, err := b.conn.ABCIQuery(path, data)
	if err != nil {
		return out, err
	}
	resp := q.Response
	if resp.IsErr() {
		return out, errors.Errorf("(%d): %s", resp.Code, resp.Log)
	}
	out.Height = resp.Height

	if len(resp.Key) == 0 {
		return out, nil
	}

	// assume there is data, parse the result sets
	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return out, err
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return out, err
	}
	out.Models, err = app.JoinResults(&keys, &vals)
	return out, err
}

// BroadcastTxResponse is the result of submitting a transaction.
type BroadcastTxResponse struct {
	Error    error                           // not-nil if there was an error sending
	Response *ctypes.ResultBroadcastTxCommit // not-nil if we got response from node
}

// IsError returns the error for failure if it failed,
// or null if it succeeded
func (b BroadcastTxResponse) IsError() error {
	if b.Error != nil {
		return b.Error
	}
	if b.Response.CheckTx.IsErr() {
		ctx := b.Response.CheckTx
		return errors.Errorf("CheckTx error: (%d) %s", ctx.Code, ctx.Log)
	}
	if b.Response.DeliverTx.IsErr() {
		dtx := b.Response.DeliverTx
		return errors.Errorf("DeliverTx error: (%d) %s", dtx.Code, dtx.Log)
	}
	return nil
}

// BroadcastTx serializes a signed transaction and writes to the
// blockchain. It returns when the tx is committed to the
// blockchain.
func (b *SurveyClient) BroadcastTx(tx weave.Tx) BroadcastTxResponse {
	data, err := tx.Marshal()
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}
	res, err := b.conn.BroadcastTxCommit(data)
	return BroadcastTxResponse{
		Error:    err,
		Response: res,
	}
}

// queryOne runs a query expected to return at most one model, stored under
// the given key prefix. It returns (nil, 0, nil) when nothing was found.
func (b *SurveyClient) queryOne(path string, prefix, key []byte) (*weave.Model, int64, error) {
	resp, err := b.AbciQuery(path, key)
	if err != nil {
		return nil, 0, err
	}
	if len(resp.Models) == 0 { // empty list or nil
		return nil, resp.Height, nil
	}
	// assume only one result
	model := resp.Models[0]
	// make sure the return value is expected
	got := bytes.TrimPrefix(model.Key, prefix)
	if !bytes.Equal(got, key) {
		return nil, 0, errors.Errorf("Mismatch. Queried %X, returned %X", key, got)
	}
	return &model, resp.Height, nil
}

// UserResponse is a response on a query for a User
type UserResponse struct {
	Address  weave.Address
	UserData sigs.UserData
	Height   int64
}

// GetUser will return nonce and public key registered
// for a given address if it was ever used.
// If it returns (nil, nil), then this address never signed
// a transaction before (and can use nonce = 0)
func (b *SurveyClient) GetUser(addr weave.Address) (*UserResponse, error) {
	// make sure we send a valid address to the server
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "Invalid Address")
	}
	model, height, err := b.queryOne("/auth", []byte("sigs:"), addr)
	if err != nil || model == nil {
		return nil, err
	}
	out := UserResponse{Address: addr, Height: height}
	if err := out.UserData.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletResponse is a response on a query for a wallet
type WalletResponse struct {
	Address weave.Address
	Wallet  cash.Set
	Height  int64
}

// GetWallet will return a wallet given an address
// If non wallet is present, it will return (nil, nil)
// Error codes are used when the query failed on the server
func (b *SurveyClient) GetWallet(addr weave.Address) (*WalletResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "Invalid Address")
	}
	model, height, err := b.queryOne("/wallets", []byte("cash:"), addr)
	if err != nil || model == nil {
		return nil, err
	}
	out := WalletResponse{Address: addr, Height: height}
	if err := out.Wallet.Unmarshal(model.Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// FormResponse is a response on a query for a form
type FormResponse struct {
	Form   survey.Form
	Height int64
}

// GetForm returns the form registered under the given ID, or (nil, nil)
// when there is no such form.
func (b *SurveyClient) GetForm(id string) (*FormResponse, error) {
	if id == "" {
		return nil, errors.New("missing form ID")
	}
	model, height, err := b.queryOne("/surveys", []byte("form:"), []byte(id))
	if err != nil || model == nil {
		return nil, err
	}
	out := FormResponse{Height: height}
	if err := out.Form.Unmarshal(model.Value); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal form")
	}
	return &out, nil
}

// Unpaid lists the submissions of a form that were recorded without their
// payout being settled.
func (b *SurveyClient) Unpaid(formID string) ([]*survey.Submission, error) {
	resp, err := b.AbciQuery("/surveys/unpaid", []byte(formID))
	if err != nil {
		return nil, err
	}
	out := make([]*survey.Submission, 0, len(resp.Models))
	for _, m := range resp.Models {
		var s survey.Submission
		if err := s.Unmarshal(m.Value); err != nil {
			return nil, errors.Wrapf(err, "cannot unmarshal submission %q", m.Key)
		}
		out = append(out, &s)
	}
	return out, nil
}
