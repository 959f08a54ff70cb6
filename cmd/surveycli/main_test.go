package main

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/lexuandaibn123/surveyhub/client"
	"github.com/lexuandaibn123/surveyhub/x/survey"
	abci "github.com/tendermint/tendermint/abci/types"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// fakeClient serves a fixed state instead of talking to a tendermint node.
type fakeClient struct {
	chainID   string
	sequences map[string]int64
	forms     map[string]*survey.Form
	unpaid    map[string][]*survey.Submission
	broadcast []weave.Tx
	deliver   abci.ResponseDeliverTx
}

var _ client.Client = (*fakeClient)(nil)

// withClient makes all commands use the given client until the test ends.
func withClient(t *testing.T, c client.Client) {
	prev := newClient
	newClient = func(string) client.Client { return c }
	t.Cleanup(func() { newClient = prev })
}

func (c *fakeClient) ChainID() (string, error) {
	return c.chainID, nil
}

func (c *fakeClient) GetUser(addr weave.Address) (*client.UserResponse, error) {
	seq, ok := c.sequences[addr.String()]
	if !ok {
		return nil, nil
	}
	resp := &client.UserResponse{Address: addr}
	resp.UserData.Sequence = seq
	return resp, nil
}

func (c *fakeClient) GetWallet(addr weave.Address) (*client.WalletResponse, error) {
	return nil, nil
}

func (c *fakeClient) GetForm(id string) (*client.FormResponse, error) {
	f, ok := c.forms[id]
	if !ok {
		return nil, nil
	}
	return &client.FormResponse{Form: *f, Height: 7}, nil
}

func (c *fakeClient) Unpaid(formID string) ([]*survey.Submission, error) {
	return c.unpaid[formID], nil
}

func (c *fakeClient) BroadcastTx(tx weave.Tx) client.BroadcastTxResponse {
	c.broadcast = append(c.broadcast, tx)
	return client.BroadcastTxResponse{
		Response: &ctypes.ResultBroadcastTxCommit{DeliverTx: c.deliver},
	}
}

func (c *fakeClient) AbciQuery(path string, data []byte) (client.AbciResponse, error) {
	return client.AbciResponse{}, nil
}
