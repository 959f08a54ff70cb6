package client

import (
	"testing"

	"github.com/iov-one/weave/coin"
	surveyd "github.com/lexuandaibn123/surveyhub/cmd/surveyd/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainInfo(t *testing.T) {
	c := NewClient(newAppConn(t, GenPrivateKey()))

	chainID, err := c.ChainID()
	require.NoError(t, err)
	assert.Equal(t, testChainID, chainID)

	height, err := c.Height()
	require.NoError(t, err)
	assert.Equal(t, int64(1), height)
}

func TestWalletQuery(t *testing.T) {
	custodian := GenPrivateKey()
	c := NewClient(newAppConn(t, custodian))

	// bad address returns error
	_, err := c.GetWallet([]byte{1, 2, 3, 4})
	assert.Error(t, err)

	// missing account returns nothing
	wallet, err := c.GetWallet(GenPrivateKey().PublicKey().Address())
	assert.NoError(t, err)
	assert.Nil(t, wallet)

	// genesis account returns something
	addr := custodian.PublicKey().Address()
	wallet, err = c.GetWallet(addr)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.EqualValues(t, addr, wallet.Address)
	require.Len(t, wallet.Wallet.Coins, 1)
	assert.Equal(t, int64(1000000), wallet.Wallet.Coins[0].Whole)
	assert.Equal(t, surveyd.DefaultTicker, wallet.Wallet.Coins[0].Ticker)
}

func TestFormQuery(t *testing.T) {
	custodian := GenPrivateKey()
	c := NewClient(newAppConn(t, custodian))

	_, err := c.GetForm("")
	assert.Error(t, err)

	missing, err := c.GetForm("nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	form, err := c.GetForm("welcome")
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "welcome", form.Form.ID)
	assert.EqualValues(t, custodian.PublicKey().Address(), form.Form.Custodian)
	assert.Equal(t, uint32(0), form.Form.Submissions)
}

func TestNonce(t *testing.T) {
	c := NewClient(newAppConn(t, GenPrivateKey()))
	addr := GenPrivateKey().PublicKey().Address()

	nonce := NewNonce(c, addr)
	n, err := nonce.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = nonce.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = nonce.Query()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSubmitForm(t *testing.T) {
	custodian := GenPrivateKey()
	c := NewClient(newAppConn(t, custodian))
	respondent := GenPrivateKey()
	addr := respondent.PublicKey().Address()

	id, err := NewSubmissionID()
	require.NoError(t, err)
	tx := BuildSubmitTx("welcome", addr, id, `{"answer":"a friend"}`)
	require.NoError(t, SignTx(tx, custodian, testChainID, 0))
	require.NoError(t, SignTx(tx, respondent, testChainID, 0))

	res := c.BroadcastTx(tx)
	require.NoError(t, res.IsError())

	// both signers used their sequence
	n, err := NewNonce(c, custodian.PublicKey().Address()).Query()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	wallet, err := c.GetWallet(addr)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	require.Len(t, wallet.Wallet.Coins, 1)
	assert.True(t, wallet.Wallet.Coins[0].Equals(coin.NewCoin(1, 0, surveyd.DefaultTicker)))

	form, err := c.GetForm("welcome")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), form.Form.Submissions)
	assert.Equal(t, uint64(99000000000), form.Form.RemainingBudget)

	unpaid, err := c.Unpaid("welcome")
	require.NoError(t, err)
	assert.Empty(t, unpaid)

	// second answer of the same respondent is refused
	again, err := NewSubmissionID()
	require.NoError(t, err)
	tx = BuildSubmitTx("welcome", addr, again, "second")
	require.NoError(t, SignTx(tx, custodian, testChainID, 1))
	require.NoError(t, SignTx(tx, respondent, testChainID, 1))
	assert.Error(t, c.BroadcastTx(tx).IsError())
}

func TestUnpaidQueryValidatesForm(t *testing.T) {
	c := NewClient(newAppConn(t, GenPrivateKey()))
	_, err := c.Unpaid("")
	assert.Error(t, err)
}
