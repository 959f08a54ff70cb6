package survey

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// unitsPerCoin is the number of ledger units in one whole coin.
const unitsPerCoin = uint64(coin.FracUnit)

// LedgerUnits returns the value of given coin expressed in the smallest
// indivisible ledger unit. Negative values cannot be represented.
func LedgerUnits(c coin.Coin) (uint64, error) {
	if c.Whole < 0 || c.Fractional < 0 {
		return 0, errors.Wrapf(errors.ErrAmount, "negative value %s", c)
	}
	if c.Fractional >= coin.FracUnit {
		return 0, errors.Wrap(errors.ErrAmount, "fractional part not normalized")
	}
	whole := uint64(c.Whole)
	if whole > (^uint64(0)-uint64(c.Fractional))/unitsPerCoin {
		return 0, errors.Wrap(errors.ErrOverflow, "ledger units")
	}
	return whole*unitsPerCoin + uint64(c.Fractional), nil
}

// UnitsAsCoin converts an amount of ledger units into a coin of given ticker.
func UnitsAsCoin(units uint64, ticker string) (coin.Coin, error) {
	whole := units / unitsPerCoin
	if whole > uint64(coin.MaxInt) {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "coin value")
	}
	c := coin.NewCoin(int64(whole), int64(units%unitsPerCoin), ticker)
	if err := c.Validate(); err != nil {
		return coin.Coin{}, errors.Wrap(err, "coin")
	}
	return c, nil
}

// balanceUnits returns how many ledger units of given ticker are held in the
// coin set.
func balanceUnits(coins coin.Coins, ticker string) (uint64, error) {
	var total uint64
	for _, c := range coins {
		if c == nil || c.Ticker != ticker {
			continue
		}
		units, err := LedgerUnits(*c)
		if err != nil {
			return 0, err
		}
		total += units
	}
	return total, nil
}
