package coin

import (
	"sort"
	"strings"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Coins represents a set of coins. Most operations on the coin set
// require normalized form: sorted by ticker, no duplicates, no zero
// values.
type Coins []*Coin

// CombineCoins creates a normalized set of coins from the given list.
func CombineCoins(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Clone returns a deep copy of the set.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set with the given coin merged in. A zero result
// for a ticker removes that ticker from the set.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	idx := sort.Search(len(cs), func(i int) bool {
		return cs[i].Ticker >= c.Ticker
	})
	if idx < len(cs) && cs[idx].Ticker == c.Ticker {
		sum, err := cs[idx].Add(c)
		if err != nil {
			return nil, err
		}
		res := cs.Clone()
		if sum.IsZero() {
			return append(res[:idx], res[idx+1:]...), nil
		}
		res[idx] = &sum
		return res, nil
	}
	res := make(Coins, 0, len(cs)+1)
	res = append(res, cs[:idx].Clone()...)
	res = append(res, c.Clone())
	res = append(res, cs[idx:].Clone()...)
	return res, nil
}

// Subtract returns a new set with the given coin value removed.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Amount returns how much of the given ticker the set holds.
func (cs Coins) Amount(ticker string) int64 {
	for _, c := range cs {
		if c.Ticker == ticker {
			return c.Amount
		}
	}
	return 0
}

// Contains returns true if the set holds at least the given coin.
func (cs Coins) Contains(c Coin) bool {
	if !c.IsPositive() {
		return false
	}
	return cs.Amount(c.Ticker) >= c.Amount
}

// IsEmpty returns true when the set holds no value at all.
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative returns true when no coin in the set is negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true when both sets hold exactly the same value.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires a normalized set of valid, non-zero coins.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero value coin: %s", c.Ticker)
		}
		if c.Ticker <= last {
			return errors.Wrapf(errors.ErrCurrency, "unsorted ticker: %s", c.Ticker)
		}
		last = c.Ticker
	}
	return nil
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return "(empty)"
	}
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, ",")
}
