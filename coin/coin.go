package coin

import (
	"math"
	"regexp"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// IsCC checks if the given ticker is a valid currency code, as used by
// every asset handled by the custody engine.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// MaxAmount is the largest amount a single coin can hold.
const MaxAmount = math.MaxInt64

// NewCoin returns a coin of the given ticker holding the given amount.
// No validation is performed, call Validate before persisting.
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Amount: amount,
		Ticker: ticker,
	}
}

// NewCoinp returns a pointer to a new coin, for embedding in messages.
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ID returns a unique identifier of the asset this coin holds.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two coins of the same ticker. It returns an error on
// ticker mismatch or arithmetic overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		if c.Ticker == "" {
			c.Ticker = o.Ticker
		} else if o.Ticker != "" {
			return Coin{}, errors.Wrapf(errors.ErrType, "cannot add %s to %s", o.Ticker, c.Ticker)
		}
	}
	res, err := addInt64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	c.Amount = res
	return c, nil
}

// Subtract removes the value of the other coin from this one. A
// negative result is allowed, use IsNonNegative to reject it.
func (c Coin) Subtract(o Coin) (Coin, error) {
	return c.Add(o.Negative())
}

// Negative returns the opposite amount of the same ticker.
func (c Coin) Negative() Coin {
	return Coin{
		Amount: -1 * c.Amount,
		Ticker: c.Ticker,
	}
}

// Compare returns -1, 0 or 1 depending on whether this coin holds
// less, the same, or more than the other. Tickers must match.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Equals returns true if both coins hold the same amount of the same
// asset.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsZero returns true when the coin holds nothing.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true when the coin holds a value above zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true when the coin holds zero or more.
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true when this coin holds at least as much as the
// other. Tickers must match, otherwise the result is always false.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if both coins name the same asset.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone returns an independent copy of this coin.
func (c Coin) Clone() *Coin {
	return &Coin{
		Amount: c.Amount,
		Ticker: c.Ticker,
	}
}

// Validate ensures the coin names a proper asset.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	return nil
}

func addInt64(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errors.Wrap(errors.ErrOverflow, "add")
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, errors.Wrap(errors.ErrOverflow, "subtract")
	}
	return a + b, nil
}
