package coin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

func TestCoinValidation(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"proper coin": {
			coin: NewCoin(42, "IOV"),
		},
		"four letter ticker": {
			coin: NewCoin(1, "GOLD"),
		},
		"empty ticker": {
			coin:    NewCoin(1, ""),
			wantErr: errors.ErrCurrency,
		},
		"lowercase ticker": {
			coin:    NewCoin(1, "iov"),
			wantErr: errors.ErrCurrency,
		},
		"too long ticker": {
			coin:    NewCoin(1, "TOOLONG"),
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoinArithmetic(t *testing.T) {
	a := NewCoin(7, "IOV")
	b := NewCoin(5, "IOV")

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.True(t, sum.Equals(NewCoin(12, "IOV")))

	diff, err := a.Subtract(b)
	assert.NoError(t, err)
	assert.True(t, diff.Equals(NewCoin(2, "IOV")))

	neg, err := b.Subtract(a)
	assert.NoError(t, err)
	assert.False(t, neg.IsNonNegative())
	assert.True(t, neg.Equals(NewCoin(-2, "IOV")))
}

func TestCoinAddTickerMismatch(t *testing.T) {
	_, err := NewCoin(1, "IOV").Add(NewCoin(1, "ETH"))
	assert.True(t, errors.ErrType.Is(err))
}

func TestCoinAddEmptyTicker(t *testing.T) {
	// A zero value coin adopts the ticker of the other operand.
	sum, err := Coin{}.Add(NewCoin(3, "IOV"))
	assert.NoError(t, err)
	assert.True(t, sum.Equals(NewCoin(3, "IOV")))
}

func TestCoinAddOverflow(t *testing.T) {
	_, err := NewCoin(math.MaxInt64, "IOV").Add(NewCoin(1, "IOV"))
	assert.True(t, errors.ErrOverflow.Is(err))

	_, err = NewCoin(math.MinInt64, "IOV").Subtract(NewCoin(1, "IOV"))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinCompare(t *testing.T) {
	assert.Equal(t, -1, NewCoin(1, "IOV").Compare(NewCoin(2, "IOV")))
	assert.Equal(t, 0, NewCoin(2, "IOV").Compare(NewCoin(2, "IOV")))
	assert.Equal(t, 1, NewCoin(3, "IOV").Compare(NewCoin(2, "IOV")))

	assert.True(t, NewCoin(2, "IOV").IsGTE(NewCoin(2, "IOV")))
	assert.False(t, NewCoin(2, "IOV").IsGTE(NewCoin(2, "ETH")))
}

func TestCoinSerialization(t *testing.T) {
	c := NewCoin(987654321, "IOV")
	raw, err := c.Marshal()
	assert.NoError(t, err)

	var got Coin
	assert.NoError(t, got.Unmarshal(raw))
	assert.True(t, c.Equals(got))
}
