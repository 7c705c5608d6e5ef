package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(5, "IOV"),
		NewCoin(2, "ETH"),
		NewCoin(3, "IOV"),
	)
	assert.NoError(t, err)
	assert.NoError(t, cs.Validate())
	assert.Equal(t, int64(8), cs.Amount("IOV"))
	assert.Equal(t, int64(2), cs.Amount("ETH"))
	// Normalized form keeps tickers sorted.
	assert.Equal(t, "ETH", cs[0].Ticker)
	assert.Equal(t, "IOV", cs[1].Ticker)
}

func TestCoinsAddRemovesZero(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, "IOV"))
	assert.NoError(t, err)

	cs, err = cs.Subtract(NewCoin(5, "IOV"))
	assert.NoError(t, err)
	assert.True(t, cs.IsEmpty())
}

func TestCoinsAddDoesNotMutate(t *testing.T) {
	orig, err := CombineCoins(NewCoin(5, "IOV"))
	assert.NoError(t, err)

	_, err = orig.Add(NewCoin(3, "IOV"))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), orig.Amount("IOV"))
}

func TestCoinsContains(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, "IOV"), NewCoin(2, "ETH"))
	assert.NoError(t, err)

	assert.True(t, cs.Contains(NewCoin(5, "IOV")))
	assert.True(t, cs.Contains(NewCoin(1, "ETH")))
	assert.False(t, cs.Contains(NewCoin(6, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, "BTC")))
	assert.False(t, cs.Contains(NewCoin(0, "IOV")))
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins   Coins
		wantErr *errors.Error
	}{
		"valid": {
			coins: Coins{NewCoinp(2, "ETH"), NewCoinp(5, "IOV")},
		},
		"unsorted": {
			coins:   Coins{NewCoinp(5, "IOV"), NewCoinp(2, "ETH")},
			wantErr: errors.ErrCurrency,
		},
		"duplicate": {
			coins:   Coins{NewCoinp(2, "IOV"), NewCoinp(5, "IOV")},
			wantErr: errors.ErrCurrency,
		},
		"zero value": {
			coins:   Coins{NewCoinp(0, "IOV")},
			wantErr: errors.ErrAmount,
		},
		"nil coin": {
			coins:   Coins{nil},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coins.Validate()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
