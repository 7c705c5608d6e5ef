package cash

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate requires the wallet coins to be in normalized form.
func (w *Wallet) Validate() error {
	return coin.Coins(w.GetCoins()).Validate()
}

// Set points the wallet to a new set of coins.
func (w *Wallet) Set(coins coin.Coins) {
	w.Coins = coins
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the
// account address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("cash", &Wallet{})
}

var _ orm.Model = (*Allowance)(nil)

// Validate requires the remaining allowance to be in normalized form.
func (a *Allowance) Validate() error {
	return coin.Coins(a.GetRemaining()).Validate()
}

// NewAllowanceBucket returns a bucket for keeping allowances, keyed by
// allowanceKey.
func NewAllowanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("allow", &Allowance{})
}

// allowanceKey returns the key an allowance granted by source to
// grantee is stored under.
func allowanceKey(source, grantee vault.Address) ([]byte, error) {
	if err := source.Validate(); err != nil {
		return nil, errors.Wrap(err, "source")
	}
	if err := grantee.Validate(); err != nil {
		return nil, errors.Wrap(err, "grantee")
	}
	return append(append([]byte{}, source...), grantee...), nil
}
