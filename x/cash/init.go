package cash

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address vault.Address `json:"address"`
	Coins   coin.Coins    `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	accounts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for i, acct := range accounts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := acct.Coins.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d coins", i)
		}
		wallet := Wallet{Coins: acct.Coins}
		if err := bucket.Put(db, acct.Address, &wallet); err != nil {
			return errors.Wrapf(err, "store account #%d", i)
		}
	}
	return nil
}
