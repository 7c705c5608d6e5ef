package app

import (
	"encoding/json"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// ParseOptions parses a raw genesis document into the per extension
// option map. Every extension picks its own key from the map during
// initialization.
func ParseOptions(raw []byte) (vault.Options, error) {
	var opts vault.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrap(err, "unmarshal genesis options")
	}
	return opts, nil
}

// ChainInitializers lets you initialize many extensions with one
// Initializer.
func ChainInitializers(inits ...vault.Initializer) vault.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []vault.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
