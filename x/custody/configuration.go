package custody

import (
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/gconf"
)

// pkgName is the name this package configuration is stored under.
const pkgName = "custody"

var _ gconf.Configuration = (*Configuration)(nil)

// Validate enforces sane governance parameters. A vault without a
// quorum or without timelocks is not operational.
func (c *Configuration) Validate() error {
	var err error
	if c.QuorumThreshold < 1 {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "quorum threshold must be at least 1"))
	}
	if c.ActionTimelock <= 0 {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "action timelock must be positive"))
	}
	if c.SuccessionTimelock <= 0 {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "succession timelock must be positive"))
	}
	return err
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

func saveConf(db gconf.Store, conf Configuration) error {
	return gconf.Save(db, pkgName, &conf)
}
