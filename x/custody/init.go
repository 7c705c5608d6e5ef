package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/gconf"
)

const optKey = "custody"

// GenesisVault is used to parse the initial vault membership from the
// genesis file.
type GenesisVault struct {
	Owner    vault.Address   `json:"owner"`
	Executor vault.Address   `json:"executor"`
	Signers  []vault.Address `json:"signers"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis will parse the initial vault setup from genesis and save
// it to the database.
func (Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, pkgName, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var genesis GenesisVault
	if err := opts.ReadOptions(optKey, &genesis); err != nil {
		return err
	}
	if err := genesis.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	roster := Roster{Owner: genesis.Owner}
	if len(genesis.Executor) != 0 {
		if err := genesis.Executor.Validate(); err != nil {
			return errors.Wrap(err, "executor")
		}
		if roster.RoleOf(genesis.Executor) != RoleInvalid {
			return errors.Wrapf(ErrRoleConflict, "executor %s already holds a role", genesis.Executor)
		}
		roster.Executor = genesis.Executor
	}
	for i, s := range genesis.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
		if err := roster.addSigner(s); err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
	}

	rosters := NewRosterBucket()
	if err := saveRoster(db, rosters, &roster); err != nil {
		return errors.Wrap(err, "store roster")
	}
	profiles := NewProfileBucket()
	if err := setProfile(db, profiles, roster.Owner, RoleOwner, 0); err != nil {
		return errors.Wrap(err, "store owner profile")
	}
	if len(roster.Executor) != 0 {
		if err := setProfile(db, profiles, roster.Executor, RoleExecutor, 0); err != nil {
			return errors.Wrap(err, "store executor profile")
		}
	}
	for i, s := range roster.Signers {
		if err := setProfile(db, profiles, s, RoleSigner, 0); err != nil {
			return errors.Wrapf(err, "store signer profile #%d", i)
		}
	}
	return nil
}
