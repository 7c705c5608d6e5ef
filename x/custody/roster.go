package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
)

// RoleOf returns the role held by the given address, or RoleInvalid if
// the address is not part of the roster.
func (r *Roster) RoleOf(a vault.Address) Role {
	switch {
	case r.Owner.Equals(a):
		return RoleOwner
	case len(r.Executor) != 0 && r.Executor.Equals(a):
		return RoleExecutor
	}
	for _, s := range r.Signers {
		if s.Equals(a) {
			return RoleSigner
		}
	}
	return RoleInvalid
}

// IsMember returns true if the address holds any role.
func (r *Roster) IsMember(a vault.Address) bool {
	return r.RoleOf(a) != RoleInvalid
}

// CanApprove returns true if the address may vote on pending requests.
// The executor resolves requests but holds no vote.
func (r *Roster) CanApprove(a vault.Address) bool {
	switch r.RoleOf(a) {
	case RoleOwner, RoleSigner:
		return true
	}
	return false
}

// CanResolve returns true if the address may execute or discard
// pending requests.
func (r *Roster) CanResolve(a vault.Address) bool {
	switch r.RoleOf(a) {
	case RoleOwner, RoleExecutor:
		return true
	}
	return false
}

// ValidSigners counts the addresses that may vote, the owner included.
func (r *Roster) ValidSigners() int {
	return len(r.Signers) + 1
}

func (r *Roster) addSigner(a vault.Address) error {
	if r.RoleOf(a) != RoleInvalid {
		return errors.Wrapf(ErrRoleConflict, "%s already holds a role", a)
	}
	r.Signers = append(r.Signers, a)
	return nil
}

func (r *Roster) removeSigner(a vault.Address) error {
	for i, s := range r.Signers {
		if s.Equals(a) {
			r.Signers = append(r.Signers[:i], r.Signers[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(errors.ErrNotFound, "%s is not a signer", a)
}

func loadRoster(db vault.ReadOnlyKVStore, bucket orm.ModelBucket) (*Roster, error) {
	var roster Roster
	if err := bucket.One(db, rosterKey, &roster); err != nil {
		return nil, errors.Wrap(err, "load roster")
	}
	return &roster, nil
}

func saveRoster(db vault.KVStore, bucket orm.ModelBucket, roster *Roster) error {
	return bucket.Put(db, rosterKey, roster)
}

func loadSuccession(db vault.ReadOnlyKVStore, bucket orm.ModelBucket) (*Succession, error) {
	var succession Succession
	err := bucket.One(db, successionKey, &succession)
	switch {
	case err == nil:
		return &succession, nil
	case errors.ErrNotFound.Is(err):
		return &Succession{}, nil
	default:
		return nil, errors.Wrap(err, "load succession")
	}
}

func saveSuccession(db vault.KVStore, bucket orm.ModelBucket, s *Succession) error {
	return bucket.Put(db, successionKey, s)
}

// setProfile records the role assignment of an address.
func setProfile(db vault.KVStore, bucket orm.ModelBucket, a vault.Address, role Role, at vault.UnixTime) error {
	profile := UserProfile{
		Role:     role,
		JoinedAt: at,
	}
	return bucket.Put(db, a, &profile)
}

// dropProfile removes the role assignment of an address.
func dropProfile(db vault.KVStore, bucket orm.ModelBucket, a vault.Address) error {
	err := bucket.Delete(db, a)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
