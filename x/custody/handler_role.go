package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
)

// roleBase carries the state shared by the role management handlers.
type roleBase struct {
	auth     x.Authenticator
	roster   orm.ModelBucket
	profiles orm.ModelBucket
}

func newRoleBase(auth x.Authenticator) roleBase {
	return roleBase{
		auth:     auth,
		roster:   NewRosterBucket(),
		profiles: NewProfileBucket(),
	}
}

// requireOwner loads the roster and verifies the main signer is the
// owner.
func (b roleBase) requireOwner(ctx vault.Context, db vault.ReadOnlyKVStore) (*Roster, error) {
	signer := x.MainSigner(ctx, b.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	roster, err := loadRoster(db, b.roster)
	if err != nil {
		return nil, err
	}
	if !roster.Owner.Equals(signer.Address()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can manage roles")
	}
	return roster, nil
}

// checkBootstrap returns nil while direct signer management is still
// allowed. Once enough signers exist to meet the quorum, membership
// changes must go through the action pipeline.
func checkBootstrap(db vault.ReadOnlyKVStore, roster *Roster) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if roster.ValidSigners() >= int(conf.QuorumThreshold) {
		return errors.Wrap(errors.ErrUnauthorized, "signer changes require a governance action")
	}
	return nil
}

// GrantRoleHandler lets the owner appoint members directly.
type GrantRoleHandler struct {
	roleBase
}

var _ vault.Handler = GrantRoleHandler{}

func (h GrantRoleHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg GrantRoleMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: roleCost}, nil
}

func (h GrantRoleHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg GrantRoleMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	roster, err := h.requireOwner(ctx, db)
	if err != nil {
		return nil, err
	}
	if role := roster.RoleOf(msg.Target); role != RoleInvalid {
		return nil, errors.Wrapf(ErrRoleConflict, "%s already holds the %s role", msg.Target, role)
	}
	switch msg.Role {
	case RoleExecutor:
		if len(roster.Executor) != 0 {
			return nil, errors.Wrapf(ErrRoleConflict, "%s is already the executor", roster.Executor)
		}
		roster.Executor = msg.Target
	case RoleSigner:
		if err := checkBootstrap(db, roster); err != nil {
			return nil, err
		}
		roster.Signers = append(roster.Signers, msg.Target)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "role %s cannot be granted", msg.Role)
	}
	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	if err := setProfile(db, h.profiles, msg.Target, msg.Role, vault.AsUnixTime(blockNow)); err != nil {
		return nil, err
	}
	if err := saveRoster(db, h.roster, roster); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:role", msg.Target.String()),
		},
	}
	return &res, nil
}

// RevokeRoleHandler lets the owner dismiss members directly.
type RevokeRoleHandler struct {
	roleBase
}

var _ vault.Handler = RevokeRoleHandler{}

func (h RevokeRoleHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg RevokeRoleMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: roleCost}, nil
}

func (h RevokeRoleHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg RevokeRoleMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	roster, err := h.requireOwner(ctx, db)
	if err != nil {
		return nil, err
	}
	switch msg.Role {
	case RoleExecutor:
		if len(roster.Executor) == 0 || !roster.Executor.Equals(msg.Target) {
			return nil, errors.Wrapf(errors.ErrNotFound, "%s is not the executor", msg.Target)
		}
		roster.Executor = nil
	case RoleSigner:
		if err := checkBootstrap(db, roster); err != nil {
			return nil, err
		}
		if err := roster.removeSigner(msg.Target); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "role %s cannot be revoked", msg.Role)
	}
	if err := dropProfile(db, h.profiles, msg.Target); err != nil {
		return nil, err
	}
	if err := saveRoster(db, h.roster, roster); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:role", msg.Target.String()),
		},
	}
	return &res, nil
}
