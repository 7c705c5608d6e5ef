package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
)

// successionBase carries the state shared by the owner succession
// handlers.
type successionBase struct {
	auth       x.Authenticator
	roster     orm.ModelBucket
	profiles   orm.ModelBucket
	succession orm.ModelBucket
}

func newSuccessionBase(auth x.Authenticator) successionBase {
	return successionBase{
		auth:       auth,
		roster:     NewRosterBucket(),
		profiles:   NewProfileBucket(),
		succession: NewSuccessionBucket(),
	}
}

// requireExecutor loads the roster and verifies the main signer is the
// executor.
func (b successionBase) requireExecutor(ctx vault.Context, db vault.ReadOnlyKVStore) (*Roster, vault.Address, error) {
	signer := x.MainSigner(ctx, b.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	roster, err := loadRoster(db, b.roster)
	if err != nil {
		return nil, nil, err
	}
	if len(roster.Executor) == 0 {
		return nil, nil, errors.Wrap(ErrMissingExecutor, "no executor appointed")
	}
	if !roster.Executor.Equals(signer.Address()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the executor can run succession")
	}
	return roster, signer.Address(), nil
}

// InitiateSuccessionHandler starts the timelocked owner takeover.
type InitiateSuccessionHandler struct {
	successionBase
}

var _ vault.Handler = InitiateSuccessionHandler{}

func (h InitiateSuccessionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg InitiateSuccessionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: executeCost}, nil
}

func (h InitiateSuccessionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg InitiateSuccessionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, _, err := h.requireExecutor(ctx, db); err != nil {
		return nil, err
	}
	succession, err := loadSuccession(db, h.succession)
	if err != nil {
		return nil, err
	}
	if succession.Active {
		return nil, errors.Wrapf(ErrSuccessionState, "succession already started at %s", succession.InitiatedAt)
	}
	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	succession.Active = true
	succession.InitiatedAt = vault.AsUnixTime(blockNow)
	if err := saveSuccession(db, h.succession, succession); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:succession", "initiated"),
		},
	}
	return &res, nil
}

// ApproveSuccessionHandler finalizes the owner takeover. The executor
// becomes the new owner and leaves the executor seat empty.
type ApproveSuccessionHandler struct {
	successionBase
}

var _ vault.Handler = ApproveSuccessionHandler{}

func (h ApproveSuccessionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ApproveSuccessionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: executeCost}, nil
}

func (h ApproveSuccessionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ApproveSuccessionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	roster, heir, err := h.requireExecutor(ctx, db)
	if err != nil {
		return nil, err
	}
	succession, err := loadSuccession(db, h.succession)
	if err != nil {
		return nil, err
	}
	if !succession.Active {
		return nil, errors.Wrap(ErrSuccessionState, "no succession started")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	unlocks := succession.InitiatedAt.Add(conf.SuccessionTimelock.Duration())
	if !vault.IsExpired(ctx, unlocks) {
		return nil, errors.Wrapf(ErrTimelock, "succession is locked until %s", unlocks)
	}
	if roster.Owner.Equals(heir) {
		return nil, errors.Wrap(errors.ErrState, "owner cannot succeed themselves")
	}

	if err := dropProfile(db, h.profiles, roster.Owner); err != nil {
		return nil, err
	}
	if err := dropProfile(db, h.profiles, heir); err != nil {
		return nil, err
	}
	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	roster.Owner = heir
	roster.Executor = nil
	if err := setProfile(db, h.profiles, heir, RoleOwner, vault.AsUnixTime(blockNow)); err != nil {
		return nil, err
	}
	if err := saveRoster(db, h.roster, roster); err != nil {
		return nil, err
	}
	succession.Active = false
	succession.InitiatedAt = 0
	if err := saveSuccession(db, h.succession, succession); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:succession", heir.String()),
		},
	}
	return &res, nil
}
