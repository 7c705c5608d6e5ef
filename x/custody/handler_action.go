package custody

import (
	"strconv"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
)

// actionBase carries the state shared by every governance action
// handler.
type actionBase struct {
	auth     x.Authenticator
	roster   orm.ModelBucket
	profiles orm.ModelBucket
	actions  orm.ModelBucket
	seq      orm.Sequence
}

func newActionBase(auth x.Authenticator) actionBase {
	return actionBase{
		auth:     auth,
		roster:   NewRosterBucket(),
		profiles: NewProfileBucket(),
		actions:  NewActionBucket(),
		seq:      newActionSeq(),
	}
}

// submitter returns the address of the main transaction signer.
func (b actionBase) submitter(ctx vault.Context) (vault.Address, error) {
	signer := x.MainSigner(ctx, b.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return signer.Address(), nil
}

// slotOpen returns nil if a new action can be initiated. The slot is
// open when the vault is fresh, or the latest action was executed or
// discarded.
func (b actionBase) slotOpen(db vault.ReadOnlyKVStore) error {
	id, key, err := b.seq.Latest(db)
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	var action PendingAction
	switch err := b.actions.One(db, key, &action); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return err
	}
	if !action.Executed {
		return errors.Wrapf(ErrPendingExists, "action %d awaits resolution", id)
	}
	return nil
}

// pending loads the action the given id refers to. Only the latest,
// not yet executed action can be acted upon.
func (b actionBase) pending(db vault.ReadOnlyKVStore, wantID uint64) (*PendingAction, []byte, error) {
	id, key, err := b.seq.Latest(db)
	if err != nil {
		return nil, nil, err
	}
	if id == 0 {
		return nil, nil, errors.Wrap(ErrNoPending, "no action initiated")
	}
	var action PendingAction
	if err := b.actions.One(db, key, &action); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, nil, errors.Wrap(ErrNoPending, "action slot is empty")
		}
		return nil, nil, err
	}
	if uint64(id) != wantID {
		return nil, nil, errors.Wrapf(ErrNoPending, "action %d is not pending", wantID)
	}
	if action.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "action %d", wantID)
	}
	return &action, key, nil
}

// checkOperational returns nil if the vault can resolve new requests.
func checkOperational(roster *Roster, conf Configuration) error {
	if roster.ValidSigners() < int(conf.QuorumThreshold) {
		return errors.Wrapf(ErrInsufficientSigners, "%d signers cannot meet a quorum of %d",
			roster.ValidSigners(), conf.QuorumThreshold)
	}
	if len(roster.Executor) == 0 {
		return errors.Wrap(ErrMissingExecutor, "no executor appointed")
	}
	return nil
}

// checkActionPreconditions returns nil if the action effect can be
// applied to the current state. This is verified when the action is
// initiated and again when it is executed, as the state may have
// changed in between.
func checkActionPreconditions(roster *Roster, conf Configuration, action *PendingAction) error {
	switch action.Kind {
	case ActionAddSigner:
		if role := roster.RoleOf(action.Target); role != RoleInvalid {
			return errors.Wrapf(ErrRoleConflict, "%s already holds the %s role", action.Target, role)
		}
	case ActionRemoveSigner:
		if roster.RoleOf(action.Target) != RoleSigner {
			return errors.Wrapf(errors.ErrNotFound, "%s is not a signer", action.Target)
		}
	case ActionIncreaseTimelock:
		if vault.UnixDuration(action.Value) <= conf.ActionTimelock {
			return errors.Wrapf(errors.ErrInput, "timelock %d does not increase %d",
				action.Value, conf.ActionTimelock)
		}
	case ActionDecreaseTimelock:
		if vault.UnixDuration(action.Value) >= conf.ActionTimelock {
			return errors.Wrapf(errors.ErrInput, "timelock %d does not decrease %d",
				action.Value, conf.ActionTimelock)
		}
	case ActionIncreaseThreshold:
		if uint32(action.Value) <= conf.QuorumThreshold {
			return errors.Wrapf(errors.ErrInput, "threshold %d does not increase %d",
				action.Value, conf.QuorumThreshold)
		}
		if int(action.Value) > roster.ValidSigners() {
			return errors.Wrapf(ErrInsufficientSigners, "threshold %d exceeds %d available signers",
				action.Value, roster.ValidSigners())
		}
	case ActionDecreaseThreshold:
		if uint32(action.Value) >= conf.QuorumThreshold {
			return errors.Wrapf(errors.ErrInput, "threshold %d does not decrease %d",
				action.Value, conf.QuorumThreshold)
		}
	default:
		return errors.Wrapf(errors.ErrInput, "invalid action kind %s", action.Kind)
	}
	return nil
}

// validApprovals counts approvals from addresses that still hold a
// voting role, so that removing a signer voids their vote.
func validApprovals(roster *Roster, approvals []vault.Address) int {
	var cnt int
	for _, a := range approvals {
		if roster.CanApprove(a) {
			cnt++
		}
	}
	return cnt
}

// checkResolution verifies that the submitter may finalize the given
// approval set. The owner needs their own approval and a full quorum.
// The executor may override an incomplete quorum, which is recorded on
// the request.
func checkResolution(roster *Roster, conf Configuration, caller vault.Address, approvals []vault.Address) (overridden bool, err error) {
	cnt := validApprovals(roster, approvals)
	switch roster.RoleOf(caller) {
	case RoleOwner:
		if !hasApproved(approvals, caller) {
			return false, errors.Wrap(ErrNotApproved, "owner must approve before executing")
		}
		if cnt < int(conf.QuorumThreshold) {
			return false, errors.Wrapf(ErrQuorum, "%d of %d approvals", cnt, conf.QuorumThreshold)
		}
		return false, nil
	case RoleExecutor:
		return cnt < int(conf.QuorumThreshold), nil
	default:
		return false, errors.Wrap(errors.ErrUnauthorized, "only owner or executor can execute")
	}
}

// InitiateActionHandler opens the governance action slot.
type InitiateActionHandler struct {
	actionBase
}

var _ vault.Handler = InitiateActionHandler{}

func (h InitiateActionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg InitiateActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: initiateCost}, nil
}

func (h InitiateActionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg InitiateActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := loadRoster(db, h.roster)
	if err != nil {
		return nil, err
	}
	if !roster.CanApprove(caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only owner or signers can initiate")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := checkOperational(roster, conf); err != nil {
		return nil, err
	}
	if err := h.slotOpen(db); err != nil {
		return nil, err
	}
	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	action := PendingAction{
		Initiator: caller,
		Kind:      msg.Kind,
		Target:    msg.Target,
		Value:     msg.Value,
		CreatedAt: vault.AsUnixTime(blockNow),
	}
	if err := checkActionPreconditions(roster, conf, &action); err != nil {
		return nil, err
	}
	key, err := h.seq.NextVal(db)
	if err != nil {
		return nil, err
	}
	if err := h.actions.Put(db, key, &action); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Data: key,
		Tags: []vault.KVPair{
			vault.Pair("custody:action", strconv.FormatInt(orm.DecodeSequence(key), 10)),
		},
	}
	return &res, nil
}

// ApproveActionHandler records an approval on the pending action.
type ApproveActionHandler struct {
	actionBase
}

var _ vault.Handler = ApproveActionHandler{}

func (h ApproveActionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ApproveActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: approveCost}, nil
}

func (h ApproveActionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ApproveActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := loadRoster(db, h.roster)
	if err != nil {
		return nil, err
	}
	if !roster.CanApprove(caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only owner or signers can approve")
	}
	action, key, err := h.pending(db, msg.ActionId)
	if err != nil {
		return nil, err
	}
	approvals, ok := addApproval(action.Approvals, caller)
	if !ok {
		return nil, errors.Wrapf(ErrAlreadyApproved, "action %d", msg.ActionId)
	}
	action.Approvals = approvals
	if err := h.actions.Put(db, key, action); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// RevokeApprovalHandler withdraws an approval from the pending action.
type RevokeApprovalHandler struct {
	actionBase
}

var _ vault.Handler = RevokeApprovalHandler{}

func (h RevokeApprovalHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg RevokeApprovalMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: approveCost}, nil
}

func (h RevokeApprovalHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg RevokeApprovalMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	action, key, err := h.pending(db, msg.ActionId)
	if err != nil {
		return nil, err
	}
	approvals, ok := removeApproval(action.Approvals, caller)
	if !ok {
		return nil, errors.Wrapf(ErrNotApproved, "action %d", msg.ActionId)
	}
	action.Approvals = approvals
	if err := h.actions.Put(db, key, action); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// ExecuteActionHandler finalizes the pending action and applies its
// effect to the roster or the configuration.
type ExecuteActionHandler struct {
	actionBase
}

var _ vault.Handler = ExecuteActionHandler{}

func (h ExecuteActionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ExecuteActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: executeCost}, nil
}

func (h ExecuteActionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ExecuteActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := loadRoster(db, h.roster)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	action, key, err := h.pending(db, msg.ActionId)
	if err != nil {
		return nil, err
	}
	if !vault.IsExpired(ctx, action.CreatedAt.Add(conf.ActionTimelock.Duration())) {
		return nil, errors.Wrapf(ErrTimelock, "action %d is locked until %s",
			msg.ActionId, action.CreatedAt.Add(conf.ActionTimelock.Duration()))
	}
	overridden, err := checkResolution(roster, conf, caller, action.Approvals)
	if err != nil {
		return nil, err
	}
	// The state could have changed since the action was initiated.
	if err := checkActionPreconditions(roster, conf, action); err != nil {
		return nil, err
	}

	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	switch action.Kind {
	case ActionAddSigner:
		if err := roster.addSigner(action.Target); err != nil {
			return nil, err
		}
		if err := setProfile(db, h.profiles, action.Target, RoleSigner, vault.AsUnixTime(blockNow)); err != nil {
			return nil, err
		}
		if err := saveRoster(db, h.roster, roster); err != nil {
			return nil, err
		}
	case ActionRemoveSigner:
		if err := roster.removeSigner(action.Target); err != nil {
			return nil, err
		}
		if err := dropProfile(db, h.profiles, action.Target); err != nil {
			return nil, err
		}
		if err := saveRoster(db, h.roster, roster); err != nil {
			return nil, err
		}
	case ActionIncreaseTimelock, ActionDecreaseTimelock:
		conf.ActionTimelock = vault.UnixDuration(action.Value)
		if err := saveConf(db, conf); err != nil {
			return nil, err
		}
	case ActionIncreaseThreshold, ActionDecreaseThreshold:
		conf.QuorumThreshold = uint32(action.Value)
		if err := saveConf(db, conf); err != nil {
			return nil, err
		}
	}

	action.Executed = true
	action.WasOverridden = overridden
	if err := h.actions.Put(db, key, action); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:action", strconv.FormatUint(msg.ActionId, 10)),
		},
	}
	return &res, nil
}

// DeleteActionHandler discards the pending action and returns its id
// to the sequence.
type DeleteActionHandler struct {
	actionBase
}

var _ vault.Handler = DeleteActionHandler{}

func (h DeleteActionHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg DeleteActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: deleteCost}, nil
}

func (h DeleteActionHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg DeleteActionMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := loadRoster(db, h.roster)
	if err != nil {
		return nil, err
	}
	if !roster.CanResolve(caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only owner or executor can delete")
	}
	id, key, err := h.seq.Latest(db)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, errors.Wrap(ErrNoPending, "no action initiated")
	}
	var action PendingAction
	if err := h.actions.One(db, key, &action); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(ErrNoPending, "action slot is empty")
		}
		return nil, err
	}
	if action.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "action %d", id)
	}
	if err := h.actions.Delete(db, key); err != nil {
		return nil, err
	}
	// The released id is produced again by the next initiation.
	if err := h.seq.Release(db); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}
