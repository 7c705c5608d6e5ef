package custody

import (
	"context"
	"testing"
	"time"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
)

var genesisTime = time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)

// testVault is a fully configured vault with an owner, an executor and
// a number of signers.
type testVault struct {
	owner    vault.Condition
	executor vault.Condition
	signers  []vault.Condition
	ledger   cash.BaseController
}

func newTestVault(t testing.TB, db vault.KVStore, signerCount int, conf Configuration) *testVault {
	t.Helper()
	v := testVault{
		owner:    vaulttest.NewCondition(),
		executor: vaulttest.NewCondition(),
		ledger:   cash.NewController(),
	}
	roster := Roster{
		Owner:    v.owner.Address(),
		Executor: v.executor.Address(),
	}
	for i := 0; i < signerCount; i++ {
		c := vaulttest.NewCondition()
		v.signers = append(v.signers, c)
		roster.Signers = append(roster.Signers, c.Address())
	}
	assert.Nil(t, saveRoster(db, NewRosterBucket(), &roster))
	assert.Nil(t, saveConf(db, conf))
	return &v
}

func defaultConf() Configuration {
	return Configuration{
		QuorumThreshold:    2,
		ActionTimelock:     vault.AsUnixDuration(time.Hour),
		SuccessionTimelock: vault.AsUnixDuration(48 * time.Hour),
	}
}

// asOf returns a context with the block time set to genesis time plus
// the given offset.
func asOf(offset time.Duration) vault.Context {
	return vault.WithBlockTime(context.Background(), genesisTime.Add(offset))
}

func (v *testVault) deliver(t testing.TB, db vault.KVStore, caller vault.Condition, at time.Duration, msg vault.Msg) (*vault.DeliverResult, error) {
	t.Helper()
	auth := &vaulttest.Auth{Signer: caller}
	tx := &vaulttest.Tx{Msg: msg}
	ctx := asOf(at)

	var h vault.Handler
	switch msg.(type) {
	case *InitiateActionMsg:
		h = InitiateActionHandler{newActionBase(auth)}
	case *ApproveActionMsg:
		h = ApproveActionHandler{newActionBase(auth)}
	case *RevokeApprovalMsg:
		h = RevokeApprovalHandler{newActionBase(auth)}
	case *ExecuteActionMsg:
		h = ExecuteActionHandler{newActionBase(auth)}
	case *DeleteActionMsg:
		h = DeleteActionHandler{newActionBase(auth)}
	case *InitiateTransferMsg:
		h = InitiateTransferHandler{newTransferBase(auth, v.ledger)}
	case *ApproveTransferMsg:
		h = ApproveTransferHandler{newTransferBase(auth, v.ledger)}
	case *RevokeTransferApprovalMsg:
		h = RevokeTransferApprovalHandler{newTransferBase(auth, v.ledger)}
	case *ExecuteTransferMsg:
		h = ExecuteTransferHandler{newTransferBase(auth, v.ledger)}
	case *DeleteTransferMsg:
		h = DeleteTransferHandler{newTransferBase(auth, v.ledger)}
	case *GrantRoleMsg:
		h = GrantRoleHandler{newRoleBase(auth)}
	case *RevokeRoleMsg:
		h = RevokeRoleHandler{newRoleBase(auth)}
	case *InitiateSuccessionMsg:
		h = InitiateSuccessionHandler{newSuccessionBase(auth)}
	case *ApproveSuccessionMsg:
		h = ApproveSuccessionHandler{newSuccessionBase(auth)}
	default:
		t.Fatalf("unknown message %T", msg)
	}
	return h.Deliver(ctx, db, tx)
}

func (v *testVault) mustDeliver(t testing.TB, db vault.KVStore, caller vault.Condition, at time.Duration, msg vault.Msg) *vault.DeliverResult {
	t.Helper()
	res, err := v.deliver(t, db, caller, at, msg)
	assert.Nil(t, err)
	return res
}

func latestAction(t testing.TB, db vault.KVStore) *PendingAction {
	t.Helper()
	seq := newActionSeq()
	_, key, err := seq.Latest(db)
	assert.Nil(t, err)
	var action PendingAction
	assert.Nil(t, NewActionBucket().One(db, key, &action))
	return &action
}

func TestActionPipeline(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	newbie := vaulttest.NewAddress()

	res := v.mustDeliver(t, db, v.signers[0], 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: newbie,
	})
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)

	v.mustDeliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})

	// The timelock has not expired one second before the deadline.
	_, err := v.deliver(t, db, v.owner, time.Hour-time.Second, &ExecuteActionMsg{ActionId: 1})
	assert.IsErr(t, ErrTimelock, err)

	// The deadline itself is inclusive.
	v.mustDeliver(t, db, v.owner, time.Hour, &ExecuteActionMsg{ActionId: 1})

	roster, err := loadRoster(db, NewRosterBucket())
	assert.Nil(t, err)
	assert.Equal(t, RoleSigner, roster.RoleOf(newbie))

	var profile UserProfile
	assert.Nil(t, NewProfileBucket().One(db, newbie, &profile))
	assert.Equal(t, RoleSigner, profile.Role)

	action := latestAction(t, db)
	assert.Equal(t, true, action.Executed)
	assert.Equal(t, false, action.WasOverridden)
}

func TestActionSingleSlot(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: vaulttest.NewAddress(),
	})
	_, err := v.deliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:  ActionIncreaseThreshold,
		Value: 3,
	})
	assert.IsErr(t, ErrPendingExists, err)

	// Discarding the request frees the slot and recycles the id.
	v.mustDeliver(t, db, v.executor, 0, &DeleteActionMsg{})
	res := v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:  ActionIncreaseThreshold,
		Value: 3,
	})
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)
}

func TestActionApprovalRoundTrip(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: vaulttest.NewAddress(),
	})

	v.mustDeliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})
	_, err := v.deliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})
	assert.IsErr(t, ErrAlreadyApproved, err)

	_, err = v.deliver(t, db, v.signers[1], 0, &RevokeApprovalMsg{ActionId: 1})
	assert.IsErr(t, ErrNotApproved, err)

	v.mustDeliver(t, db, v.signers[0], 0, &RevokeApprovalMsg{ActionId: 1})
	assert.Equal(t, 0, len(latestAction(t, db).Approvals))
}

func TestActionExecutorOverride(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	newbie := vaulttest.NewAddress()

	v.mustDeliver(t, db, v.signers[0], 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: newbie,
	})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})

	// The owner cannot execute without their own approval on record.
	_, err := v.deliver(t, db, v.owner, 2*time.Hour, &ExecuteActionMsg{ActionId: 1})
	assert.IsErr(t, ErrNotApproved, err)

	// The executor can, and the override is recorded.
	v.mustDeliver(t, db, v.executor, 2*time.Hour, &ExecuteActionMsg{ActionId: 1})
	action := latestAction(t, db)
	assert.Equal(t, true, action.Executed)
	assert.Equal(t, true, action.WasOverridden)
}

func TestActionOwnerQuorum(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: vaulttest.NewAddress(),
	})
	v.mustDeliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 1})

	// Owner approved but the quorum of two is not met.
	_, err := v.deliver(t, db, v.owner, 2*time.Hour, &ExecuteActionMsg{ActionId: 1})
	assert.IsErr(t, ErrQuorum, err)

	v.mustDeliver(t, db, v.signers[1], 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.owner, 2*time.Hour, &ExecuteActionMsg{ActionId: 1})
	assert.Equal(t, false, latestAction(t, db).WasOverridden)
}

func TestActionStaleID(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	_, err := v.deliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 1})
	assert.IsErr(t, ErrNoPending, err)

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:  ActionIncreaseThreshold,
		Value: 3,
	})
	_, err = v.deliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 2})
	assert.IsErr(t, ErrNoPending, err)

	v.mustDeliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.owner, time.Hour, &ExecuteActionMsg{ActionId: 1})

	_, err = v.deliver(t, db, v.executor, time.Hour, &ExecuteActionMsg{ActionId: 1})
	assert.IsErr(t, ErrAlreadyExecuted, err)
	_, err = v.deliver(t, db, v.executor, time.Hour, &DeleteActionMsg{})
	assert.IsErr(t, ErrAlreadyExecuted, err)
}

func TestActionInitiatePreconditions(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	cases := map[string]struct {
		caller  vault.Condition
		msg     *InitiateActionMsg
		wantErr *errors.Error
	}{
		"cannot add an existing signer": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionAddSigner, Target: v.signers[0].Address()},
			wantErr: ErrRoleConflict,
		},
		"cannot remove a stranger": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionRemoveSigner, Target: vaulttest.NewAddress()},
			wantErr: errors.ErrNotFound,
		},
		"threshold must increase": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: 2},
			wantErr: errors.ErrInput,
		},
		"threshold cannot exceed voters": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: 4},
			wantErr: ErrInsufficientSigners,
		},
		"threshold must decrease": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionDecreaseThreshold, Value: 2},
			wantErr: errors.ErrInput,
		},
		"timelock must increase": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionIncreaseTimelock, Value: 3600},
			wantErr: errors.ErrInput,
		},
		"timelock must decrease": {
			caller:  v.owner,
			msg:     &InitiateActionMsg{Kind: ActionDecreaseTimelock, Value: 3600},
			wantErr: errors.ErrInput,
		},
		"executor cannot initiate": {
			caller:  v.executor,
			msg:     &InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: 3},
			wantErr: errors.ErrUnauthorized,
		},
		"stranger cannot initiate": {
			caller:  vaulttest.NewCondition(),
			msg:     &InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: 3},
			wantErr: errors.ErrUnauthorized,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := v.deliver(t, db, tc.caller, 0, tc.msg)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestActionRequiresOperationalVault(t *testing.T) {
	db := store.MemStore()

	// One signer plus the owner cannot meet a quorum of three.
	conf := defaultConf()
	conf.QuorumThreshold = 3
	v := newTestVault(t, db, 1, conf)

	_, err := v.deliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: vaulttest.NewAddress(),
	})
	assert.IsErr(t, ErrInsufficientSigners, err)
}

func TestActionRequiresExecutor(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	roster, err := loadRoster(db, NewRosterBucket())
	assert.Nil(t, err)
	roster.Executor = nil
	assert.Nil(t, saveRoster(db, NewRosterBucket(), roster))

	_, err = v.deliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:   ActionAddSigner,
		Target: vaulttest.NewAddress(),
	})
	assert.IsErr(t, ErrMissingExecutor, err)
}

func TestActionConfigurationChange(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:  ActionIncreaseThreshold,
		Value: 3,
	})
	v.mustDeliver(t, db, v.owner, 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveActionMsg{ActionId: 1})
	v.mustDeliver(t, db, v.owner, time.Hour, &ExecuteActionMsg{ActionId: 1})

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, uint32(3), conf.QuorumThreshold)

	// The next timelock change starts a fresh pipeline round.
	v.mustDeliver(t, db, v.owner, time.Hour, &InitiateActionMsg{
		Kind:  ActionDecreaseTimelock,
		Value: 600,
	})
	v.mustDeliver(t, db, v.owner, time.Hour, &ApproveActionMsg{ActionId: 2})
	v.mustDeliver(t, db, v.signers[0], time.Hour, &ApproveActionMsg{ActionId: 2})
	v.mustDeliver(t, db, v.signers[1], time.Hour, &ApproveActionMsg{ActionId: 2})
	v.mustDeliver(t, db, v.owner, 2*time.Hour, &ExecuteActionMsg{ActionId: 2})

	conf, err = loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, vault.AsUnixDuration(10*time.Minute), conf.ActionTimelock)
}

func TestActionDeleteAuthorization(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.owner, 0, &InitiateActionMsg{
		Kind:  ActionIncreaseThreshold,
		Value: 3,
	})
	_, err := v.deliver(t, db, v.signers[0], 0, &DeleteActionMsg{})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	v.mustDeliver(t, db, v.owner, 0, &DeleteActionMsg{})
	_, err = v.deliver(t, db, v.owner, 0, &DeleteActionMsg{})
	assert.IsErr(t, ErrNoPending, err)
}
