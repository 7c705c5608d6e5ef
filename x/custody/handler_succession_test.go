package custody

import (
	"testing"
	"time"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
)

func TestSuccession(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.executor, 0, &InitiateSuccessionMsg{})

	// The takeover is locked for 48 hours.
	_, err := v.deliver(t, db, v.executor, time.Hour, &ApproveSuccessionMsg{})
	assert.IsErr(t, ErrTimelock, err)

	v.mustDeliver(t, db, v.executor, 48*time.Hour, &ApproveSuccessionMsg{})

	roster, err := loadRoster(db, NewRosterBucket())
	assert.Nil(t, err)
	assert.Equal(t, RoleOwner, roster.RoleOf(v.executor.Address()))
	assert.Equal(t, RoleInvalid, roster.RoleOf(v.owner.Address()))
	assert.Equal(t, 0, len(roster.Executor))

	var profile UserProfile
	assert.Nil(t, NewProfileBucket().One(db, v.executor.Address(), &profile))
	assert.Equal(t, RoleOwner, profile.Role)
	assert.IsErr(t, errors.ErrNotFound, NewProfileBucket().One(db, v.owner.Address(), &profile))

	succession, err := loadSuccession(db, NewSuccessionBucket())
	assert.Nil(t, err)
	assert.Equal(t, false, succession.Active)
}

func TestSuccessionState(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	// Nothing to approve before initiation.
	_, err := v.deliver(t, db, v.executor, 0, &ApproveSuccessionMsg{})
	assert.IsErr(t, ErrSuccessionState, err)

	v.mustDeliver(t, db, v.executor, 0, &InitiateSuccessionMsg{})
	_, err = v.deliver(t, db, v.executor, time.Hour, &InitiateSuccessionMsg{})
	assert.IsErr(t, ErrSuccessionState, err)
}

func TestSuccessionIsExecutorOnly(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	_, err := v.deliver(t, db, v.owner, 0, &InitiateSuccessionMsg{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = v.deliver(t, db, v.signers[0], 0, &InitiateSuccessionMsg{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = v.deliver(t, db, vaulttest.NewCondition(), 0, &InitiateSuccessionMsg{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestSuccessionWithoutExecutor(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	roster, err := loadRoster(db, NewRosterBucket())
	assert.Nil(t, err)
	roster.Executor = nil
	assert.Nil(t, saveRoster(db, NewRosterBucket(), roster))

	_, err = v.deliver(t, db, v.executor, 0, &InitiateSuccessionMsg{})
	assert.IsErr(t, ErrMissingExecutor, err)
}

func TestSuccessionTimelockBoundary(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	v.mustDeliver(t, db, v.executor, 0, &InitiateSuccessionMsg{})

	_, err := v.deliver(t, db, v.executor, 48*time.Hour-time.Second, &ApproveSuccessionMsg{})
	assert.IsErr(t, ErrTimelock, err)
	// The deadline itself is inclusive.
	v.mustDeliver(t, db, v.executor, 48*time.Hour, &ApproveSuccessionMsg{})
}
