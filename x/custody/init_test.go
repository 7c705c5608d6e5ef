package custody

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
)

func TestGenesisVault(t *testing.T) {
	owner := vaulttest.NewAddress()
	executor := vaulttest.NewAddress()
	signer := vaulttest.NewAddress()

	opts := vault.Options{
		"conf": json.RawMessage(`{
			"custody": {
				"quorum_threshold": 2,
				"action_timelock": "1h",
				"succession_timelock": "48h"
			}
		}`),
		"custody": json.RawMessage(fmt.Sprintf(`{
			"owner": "%s",
			"executor": "%s",
			"signers": ["%s"]
		}`, owner, executor, signer)),
	}
	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	roster, err := loadRoster(db, NewRosterBucket())
	assert.Nil(t, err)
	assert.Equal(t, RoleOwner, roster.RoleOf(owner))
	assert.Equal(t, RoleExecutor, roster.RoleOf(executor))
	assert.Equal(t, RoleSigner, roster.RoleOf(signer))

	var profile UserProfile
	assert.Nil(t, NewProfileBucket().One(db, owner, &profile))
	assert.Equal(t, RoleOwner, profile.Role)

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, uint32(2), conf.QuorumThreshold)
	assert.Equal(t, vault.AsUnixDuration(48*time.Hour), conf.SuccessionTimelock)
}

func TestGenesisVaultRolesAreDisjoint(t *testing.T) {
	owner := vaulttest.NewAddress()

	opts := vault.Options{
		"conf": json.RawMessage(`{
			"custody": {
				"quorum_threshold": 2,
				"action_timelock": "1h",
				"succession_timelock": "48h"
			}
		}`),
		"custody": json.RawMessage(fmt.Sprintf(`{
			"owner": "%s",
			"signers": ["%s"]
		}`, owner, owner)),
	}
	db := store.MemStore()
	var ini Initializer
	assert.IsErr(t, ErrRoleConflict, ini.FromGenesis(opts, db))
}

func TestGenesisVaultRequiresConfiguration(t *testing.T) {
	opts := vault.Options{
		"custody": json.RawMessage(fmt.Sprintf(`{"owner": "%s"}`, vaulttest.NewAddress())),
	}
	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err == nil {
		t.Fatal("missing configuration must be rejected")
	}
}
