package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
)

func TestGenesisAccounts(t *testing.T) {
	addr := vaulttest.NewAddress()
	genesis := fmt.Sprintf(`[
		{"address": "%s", "coins": [{"amount": 888, "ticker": "IOV"}]}
	]`, addr)

	opts := vault.Options{"cash": json.RawMessage(genesis)}
	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	got, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, int64(888), got.Amount("IOV"))
}

func TestGenesisInvalidAddress(t *testing.T) {
	opts := vault.Options{"cash": json.RawMessage(`[
		{"address": "badf00d", "coins": [{"amount": 1, "ticker": "IOV"}]}
	]`)}
	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err == nil {
		t.Fatal("invalid address must be rejected")
	}
}
