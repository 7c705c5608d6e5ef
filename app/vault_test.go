package app

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/custody"
)

var launchTime = time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)

// testGenesis builds a genesis document with a funded treasury and a
// fully staffed membership.
func testGenesis(owner, executor vault.Condition, signers ...vault.Condition) vault.Options {
	addrs := make([]string, 0, len(signers))
	for _, s := range signers {
		addrs = append(addrs, s.Address().String())
	}
	rawSigners, _ := json.Marshal(addrs)

	return vault.Options{
		"cash": json.RawMessage(fmt.Sprintf(`[
			{"address": "%s", "coins": [{"amount": 1000, "ticker": "IOV"}]}
		]`, custody.TreasuryAddress())),
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
			"signers": %s
		}`, owner.Address(), executor.Address(), rawSigners)),
	}
}

func TestVaultTransferLifecycle(t *testing.T) {
	owner := vaulttest.NewCondition()
	executor := vaulttest.NewCondition()
	s1 := vaulttest.NewCondition()
	s2 := vaulttest.NewCondition()
	recipient := vaulttest.NewAddress()

	v, err := NewVault(store.MemStore(), testGenesis(owner, executor, s1, s2))
	require.NoError(t, err)

	// as produces an authenticated context at an offset from launch.
	as := func(caller vault.Condition, offset time.Duration) vault.Context {
		ctx := vault.WithBlockTime(context.Background(), launchTime.Add(offset))
		return v.Authenticate(ctx, caller)
	}
	deliver := func(caller vault.Condition, offset time.Duration, msg vault.Msg) (*vault.DeliverResult, error) {
		return v.Deliver(as(caller, offset), &vaulttest.Tx{Msg: msg})
	}

	res, err := deliver(s1, 0, &custody.InitiateTransferMsg{
		Recipient: recipient,
		Amount:    coin.NewCoinp(250, "IOV"),
	})
	require.NoError(t, err)
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)

	_, err = deliver(owner, 0, &custody.ApproveTransferMsg{TransferId: 1})
	require.NoError(t, err)
	_, err = deliver(s2, 0, &custody.ApproveTransferMsg{TransferId: 1})
	require.NoError(t, err)

	// The timelock holds until a full hour has passed.
	_, err = deliver(owner, 30*time.Minute, &custody.ExecuteTransferMsg{TransferId: 1})
	assert.True(t, custody.ErrTimelock.Is(err))

	_, err = deliver(owner, time.Hour, &custody.ExecuteTransferMsg{TransferId: 1})
	require.NoError(t, err)

	models, err := v.Query("/wallets", vault.KeyQueryMod, recipient)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var wallet cash.Wallet
	require.NoError(t, wallet.Unmarshal(models[0].Value))
	require.Len(t, wallet.Coins, 1)
	assert.True(t, coin.NewCoin(250, "IOV").Equals(*wallet.Coins[0]))
}

func TestVaultDeliverIsAtomic(t *testing.T) {
	owner := vaulttest.NewCondition()
	executor := vaulttest.NewCondition()
	s1 := vaulttest.NewCondition()
	s2 := vaulttest.NewCondition()

	v, err := NewVault(store.MemStore(), testGenesis(owner, executor, s1, s2))
	require.NoError(t, err)

	ctx := v.Authenticate(vault.WithBlockTime(context.Background(), launchTime), s1)

	// A failed initiation must not burn a sequence id.
	_, err = v.Deliver(ctx, &vaulttest.Tx{Msg: &custody.InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(5000, "IOV"),
	}})
	assert.True(t, cash.ErrInsufficientFunds.Is(err))

	res, err := v.Deliver(ctx, &vaulttest.Tx{Msg: &custody.InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(100, "IOV"),
	}})
	require.NoError(t, err)
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)
}

func TestVaultCheckLeavesNoTrace(t *testing.T) {
	owner := vaulttest.NewCondition()
	executor := vaulttest.NewCondition()
	s1 := vaulttest.NewCondition()
	s2 := vaulttest.NewCondition()

	v, err := NewVault(store.MemStore(), testGenesis(owner, executor, s1, s2))
	require.NoError(t, err)

	ctx := v.Authenticate(vault.WithBlockTime(context.Background(), launchTime), s1)
	msg := &custody.InitiateActionMsg{
		Kind:   custody.ActionAddSigner,
		Target: vaulttest.NewAddress(),
	}

	_, err = v.Check(ctx, &vaulttest.Tx{Msg: msg})
	require.NoError(t, err)

	// Whatever Check did, the delivered state still sees an open slot.
	res, err := v.Deliver(ctx, &vaulttest.Tx{Msg: msg})
	require.NoError(t, err)
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)
}

func TestVaultRejectsInvalidGenesis(t *testing.T) {
	owner := vaulttest.NewCondition()
	executor := vaulttest.NewCondition()

	// Missing custody configuration.
	opts := vault.Options{
		"custody": json.RawMessage(fmt.Sprintf(`{"owner": "%s"}`, owner.Address())),
	}
	_, err := NewVault(store.MemStore(), opts)
	assert.Error(t, err)

	// Overlapping roles.
	opts = testGenesis(owner, executor, owner)
	_, err = NewVault(store.MemStore(), opts)
	assert.True(t, custody.ErrRoleConflict.Is(err))
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`{"cash": [], "conf": {}}`))
	require.NoError(t, err)
	assert.Contains(t, opts, "cash")
	assert.Contains(t, opts, "conf")

	_, err = ParseOptions([]byte(`not json`))
	assert.Error(t, err)
}
