package cash

import (
	"context"
	"testing"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
)

func TestDepositHandler(t *testing.T) {
	db := store.MemStore()
	control := NewController()

	alice := vaulttest.NewCondition()
	treasury := vaulttest.NewAddress()
	assert.Nil(t, control.IssueCoins(db, alice.Address(), coin.NewCoin(100, "IOV")))

	auth := &vaulttest.Auth{Signer: alice}
	h := NewDepositHandler(auth, control)

	tx := &vaulttest.Tx{Msg: &DepositMsg{
		Source:      alice.Address(),
		Destination: treasury,
		Amount:      coin.NewCoinp(25, "IOV"),
	}}
	ctx := context.Background()

	cres, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, depositCost, cres.GasAllocated)

	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))

	got, err := control.Balance(db, treasury)
	assert.Nil(t, err)
	assert.Equal(t, int64(25), got.Amount("IOV"))
}

func TestDepositHandlerInvalidMsg(t *testing.T) {
	db := store.MemStore()
	auth := &vaulttest.Auth{Signer: vaulttest.NewCondition()}
	h := NewDepositHandler(auth, NewController())

	tx := &vaulttest.Tx{Msg: &DepositMsg{
		Source:      vaulttest.NewAddress(),
		Destination: vaulttest.NewAddress(),
		Amount:      coin.NewCoinp(-4, "IOV"),
	}}
	_, err := h.Check(context.Background(), db, tx)
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestSetAllowanceHandler(t *testing.T) {
	db := store.MemStore()
	control := NewController()

	alice := vaulttest.NewCondition()
	operator := vaulttest.NewAddress()

	auth := &vaulttest.Auth{Signer: alice}
	h := NewSetAllowanceHandler(auth, control)

	tx := &vaulttest.Tx{Msg: &SetAllowanceMsg{
		Grantee: operator,
		Amount:  coin.NewCoinp(50, "IOV"),
	}}
	ctx := context.Background()

	_, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	remaining, err := control.Allowance(db, alice.Address(), operator)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), remaining.Amount("IOV"))
}
