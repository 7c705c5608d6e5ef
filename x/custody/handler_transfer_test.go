package custody

import (
	"testing"
	"time"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
)

func TestTransferPipeline(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	recipient := vaulttest.NewAddress()
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(1000, "IOV")))

	res := v.mustDeliver(t, db, v.signers[0], 0, &InitiateTransferMsg{
		Recipient: recipient,
		Amount:    coin.NewCoinp(250, "IOV"),
	})
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)

	v.mustDeliver(t, db, v.owner, 0, &ApproveTransferMsg{TransferId: 1})
	v.mustDeliver(t, db, v.signers[1], 0, &ApproveTransferMsg{TransferId: 1})

	_, err := v.deliver(t, db, v.executor, time.Minute, &ExecuteTransferMsg{TransferId: 1})
	assert.IsErr(t, ErrTimelock, err)

	v.mustDeliver(t, db, v.executor, time.Hour, &ExecuteTransferMsg{TransferId: 1})

	got, err := v.ledger.Balance(db, recipient)
	assert.Nil(t, err)
	assert.Equal(t, int64(250), got.Amount("IOV"))
	got, err = v.ledger.Balance(db, TreasuryAddress())
	assert.Nil(t, err)
	assert.Equal(t, int64(750), got.Amount("IOV"))

	seq := newTransferSeq()
	_, key, err := seq.Latest(db)
	assert.Nil(t, err)
	var transfer PendingTransfer
	assert.Nil(t, NewTransferBucket().One(db, key, &transfer))
	assert.Equal(t, true, transfer.Executed)
	assert.Equal(t, false, transfer.WasOverridden)
}

func TestTransferRequiresFunds(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())

	// An empty treasury cannot promise anything.
	_, err := v.deliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(1, "IOV"),
	})
	assert.IsErr(t, cash.ErrInsufficientFunds, err)

	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))
	_, err = v.deliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(101, "IOV"),
	})
	assert.IsErr(t, cash.ErrInsufficientFunds, err)
}

func TestTransferToTreasuryRejected(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))

	_, err := v.deliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: TreasuryAddress(),
		Amount:    coin.NewCoinp(10, "IOV"),
	})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestTransferSingleSlot(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))

	v.mustDeliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(10, "IOV"),
	})
	_, err := v.deliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(20, "IOV"),
	})
	assert.IsErr(t, ErrPendingExists, err)

	v.mustDeliver(t, db, v.executor, 0, &DeleteTransferMsg{})
	res := v.mustDeliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(20, "IOV"),
	})
	assert.Equal(t, vaulttest.SequenceID(1), res.Data)
}

func TestTransferExecutorOverride(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	recipient := vaulttest.NewAddress()
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))

	v.mustDeliver(t, db, v.signers[0], 0, &InitiateTransferMsg{
		Recipient: recipient,
		Amount:    coin.NewCoinp(40, "IOV"),
	})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveTransferMsg{TransferId: 1})

	v.mustDeliver(t, db, v.executor, time.Hour, &ExecuteTransferMsg{TransferId: 1})

	seq := newTransferSeq()
	_, key, err := seq.Latest(db)
	assert.Nil(t, err)
	var transfer PendingTransfer
	assert.Nil(t, NewTransferBucket().One(db, key, &transfer))
	assert.Equal(t, true, transfer.WasOverridden)

	got, err := v.ledger.Balance(db, recipient)
	assert.Nil(t, err)
	assert.Equal(t, int64(40), got.Amount("IOV"))
}

func TestTransferApprovalRoundTrip(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))

	v.mustDeliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(10, "IOV"),
	})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveTransferMsg{TransferId: 1})
	_, err := v.deliver(t, db, v.signers[0], 0, &ApproveTransferMsg{TransferId: 1})
	assert.IsErr(t, ErrAlreadyApproved, err)
	v.mustDeliver(t, db, v.signers[0], 0, &RevokeTransferApprovalMsg{TransferId: 1})
	_, err = v.deliver(t, db, v.signers[0], 0, &RevokeTransferApprovalMsg{TransferId: 1})
	assert.IsErr(t, ErrNotApproved, err)
}

func TestTransferDrainedTreasury(t *testing.T) {
	db := store.MemStore()
	v := newTestVault(t, db, 2, defaultConf())
	assert.Nil(t, v.ledger.IssueCoins(db, TreasuryAddress(), coin.NewCoin(100, "IOV")))

	v.mustDeliver(t, db, v.owner, 0, &InitiateTransferMsg{
		Recipient: vaulttest.NewAddress(),
		Amount:    coin.NewCoinp(80, "IOV"),
	})
	v.mustDeliver(t, db, v.owner, 0, &ApproveTransferMsg{TransferId: 1})
	v.mustDeliver(t, db, v.signers[0], 0, &ApproveTransferMsg{TransferId: 1})

	// Funds left the treasury while the request was pending.
	assert.Nil(t, v.ledger.MoveCoins(db, TreasuryAddress(), vaulttest.NewAddress(), coin.NewCoin(50, "IOV")))

	_, err := v.deliver(t, db, v.owner, time.Hour, &ExecuteTransferMsg{TransferId: 1})
	assert.IsErr(t, cash.ErrInsufficientFunds, err)
}
