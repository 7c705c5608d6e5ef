package custody

import (
	"strconv"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
)

// transferBase carries the state shared by every asset transfer
// handler.
type transferBase struct {
	auth      x.Authenticator
	roster    orm.ModelBucket
	transfers orm.ModelBucket
	seq       orm.Sequence
	ledger    cash.CoinMover
}

func newTransferBase(auth x.Authenticator, ledger cash.CoinMover) transferBase {
	return transferBase{
		auth:      auth,
		roster:    NewRosterBucket(),
		transfers: NewTransferBucket(),
		seq:       newTransferSeq(),
		ledger:    ledger,
	}
}

func (b transferBase) submitter(ctx vault.Context) (vault.Address, error) {
	signer := x.MainSigner(ctx, b.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return signer.Address(), nil
}

func (b transferBase) slotOpen(db vault.ReadOnlyKVStore) error {
	id, key, err := b.seq.Latest(db)
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	var transfer PendingTransfer
	switch err := b.transfers.One(db, key, &transfer); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return err
	}
	if !transfer.Executed {
		return errors.Wrapf(ErrPendingExists, "transfer %d awaits resolution", id)
	}
	return nil
}

func (b transferBase) pending(db vault.ReadOnlyKVStore, wantID uint64) (*PendingTransfer, []byte, error) {
	id, key, err := b.seq.Latest(db)
	if err != nil {
		return nil, nil, err
	}
	if id == 0 {
		return nil, nil, errors.Wrap(ErrNoPending, "no transfer initiated")
	}
	var transfer PendingTransfer
	if err := b.transfers.One(db, key, &transfer); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, nil, errors.Wrap(ErrNoPending, "transfer slot is empty")
		}
		return nil, nil, err
	}
	if uint64(id) != wantID {
		return nil, nil, errors.Wrapf(ErrNoPending, "transfer %d is not pending", wantID)
	}
	if transfer.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transfer %d", wantID)
	}
	return &transfer, key, nil
}

// checkFunded returns nil if the treasury can cover the given amount.
func (b transferBase) checkFunded(db vault.KVStore, amount coin.Coin) error {
	balance, err := b.ledger.Balance(db, TreasuryAddress())
	if err != nil {
		if errors.ErrEmpty.Is(err) {
			return errors.Wrap(cash.ErrInsufficientFunds, "treasury is empty")
		}
		return err
	}
	if !balance.Contains(amount) {
		return errors.Wrapf(cash.ErrInsufficientFunds, "treasury cannot cover %v", amount)
	}
	return nil
}

// InitiateTransferHandler opens the asset transfer slot.
type InitiateTransferHandler struct {
	transferBase
}

var _ vault.Handler = InitiateTransferHandler{}

func (h InitiateTransferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg InitiateTransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: initiateCost}, nil
}

func (h InitiateTransferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg InitiateTransferMsg
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
	if msg.Recipient.Equals(TreasuryAddress()) {
		return nil, errors.Wrap(errors.ErrInput, "cannot transfer to the vault itself")
	}
	if err := h.checkFunded(db, *msg.Amount); err != nil {
		return nil, err
	}
	blockNow, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	transfer := PendingTransfer{
		Initiator: caller,
		Recipient: msg.Recipient,
		Amount:    msg.Amount,
		Payload:   msg.Payload,
		CreatedAt: vault.AsUnixTime(blockNow),
	}
	key, err := h.seq.NextVal(db)
	if err != nil {
		return nil, err
	}
	if err := h.transfers.Put(db, key, &transfer); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Data: key,
		Tags: []vault.KVPair{
			vault.Pair("custody:transfer", strconv.FormatInt(orm.DecodeSequence(key), 10)),
		},
	}
	return &res, nil
}

// ApproveTransferHandler records an approval on the pending transfer.
type ApproveTransferHandler struct {
	transferBase
}

var _ vault.Handler = ApproveTransferHandler{}

func (h ApproveTransferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ApproveTransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: approveCost}, nil
}

func (h ApproveTransferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ApproveTransferMsg
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
	transfer, key, err := h.pending(db, msg.TransferId)
	if err != nil {
		return nil, err
	}
	approvals, ok := addApproval(transfer.Approvals, caller)
	if !ok {
		return nil, errors.Wrapf(ErrAlreadyApproved, "transfer %d", msg.TransferId)
	}
	transfer.Approvals = approvals
	if err := h.transfers.Put(db, key, transfer); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// RevokeTransferApprovalHandler withdraws an approval from the pending
// transfer.
type RevokeTransferApprovalHandler struct {
	transferBase
}

var _ vault.Handler = RevokeTransferApprovalHandler{}

func (h RevokeTransferApprovalHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg RevokeTransferApprovalMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: approveCost}, nil
}

func (h RevokeTransferApprovalHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg RevokeTransferApprovalMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.submitter(ctx)
	if err != nil {
		return nil, err
	}
	transfer, key, err := h.pending(db, msg.TransferId)
	if err != nil {
		return nil, err
	}
	approvals, ok := removeApproval(transfer.Approvals, caller)
	if !ok {
		return nil, errors.Wrapf(ErrNotApproved, "transfer %d", msg.TransferId)
	}
	transfer.Approvals = approvals
	if err := h.transfers.Put(db, key, transfer); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// ExecuteTransferHandler finalizes the pending transfer and moves the
// funds out of the treasury.
type ExecuteTransferHandler struct {
	transferBase
}

var _ vault.Handler = ExecuteTransferHandler{}

func (h ExecuteTransferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ExecuteTransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: executeCost}, nil
}

func (h ExecuteTransferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ExecuteTransferMsg
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
	transfer, key, err := h.pending(db, msg.TransferId)
	if err != nil {
		return nil, err
	}
	if !vault.IsExpired(ctx, transfer.CreatedAt.Add(conf.ActionTimelock.Duration())) {
		return nil, errors.Wrapf(ErrTimelock, "transfer %d is locked until %s",
			msg.TransferId, transfer.CreatedAt.Add(conf.ActionTimelock.Duration()))
	}
	overridden, err := checkResolution(roster, conf, caller, transfer.Approvals)
	if err != nil {
		return nil, err
	}

	// Settle the request state before moving any funds.
	transfer.Executed = true
	transfer.WasOverridden = overridden
	if err := h.transfers.Put(db, key, transfer); err != nil {
		return nil, err
	}
	if err := h.ledger.MoveCoins(db, TreasuryAddress(), transfer.Recipient, *transfer.Amount); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("custody:transfer", strconv.FormatUint(msg.TransferId, 10)),
		},
	}
	return &res, nil
}

// DeleteTransferHandler discards the pending transfer and returns its
// id to the sequence.
type DeleteTransferHandler struct {
	transferBase
}

var _ vault.Handler = DeleteTransferHandler{}

func (h DeleteTransferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg DeleteTransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.submitter(ctx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: deleteCost}, nil
}

func (h DeleteTransferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg DeleteTransferMsg
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
		return nil, errors.Wrap(ErrNoPending, "no transfer initiated")
	}
	var transfer PendingTransfer
	if err := h.transfers.One(db, key, &transfer); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(ErrNoPending, "transfer slot is empty")
		}
		return nil, err
	}
	if transfer.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "transfer %d", id)
	}
	if err := h.transfers.Delete(db, key); err != nil {
		return nil, err
	}
	// The released id is produced again by the next initiation.
	if err := h.seq.Release(db); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}
