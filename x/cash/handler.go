package cash

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vault.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&DepositMsg{}, NewDepositHandler(auth, control))
	r.Handle(&SetAllowanceMsg{}, NewSetAllowanceHandler(auth, control))
}

// RegisterQuery will register the wallet bucket as "/wallets"
func RegisterQuery(qr vault.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
}

// DepositHandler will handle funding an account
type DepositHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ vault.Handler = DepositHandler{}

// NewDepositHandler creates a handler for DepositMsg
func NewDepositHandler(auth x.Authenticator, control Controller) DepositHandler {
	return DepositHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h DepositHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg DepositMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver moves the requested funds into the destination account if
// all preconditions are met
func (h DepositHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg DepositMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	submitter := x.MainSigner(ctx, h.auth)
	if submitter == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	if err := h.control.Deposit(db, submitter.Address(), msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("cash:deposit", msg.Destination.String()),
		},
	}
	return &res, nil
}

// SetAllowanceHandler lets an account owner authorize a grantee to pull
// funds from their account.
type SetAllowanceHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ vault.Handler = SetAllowanceHandler{}

// NewSetAllowanceHandler creates a handler for SetAllowanceMsg
func NewSetAllowanceHandler(auth x.Authenticator, control Controller) SetAllowanceHandler {
	return SetAllowanceHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SetAllowanceHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg SetAllowanceMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	return &vault.CheckResult{GasAllocated: setAllowanceCost}, nil
}

// Deliver replaces the allowance the submitter grants to the grantee
func (h SetAllowanceHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg SetAllowanceMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	source := x.MainSigner(ctx, h.auth)
	if source == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no submitter")
	}
	if err := h.control.SetAllowance(db, source.Address(), msg.Grantee, *msg.Amount); err != nil {
		return nil, err
	}
	res := vault.DeliverResult{
		Tags: []vault.KVPair{
			vault.Pair("cash:allowance", msg.Grantee.String()),
		},
	}
	return &res, nil
}
