package vaulttest

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

// Handler implements a vault.Handler double that counts the calls and
// returns declared results.
type Handler struct {
	checkCall   int
	CheckResult vault.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult vault.DeliverResult
	DeliverErr    error
}

var _ vault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
