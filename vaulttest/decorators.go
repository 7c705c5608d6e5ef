package vaulttest

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

// Decorator is a vault.Decorator double that counts the calls and can
// inject an error instead of passing the request further down the
// stack.
type Decorator struct {
	checkCall   int
	CheckErr    error
	deliverCall int
	DeliverErr  error
}

var _ vault.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}
