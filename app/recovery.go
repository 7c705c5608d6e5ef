package app

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ vault.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Checker) (_ *vault.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Deliverer) (_ *vault.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
