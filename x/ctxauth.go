package x

import (
	"context"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

type contextKey string

// CtxAuth is an Authenticator backed by conditions stored directly on
// the context. The process embedding the engine verifies the identity
// of the caller and attaches it with SetConditions before dispatching
// the transaction.
type CtxAuth struct {
	Key string
}

var _ Authenticator = CtxAuth{}

// SetConditions returns a context with the given conditions attached.
// Conditions already present under the same key are replaced.
func (a CtxAuth) SetConditions(ctx vault.Context, perms ...vault.Condition) vault.Context {
	return context.WithValue(ctx, contextKey(a.Key), perms)
}

// GetConditions returns conditions previously attached with SetConditions.
func (a CtxAuth) GetConditions(ctx vault.Context) []vault.Condition {
	val := ctx.Value(contextKey(a.Key))
	if val == nil {
		return nil
	}
	perms, ok := val.([]vault.Condition)
	if !ok {
		panic("conditions stored in context are of invalid type")
	}
	return perms
}

// HasAddress returns true if any of the attached conditions maps to the
// given address.
func (a CtxAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, perm := range a.GetConditions(ctx) {
		if perm.Address().Equals(addr) {
			return true
		}
	}
	return false
}
