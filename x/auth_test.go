package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

func TestCtxAuth(t *testing.T) {
	a := vault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := vault.NewCondition("sigs", "ed25519", []byte("bob"))
	c := vault.NewCondition("sigs", "ed25519", []byte("carl"))

	auth := CtxAuth{Key: "auth"}
	ctx := auth.SetConditions(context.Background(), a, b)

	assert.Equal(t, []vault.Condition{a, b}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))

	assert.Equal(t, a, MainSigner(ctx, auth))
}

func TestCtxAuthEmptyContext(t *testing.T) {
	auth := CtxAuth{Key: "auth"}
	ctx := context.Background()

	assert.Nil(t, auth.GetConditions(ctx))
	assert.Nil(t, MainSigner(ctx, auth))
	assert.False(t, auth.HasAddress(ctx, vault.NewCondition("sigs", "ed25519", []byte("alice")).Address()))
}

func TestChainAuth(t *testing.T) {
	a := vault.NewCondition("sigs", "ed25519", []byte("alice"))
	b := vault.NewCondition("sigs", "ed25519", []byte("bob"))

	first := CtxAuth{Key: "first"}
	second := CtxAuth{Key: "second"}
	auth := ChainAuth(first, second)

	ctx := first.SetConditions(context.Background(), a)
	ctx = second.SetConditions(ctx, b)

	assert.Equal(t, []vault.Condition{a, b}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.True(t, HasAllAddresses(ctx, auth, []vault.Address{a.Address(), b.Address()}))
	assert.True(t, HasNConditions(ctx, auth, []vault.Condition{a, b}, 2))
	assert.False(t, HasNConditions(ctx, auth, []vault.Condition{a}, 2))
}
