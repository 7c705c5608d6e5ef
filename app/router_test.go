package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &vaulttest.Msg{RoutePath: "good/path"}
	bad := &vaulttest.Msg{RoutePath: "bad/path"}
	missing := &vaulttest.Msg{RoutePath: "missing/path"}

	counter := &vaulttest.Handler{}
	r.Handle(good, counter)
	r.Handle(bad, &vaulttest.Handler{
		CheckErr:   errors.ErrState,
		DeliverErr: errors.ErrState,
	})

	// Invalid registrations must panic.
	assert.Panics(t, func() { r.Handle(good, counter) })
	assert.Panics(t, func() { r.Handle(&vaulttest.Msg{RoutePath: "l:7"}, counter) })

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &vaulttest.Tx{Msg: good})
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: good})
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	// A registered handler error must pass through untouched.
	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: bad})
	assert.True(t, errors.ErrState.Is(err))

	// An unknown path is answered with a not found error.
	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: missing})
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, db, &vaulttest.Tx{Msg: missing})
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}

func TestRouterRequiresMessage(t *testing.T) {
	r := NewRouter()
	tx := &vaulttest.Tx{Err: errors.ErrInput}

	_, err := r.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrInput.Is(err))
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrInput.Is(err))
}
