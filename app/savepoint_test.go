package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
)

// writeHandler writes the key, value pair and returns the declared
// error (may be nil).
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ vault.Handler = writeHandler{}

func (h writeHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	key, value := []byte("mykey"), []byte("myvalue")
	ctx := context.Background()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/good"}}

	cases := map[string]struct {
		save      Savepoint
		handler   vault.Handler
		wantErr   *errors.Error
		wantWrite bool
	}{
		"successful deliver is written through": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writeHandler{key: key, value: value},
			wantWrite: true,
		},
		"failed deliver is rolled back": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: key, value: value, err: errors.ErrState},
			wantErr: errors.ErrState,
		},
		"inactive savepoint writes even on failure": {
			save:      NewSavepoint(),
			handler:   writeHandler{key: key, value: value, err: errors.ErrState},
			wantErr:   errors.ErrState,
			wantWrite: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			stack := ChainDecorators(tc.save).WithHandler(tc.handler)

			_, err := stack.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}

			got, err := db.Get(key)
			require.NoError(t, err)
			if tc.wantWrite {
				assert.Equal(t, value, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestSavepointOnCheck(t *testing.T) {
	key, value := []byte("mykey"), []byte("myvalue")
	ctx := context.Background()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/good"}}

	db := store.MemStore()
	stack := ChainDecorators(
		NewSavepoint().OnCheck(),
	).WithHandler(writeHandler{key: key, value: value, err: errors.ErrState})

	_, err := stack.Check(ctx, db, tx)
	assert.True(t, errors.ErrState.Is(err))

	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
