package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("custody", "id")

	for i := int64(1); i <= 5; i++ {
		val, err := seq.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	latest, raw, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest)
	assert.Equal(t, int64(5), DecodeSequence(raw))
}

func TestSequenceValAndIntMatch(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("custody", "id")

	bz, err := seq.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), DecodeSequence(bz))

	val, err := seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)
}

func TestSequenceIndependence(t *testing.T) {
	db := store.MemStore()
	actions := NewSequence("actions", "id")
	transfers := NewSequence("transfers", "id")

	_, err := actions.NextInt(db)
	require.NoError(t, err)
	_, err = actions.NextInt(db)
	require.NoError(t, err)

	val, err := transfers.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestSequenceRelease(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("custody", "id")

	// Cannot release a sequence that was never incremented.
	err := seq.Release(db)
	assert.True(t, errors.ErrState.Is(err))

	_, err = seq.NextInt(db)
	require.NoError(t, err)
	val, err := seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)

	// Releasing hands out the same value again.
	require.NoError(t, seq.Release(db))
	val, err = seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)
}
