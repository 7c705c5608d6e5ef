package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
)

// counter is a test model with a trivial binary representation.
type counter struct {
	Count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.Count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func TestModelBucketPutAndOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 11}))

	var c counter
	require.NoError(t, b.One(db, []byte("a"), &c))
	assert.Equal(t, int64(11), c.Count)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	var c counter
	err := b.One(db, []byte("unknown"), &c)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPutInvalidModel(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("a"), &counter{Count: -1})
	assert.True(t, errors.ErrModel.Is(err))
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	require.NoError(t, b.Delete(db, []byte("a")))

	err := b.Delete(db, []byte("a"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketHas(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	assert.NoError(t, b.Has(db, []byte("a")))
	err := b.Has(db, []byte("b"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketsAreIsolated(t *testing.T) {
	db := store.MemStore()
	first := NewModelBucket("first", &counter{})
	second := NewModelBucket("second", &counter{})

	require.NoError(t, first.Put(db, []byte("a"), &counter{Count: 1}))
	err := second.Has(db, []byte("a"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 1}))
	require.NoError(t, b.Put(db, []byte("b"), &counter{Count: 2}))

	qr := vault.NewQueryRouter()
	b.Register("counters", qr)

	h := qr.Handler("/counters")
	models, err := h.Query(db, vault.KeyQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, models, 1)

	models, err = h.Query(db, vault.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, models, 2)
}
