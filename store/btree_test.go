package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

func TestMemStoreBasic(t *testing.T) {
	db := MemStore()

	k, v := []byte("french"), []byte("fry")

	has, err := db.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, db.Set(k, v))

	has, err = db.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	got, err := db.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	require.NoError(t, db.Delete(k))
	got, err = db.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))

	// Discarded writes must not leak to the backing store.
	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	cache.Discard()

	got, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Nil(t, got)

	// Written cache must be visible in the backing store.
	cache = db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Write())

	got, err = db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, got)
	got, err = db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestCacheWrapReadThrough(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))

	cache := db.CacheWrap()
	got, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	// Delete in cache must hide the backing value.
	require.NoError(t, cache.Delete([]byte("a")))
	got, err = cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, got)
	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestIteratorMergesCacheAndParent(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("c"), []byte("3")))
	require.NoError(t, db.Set([]byte("d"), []byte("4")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))    // new key
	require.NoError(t, cache.Set([]byte("c"), []byte("33")))   // overlay
	require.NoError(t, cache.Delete([]byte("d")))              // hide

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer it.Release()

	var keys, values []string
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
		values = append(values, string(v))
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"1", "2", "33"}, values)
}

func TestReverseIterator(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("b"), []byte("2")))
	require.NoError(t, db.Set([]byte("c"), []byte("3")))

	it, err := db.ReverseIterator(nil, nil)
	require.NoError(t, err)
	defer it.Release()

	var keys []string
	for {
		k, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}

func TestIteratorRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	// End is exclusive.
	it, err := db.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	defer it.Release()

	var keys []string
	for {
		k, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"b", "c"}, keys)
}
