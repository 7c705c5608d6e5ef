package vault

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Errors on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Errors on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is exclusive.
	// Start must be greater than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator exists over it.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// KVStore is a simple interface to get/set data
//
// For simplicity, we require all backing stores to implement this interface.
// They *may* implement other methods as well, but at least these are
// required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Errors on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Errors on nil key.
	Delete(key []byte) error
}

// Iterator allows us to access a set of items within a range of keys. These
// may all be preloaded, or loaded on demand.
//
//   Usage:
//
//   var itr Iterator = ...
//   defer itr.Release()
//
//   for {
//     k, v, err := itr.Next()
//     if err != nil {
//       break
//     }
//     // ...
//   }
type Iterator interface {
	// Next moves the iterator to the next sequential key in the database,
	// as defined by order of iteration. It returns key, value and error.
	// Once the iterator is exhausted, every consecutive call returns
	// errors.ErrIteratorDone.
	Next() (key, value []byte, err error)

	// Release releases the Iterator, allowing it to free resources.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on cache-wraps
// makes no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data that we
// can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}

// Batch can write multiple operations to an underlying store in one atomic
// step. All writes go through the batch.
type Batch interface {
	Set(key, value []byte) error
	Delete(key []byte) error
	Write() error
}
