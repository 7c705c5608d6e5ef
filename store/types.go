package store

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = vault.ReadOnlyKVStore
type KVStore = vault.KVStore
type Iterator = vault.Iterator
type CacheableKVStore = vault.CacheableKVStore
type KVCacheWrap = vault.KVCacheWrap
type Batch = vault.Batch
type Model = vault.Model

// SetDeleter is a subset of KVStore that a Batch flushes its operations to.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}
