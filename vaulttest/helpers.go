package vaulttest

import (
	"encoding/binary"
	"sync/atomic"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

var condCounter uint64

// NewCondition returns a new, unique condition. Conditions are created
// from an incrementing counter, so they are unique within a single test
// binary run.
func NewCondition() vault.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&condCounter, 1))
	return vault.NewCondition("test", "cond", data)
}

// NewAddress returns a new, unique address.
func NewAddress() vault.Address {
	return NewCondition().Address()
}

// SequenceID returns an encoded sequence counter value, as the orm
// Sequence would generate it.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
