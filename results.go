package vault

// KVPair is a single key/value tag attached to a delivery result. Tags are
// collected by the hosting environment and exposed for external consumption
// (indexing, audit trail, notifications).
type KVPair struct {
	Key   []byte
	Value []byte
}

// Pair is a convenience constructor for a string tag.
func Pair(key, value string) KVPair {
	return KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

// CheckResult captures any non-error metadata from validating a transaction.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64

	// GasPayment is the total fees for this tx
	GasPayment int64
}

// DeliverResult captures any non-error metadata from executing a transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// Tags are events that happened during the delivery, exposed to the
	// observability sink of the hosting environment.
	Tags []KVPair

	// GasUsed is the units of work performed
	GasUsed int64
}
