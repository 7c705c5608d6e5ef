package orm

import (
	"encoding/binary"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as 8 bytes.
func (s *Sequence) NextVal(db vault.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db, 1)
	return bz, err
}

// NextInt increments the sequence and returns its state as int.
func (s *Sequence) NextInt(db vault.KVStore) (int64, error) {
	val, _, err := s.increment(db, 1)
	return val, err
}

// Latest returns the recently returned value of the sequence. This method
// does not modify the sequence state. Use NextVal or NextInt to acquire a
// sequence value that was not given to anyone else.
func (s *Sequence) Latest(db vault.ReadOnlyKVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	return val, raw, nil
}

// Release returns the most recently acquired value back to the sequence, so
// that the next NextVal call produces it again. Only the latest value can be
// released and only while the sequence state has not moved on. It is the
// caller's responsibility to ensure no data is stored under the released key.
func (s *Sequence) Release(db vault.KVStore) error {
	val, _, err := s.Latest(db)
	if err != nil {
		return err
	}
	if val == 0 {
		return errors.Wrap(errors.ErrState, "sequence not incremented")
	}
	_, _, err = s.increment(db, -1)
	return err
}

func (s *Sequence) increment(db vault.KVStore, inc int64) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	val += inc
	raw = EncodeSequence(val)
	err = db.Set(s.id, raw)
	return val, raw, err
}

// DecodeSequence converts the binary sequence state into an integer.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an integer into the binary sequence state.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
