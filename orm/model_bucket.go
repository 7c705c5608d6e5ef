/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index and easy queries for one and iteration.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	vault.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operate on Models.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in
	// the database.
	// If given model type cannot be used to contain stored entity,
	// ErrType is returned.
	One(db vault.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database. The model is validated
	// before it is written.
	Put(db vault.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db vault.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key exists, or
	// ErrNotFound otherwise.
	Has(db vault.ReadOnlyKVStore, key []byte) error

	// Register registers this bucket for the given query name.
	Register(name string, r vault.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance scoped to its own prefixed
// subspace of the database. All entities must be of the same type as the
// provided model prototype.
func NewModelBucket(name string, model Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  reflect.TypeOf(model),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	// model is the type of the model stored. It must be a pointer kind.
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b *modelBucket) dbKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

func (b *modelBucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}

	if t := reflect.TypeOf(dest); t != b.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", b.model, dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (b *modelBucket) Put(db vault.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != b.model {
		return errors.Wrapf(errors.ErrType, "%s cannot store %T", b.model, m)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(b.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (b *modelBucket) Delete(db vault.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	return db.Delete(b.dbKey(key))
}

func (b *modelBucket) Has(db vault.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		// nil key is a special case that would cause the store API to panic
		return errors.ErrNotFound
	}
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (b *modelBucket) Register(name string, r vault.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter.
func (b *modelBucket) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	switch mod {
	case vault.KeyQueryMod:
		key := b.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []vault.Model{{Key: key, Value: value}}, nil
	case vault.PrefixQueryMod:
		return queryPrefix(db, b.dbKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %q", mod)
	}
}

// queryPrefix returns all models with given key prefix.
func queryPrefix(db vault.ReadOnlyKVStore, prefix []byte) ([]vault.Model, error) {
	it, err := db.Iterator(prefix, prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []vault.Model
	for {
		key, value, err := it.Next()
		switch {
		case err == nil:
			res = append(res, vault.Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}

// prefixRange returns the smallest key that is bigger than every key with
// given prefix. A nil response means unbounded.
func prefixRange(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
