/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Keys within a bucket are provided by the caller, the bucket only
  namespaces them so that two buckets never collide.
* Values are serialized using their own Marshal/Unmarshal methods.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB. All values stored in a bucket
// should be of the same type.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name this bucket was created with.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Load reads the value stored under given key into dst. ErrNotFound is
// returned if there is no such key.
func (b Bucket) Load(db vesting.ReadOnlyKVStore, key []byte, dst vesting.Persistent) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "get")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %q", b.name, key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %s %q", b.name, key)
	}
	return nil
}

// Has returns true if a value is stored under given key.
func (b Bucket) Has(db vesting.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Save serializes given value and stores it under given key. If the value
// implements Validate, it is validated first.
func (b Bucket) Save(db vesting.KVStore, key []byte, src vesting.Marshaller) error {
	if v, ok := src.(validater); ok {
		if err := v.Validate(); err != nil {
			return errors.Wrapf(err, "invalid %s %q", b.name, key)
		}
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s %q", b.name, key)
	}
	return db.Set(b.DBKey(key), raw)
}

// Delete removes the value stored under given key.
func (b Bucket) Delete(db vesting.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Keys returns all keys of this bucket, without the bucket prefix, in
// ascending order.
func (b Bucket) Keys(db vesting.ReadOnlyKVStore) ([][]byte, error) {
	it, err := db.Iterator(b.prefix, store.PrefixEnd(b.prefix))
	if err != nil {
		return nil, errors.Wrap(err, "iterator")
	}
	models, err := store.ReadAll(it)
	if err != nil {
		return nil, err
	}
	keys := make([][]byte, 0, len(models))
	for _, m := range models {
		keys = append(keys, m.Key[len(b.prefix):])
	}
	return keys, nil
}

type validater interface {
	Validate() error
}
