/*
Package queue implements a persistent, time ordered message queue on top of a
KVStore.

Messages are stored in the same store, and thus in the same atomic unit, as
the rest of the state written by an operation. They are consumed later by a
worker that pops every message whose time has come.
*/
package queue

import (
	"encoding/binary"
	"fmt"
	"regexp"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store"
)

var isQueueName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// Queue is a named queue. Different names never share messages.
type Queue struct {
	prefix []byte
}

// New returns a queue with given name.
func New(name string) Queue {
	if !isQueueName(name) {
		panic(fmt.Sprintf("illegal queue name: %q", name))
	}
	return Queue{prefix: []byte("_queue:" + name + ":")}
}

// Put queues the message in the database to be processed at given time.
// Due to the implementation details, message is guaranteed to be processed
// after given time, but not exactly at given time.
func (q Queue) Put(db vesting.KVStore, runAt vesting.Timestamp, msg vesting.Marshaller) error {
	raw, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal message")
	}

	for {
		key := q.key(runAt)
		if ok, err := db.Has(key); err != nil {
			return errors.Wrap(err, "cannot check key existance")
		} else if ok {
			// If the key is already in use, instead of storing a
			// list of messages under each key, which is a very
			// unlikely to happen, increase the execution time by
			// the smallest duration.
			runAt++
			continue
		}

		if err := db.Set(key, raw); err != nil {
			return errors.Wrap(err, "cannot update queue")
		}
		return nil
	}
}

// Pop removes from the queue a single message that reached its execution
// time and loads it into dst. It returns ErrEmpty if there is no message
// suitable for processing.
func (q Queue) Pop(db vesting.KVStore, now vesting.Timestamp, dst vesting.Persistent) error {
	// Inclusive of now.
	until := q.key(now + 1)
	if now == ^vesting.Timestamp(0) {
		until = store.PrefixEnd(q.prefix)
	}
	it, err := db.Iterator(q.prefix, until)
	if err != nil {
		return errors.Wrap(err, "iterator")
	}
	key, value, err := it.Next()
	it.Release()
	switch {
	case errors.ErrIteratorDone.Is(err):
		return errors.Wrap(errors.ErrEmpty, "no message ready")
	case err != nil:
		return errors.Wrap(err, "iterate queue")
	}

	if err := dst.Unmarshal(value); err != nil {
		return errors.Wrap(err, "unmarshal message")
	}
	if err := db.Delete(key); err != nil {
		return errors.Wrap(err, "cannot delete message")
	}
	return nil
}

// Len returns the number of queued messages, ready or not.
func (q Queue) Len(db vesting.ReadOnlyKVStore) (int, error) {
	it, err := db.Iterator(q.prefix, store.PrefixEnd(q.prefix))
	if err != nil {
		return 0, errors.Wrap(err, "iterator")
	}
	models, err := store.ReadAll(it)
	if err != nil {
		return 0, err
	}
	return len(models), nil
}

func (q Queue) key(t vesting.Timestamp) []byte {
	l := len(q.prefix)
	key := make([]byte, l+8)
	copy(key, q.prefix)
	binary.BigEndian.PutUint64(key[l:], uint64(t))
	return key
}
