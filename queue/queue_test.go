package queue

import (
	"testing"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawMsg struct {
	data string
}

func (m *rawMsg) Marshal() ([]byte, error) { return []byte(m.data), nil }

func (m *rawMsg) Unmarshal(raw []byte) error {
	m.data = string(raw)
	return nil
}

func TestQueuePutPop(t *testing.T) {
	db := store.MemStore()
	q := New("payouts")

	require.NoError(t, q.Put(db, 30, &rawMsg{data: "third"}))
	require.NoError(t, q.Put(db, 10, &rawMsg{data: "first"}))
	// Same time slot is moved forward.
	require.NoError(t, q.Put(db, 10, &rawMsg{data: "second"}))

	n, err := q.Len(db)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var msg rawMsg
	err = q.Pop(db, 9, &msg)
	assert.True(t, errors.ErrEmpty.Is(err), "nothing is ready yet: %+v", err)

	require.NoError(t, q.Pop(db, 11, &msg))
	assert.Equal(t, "first", msg.data)
	require.NoError(t, q.Pop(db, 11, &msg))
	assert.Equal(t, "second", msg.data)
	err = q.Pop(db, 11, &msg)
	assert.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, q.Pop(db, ^vesting.Timestamp(0), &msg))
	assert.Equal(t, "third", msg.data)

	n, err = q.Len(db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestQueuesAreIsolated(t *testing.T) {
	db := store.MemStore()
	a := New("alpha")
	b := New("alpha_beta")

	require.NoError(t, a.Put(db, 1, &rawMsg{data: "a"}))
	require.NoError(t, b.Put(db, 1, &rawMsg{data: "b"}))

	var msg rawMsg
	require.NoError(t, b.Pop(db, 5, &msg))
	assert.Equal(t, "b", msg.data)
	assert.True(t, errors.ErrEmpty.Is(b.Pop(db, 5, &msg)))

	require.NoError(t, a.Pop(db, 5, &msg))
	assert.Equal(t, "a", msg.data)
}

func TestQueuePopIsAtomicWithCache(t *testing.T) {
	db := store.MemStore()
	q := New("payouts")
	require.NoError(t, q.Put(db, 1, &rawMsg{data: "only"}))

	cache := db.CacheWrap()
	var msg rawMsg
	require.NoError(t, q.Pop(cache, 1, &msg))
	cache.Discard()

	n, err := q.Len(db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueueName(t *testing.T) {
	assert.Panics(t, func() { New("X") })
}
