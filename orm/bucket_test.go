package orm

import (
	"testing"

	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// note is a minimal persistent value used to exercise the bucket.
type note struct {
	text string
}

func (n *note) Marshal() ([]byte, error) {
	return []byte(n.text), nil
}

func (n *note) Unmarshal(raw []byte) error {
	n.text = string(raw)
	return nil
}

func (n *note) Validate() error {
	if n.text == "" {
		return errors.Wrap(errors.ErrEmpty, "text")
	}
	return nil
}

func TestBucketNames(t *testing.T) {
	assert.Panics(t, func() { NewBucket("no") })
	assert.Panics(t, func() { NewBucket("Upper") })
	assert.Panics(t, func() { NewBucket("waytoolongname") })
	assert.Equal(t, "deposits", NewBucket("deposits").Name())
}

func TestBucketDBKey(t *testing.T) {
	b := NewBucket("abc")
	k1 := b.DBKey([]byte("one"))
	k2 := b.DBKey([]byte("two"))
	assert.Equal(t, []byte("abc:one"), k1)
	assert.Equal(t, []byte("abc:two"), k2)
}

func TestBucketSaveLoad(t *testing.T) {
	db := store.MemStore()
	notes := NewBucket("notes")
	other := NewBucket("other")

	require.NoError(t, notes.Save(db, []byte("alice"), &note{text: "hello"}))
	require.NoError(t, other.Save(db, []byte("alice"), &note{text: "other"}))

	var got note
	require.NoError(t, notes.Load(db, []byte("alice"), &got))
	assert.Equal(t, "hello", got.text)

	err := notes.Load(db, []byte("bob"), &got)
	assert.True(t, errors.ErrNotFound.Is(err))

	ok, err := notes.Has(db, []byte("alice"))
	require.NoError(t, err)
	assert.True(t, ok)

	err = notes.Save(db, []byte("carol"), &note{})
	assert.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, notes.Delete(db, []byte("alice")))
	ok, err = notes.Has(db, []byte("alice"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, other.Load(db, []byte("alice"), &got))
	assert.Equal(t, "other", got.text)
}

func TestBucketKeys(t *testing.T) {
	db := store.MemStore()
	notes := NewBucket("notes")
	neighbour := NewBucket("notes_x")

	for _, k := range []string{"carol", "alice", "bob"} {
		require.NoError(t, notes.Save(db, []byte(k), &note{text: k}))
	}
	require.NoError(t, neighbour.Save(db, []byte("dave"), &note{text: "dave"}))

	keys, err := notes.Keys(db)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("alice"), []byte("bob"), []byte("carol")}, keys)
}
