package store

import (
	"testing"

	"github.com/iov-one/vesting/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreSuite(t *testing.T) {
	suite := NewTestSuite(MemStore)
	t.Run("GetSet", suite.GetSet)
	t.Run("CacheConflicts", suite.CacheConflicts)
	t.Run("IteratorWithConflicts", suite.IteratorWithConflicts)
}

func TestBTreeCacheableOverBatchLog(t *testing.T) {
	base := MemStore()
	batch := NewNonAtomicBatch(base)
	cache := NewBTreeCacheWrap(base, batch, nil)

	require.NoError(t, base.Set([]byte("b"), []byte("old")))
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	require.NoError(t, cache.Delete([]byte("b")))

	got, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, got, "nothing is written before the cache is")

	require.NoError(t, cache.Write())

	ok, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
}

func TestBTreeCacheNilValues(t *testing.T) {
	db := MemStore()
	assert.True(t, errors.ErrDatabase.Is(db.Set(nil, []byte("x"))))
	assert.True(t, errors.ErrDatabase.Is(db.Delete(nil)))

	require.NoError(t, db.Set([]byte("k"), nil))
	got, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestPrefixEnd(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		want   []byte
	}{
		"simple":      {prefix: []byte("abc"), want: []byte("abd")},
		"carry":       {prefix: []byte{'a', 0xFF}, want: []byte{'b'}},
		"all max":     {prefix: []byte{0xFF, 0xFF}, want: nil},
		"empty":       {prefix: nil, want: nil},
		"with colon":  {prefix: []byte("deposits:"), want: []byte("deposits;")},
		"single byte": {prefix: []byte{0x00}, want: []byte{0x01}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, PrefixEnd(tc.prefix))
		})
	}
}

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]Model{{Key: []byte("a"), Value: []byte("1")}})
	k, v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), k)
	assert.Equal(t, []byte("1"), v)

	_, _, err = it.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
	it.Release()
}
