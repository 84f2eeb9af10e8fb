package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreConstructor returns a fresh, empty store for each test.
type TestStoreConstructor func() CacheableKVStore

// TestSuite runs the same set of checks against any CacheableKVStore
// implementation.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// NewTestSuite creates a suite that uses given constructor to build the
// base store of each test.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet checks the basic read and write paths through a cache wrap.
func (s *TestSuite) GetSet(t *testing.T) {
	base := s.makeBase()

	k, v := []byte("alice.testnet"), []byte("deposits")
	s.AssertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	k2, v2 := []byte("bob.testnet"), []byte("more deposits")
	require.NoError(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	require.NoError(t, cache.Write())
	s.AssertGetHas(t, base, k2, v2, true)

	discarded := base.CacheWrap()
	require.NoError(t, discarded.Set([]byte("carol"), []byte("gone")))
	require.NoError(t, discarded.Delete(k))
	discarded.Discard()
	s.AssertGetHas(t, base, []byte("carol"), nil, false)
	s.AssertGetHas(t, base, k, v, true)

	deleting := base.CacheWrap()
	require.NoError(t, deleting.Delete(k))
	s.AssertGetHas(t, deleting, k, nil, false)
	require.NoError(t, deleting.Write())
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
}

// CacheConflicts checks that nested cache wraps shadow the parent and that
// writes propagate one level at a time.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	base := s.makeBase()
	k := []byte("deposits:alice")
	require.NoError(t, base.Set(k, []byte("v1")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set(k, []byte("v2")))
	inner := outer.CacheWrap()
	require.NoError(t, inner.Set(k, []byte("v3")))

	s.AssertGetHas(t, base, k, []byte("v1"), true)
	s.AssertGetHas(t, outer, k, []byte("v2"), true)
	s.AssertGetHas(t, inner, k, []byte("v3"), true)

	require.NoError(t, inner.Write())
	s.AssertGetHas(t, outer, k, []byte("v3"), true)
	s.AssertGetHas(t, base, k, []byte("v1"), true)

	require.NoError(t, outer.Write())
	s.AssertGetHas(t, base, k, []byte("v3"), true)
}

// IteratorWithConflicts checks that iteration over a cache wrap merges the
// cached writes and deletes with the parent content.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	base := s.makeBase()
	for i := 0; i < 6; i++ {
		require.NoError(t, base.Set(key(i), []byte(fmt.Sprintf("base-%d", i))))
	}

	cache := base.CacheWrap()
	require.NoError(t, cache.Delete(key(1)))
	require.NoError(t, cache.Set(key(2), []byte("cache-2")))
	require.NoError(t, cache.Set(key(7), []byte("cache-7")))
	require.NoError(t, cache.Delete(key(5)))
	require.NoError(t, cache.Delete(key(9)))

	cases := map[string]struct {
		start, end []byte
		want       []Model
	}{
		"everything": {
			want: []Model{
				{key(0), []byte("base-0")},
				{key(2), []byte("cache-2")},
				{key(3), []byte("base-3")},
				{key(4), []byte("base-4")},
				{key(7), []byte("cache-7")},
			},
		},
		"bounded": {
			start: key(1),
			end:   key(4),
			want: []Model{
				{key(2), []byte("cache-2")},
				{key(3), []byte("base-3")},
			},
		},
		"open end": {
			start: key(4),
			want: []Model{
				{key(4), []byte("base-4")},
				{key(7), []byte("cache-7")},
			},
		},
		"open start": {
			end: key(2),
			want: []Model{
				{key(0), []byte("base-0")},
			},
		},
		"empty range": {
			start: key(5),
			end:   key(7),
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			it, err := cache.Iterator(tc.start, tc.end)
			require.NoError(t, err)
			got, err := ReadAll(it)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// AssertGetHas makes sure that Get and Has agree with the expected content.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	if val == nil {
		assert.Nil(t, got)
	} else {
		assert.Equal(t, val, got)
	}
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func key(i int) []byte {
	return []byte(fmt.Sprintf("key-%02d", i))
}
