package store

import "github.com/iov-one/vesting"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = vesting.ReadOnlyKVStore
type SetDeleter = vesting.SetDeleter
type KVStore = vesting.KVStore
type Batch = vesting.Batch
type Iterator = vesting.Iterator
type CacheableKVStore = vesting.CacheableKVStore
type KVCacheWrap = vesting.KVCacheWrap
type CommitKVStore = vesting.CommitKVStore
type CommitID = vesting.CommitID

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}
