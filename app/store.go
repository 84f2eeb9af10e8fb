package app

import (
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining the cache
// that collects changes of the current call, and returning useful state
// info.
type CommitStore struct {
	committed vesting.CommitKVStore
	deliver   vesting.KVCacheWrap
}

// NewCommitStore loads the latest version of the given store and sets up the
// deliver cache.
func NewCommitStore(store vesting.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current version and hash.
func (cs *CommitStore) CommitInfo() (vesting.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it to disk.
// It then creates a new deliver cache.
func (cs *CommitStore) Commit() (vesting.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vesting.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}
	cs.deliver = cs.committed.CacheWrap()
	return res, nil
}

// Rollback drops all changes that were not committed yet.
func (cs *CommitStore) Rollback() {
	cs.deliver.Discard()
	cs.deliver = cs.committed.CacheWrap()
}

// DeliverStore returns the store that collects changes until the next
// commit.
func (cs *CommitStore) DeliverStore() vesting.CacheableKVStore {
	return cs.deliver
}
