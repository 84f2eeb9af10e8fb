package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/vesting/errors"
)

// ascendBtree returns all btree items (both set and deleted) within given
// range in ascending key order.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	collect := func(item btree.Item) bool {
		items = append(items, item.(keyer))
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// mergeIterator combines cached writes with the results of the parent
// store, taking into consideration overwrites and deletes.
type mergeIterator struct {
	ours []keyer

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentDone bool
	parentErr  error
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(ours []keyer, parent Iterator) *mergeIterator {
	it := &mergeIterator{
		ours:   ours,
		parent: parent,
	}
	it.advanceParent()
	return it
}

func (it *mergeIterator) advanceParent() {
	if it.parentDone {
		return
	}
	k, v, err := it.parent.Next()
	if err != nil {
		it.parentDone = true
		it.parentKey, it.parentVal = nil, nil
		if !errors.ErrIteratorDone.Is(err) {
			it.parentErr = err
		}
		return
	}
	it.parentKey, it.parentVal = k, v
}

// Next implements Iterator.
func (it *mergeIterator) Next() (key, value []byte, err error) {
	for {
		if it.parentErr != nil {
			return nil, nil, it.parentErr
		}

		switch {
		case len(it.ours) == 0 && it.parentDone:
			return nil, nil, errors.ErrIteratorDone
		case len(it.ours) == 0:
			k, v := it.parentKey, it.parentVal
			it.advanceParent()
			return k, v, nil
		}

		item := it.ours[0]
		cmp := -1
		if !it.parentDone {
			cmp = bytes.Compare(item.Key(), it.parentKey)
		}

		if cmp > 0 {
			k, v := it.parentKey, it.parentVal
			it.advanceParent()
			return k, v, nil
		}

		// Our write is first or shadows the parent value.
		it.ours = it.ours[1:]
		if cmp == 0 {
			it.advanceParent()
		}
		if set, ok := item.(setItem); ok {
			return set.Key(), set.value, nil
		}
		// Deleted entries are skipped.
	}
}

// Release implements Iterator.
func (it *mergeIterator) Release() {
	it.parent.Release()
	it.ours = nil
}
