package tpcc

import (
	"github.com/google/btree"
)

// btreeDegree matches the degree tinykv's region tree uses for its
// own google/btree index (scheduler/server/core/region_tree.go).
const btreeDegree = 32

// orderedIndex is the ordered-map primitive required by spec.md §4.2:
// insert (fails on a duplicate key), find, lower_bound, erase, and
// find-last-less-than. One instance backs each of Stock, District,
// Customer, Order, OrderLine and NewOrder. V is normally a pointer
// type (*Stock, *District, ...) so the handle returned by Insert stays
// valid for the record's lifetime -- see SPEC_FULL.md §6 "Handle".
type orderedIndex[V any] struct {
	tree *btree.BTree
}

type indexEntry[V any] struct {
	key   int64
	value V
}

func (e indexEntry[V]) Less(than btree.Item) bool {
	return e.key < than.(indexEntry[V]).key
}

func newOrderedIndex[V any]() *orderedIndex[V] {
	return &orderedIndex[V]{tree: btree.New(btreeDegree)}
}

// Insert adds key -> value. A duplicate key is a precondition
// violation: it means the load or a transaction tried to create a
// record that already exists.
func (idx *orderedIndex[V]) Insert(key int64, value V) {
	e := indexEntry[V]{key: key, value: value}
	if idx.tree.Has(e) {
		fatalf("duplicate key %d in index", key)
	}
	idx.tree.ReplaceOrInsert(e)
}

// Find returns the value stored at key, if any.
func (idx *orderedIndex[V]) Find(key int64) (V, bool) {
	item := idx.tree.Get(indexEntry[V]{key: key})
	if item == nil {
		var zero V
		return zero, false
	}
	return item.(indexEntry[V]).value, true
}

// LowerBound returns the entry with the smallest key >= key, if any.
func (idx *orderedIndex[V]) LowerBound(key int64) (foundKey int64, value V, ok bool) {
	idx.tree.AscendGreaterOrEqual(indexEntry[V]{key: key}, func(i btree.Item) bool {
		e := i.(indexEntry[V])
		foundKey, value, ok = e.key, e.value, true
		return false
	})
	return
}

// FindLastLessThan returns the entry with the greatest key strictly
// less than key, if any.
func (idx *orderedIndex[V]) FindLastLessThan(key int64) (foundKey int64, value V, ok bool) {
	idx.tree.DescendLessOrEqual(indexEntry[V]{key: key}, func(i btree.Item) bool {
		e := i.(indexEntry[V])
		if e.key == key {
			return true // skip the equal entry, keep descending
		}
		foundKey, value, ok = e.key, e.value, true
		return false
	})
	return
}

// Erase removes key, if present.
func (idx *orderedIndex[V]) Erase(key int64) {
	idx.tree.Delete(indexEntry[V]{key: key})
}

// Len reports the number of entries.
func (idx *orderedIndex[V]) Len() int {
	return idx.tree.Len()
}
