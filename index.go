package reltab

import (
	"bytes"

	"github.com/google/btree"
)

const indexDegree = 8

// tableIndex is the primary-key index: a B-tree ordered by the
// order-preserving encoding of the composite key. It is maintained
// incrementally by Insert and never rebuilt for derived tables.
type tableIndex struct {
	bt *btree.BTreeG[indexEntry]
}

type indexEntry struct {
	enc []byte
	key Key
	tup Tuple
}

func newTableIndex() *tableIndex {
	return &tableIndex{
		bt: btree.NewG(indexDegree, func(a, b indexEntry) bool {
			return bytes.Compare(a.enc, b.enc) < 0
		}),
	}
}

func (ix *tableIndex) get(enc []byte) (Tuple, bool) {
	e, ok := ix.bt.Get(indexEntry{enc: enc})
	if !ok {
		return nil, false
	}
	return e.tup, true
}

func (ix *tableIndex) put(enc []byte, key Key, tup Tuple) {
	ix.bt.ReplaceOrInsert(indexEntry{enc: enc, key: key, tup: tup})
}

func (ix *tableIndex) len() int {
	return ix.bt.Len()
}

// ascend walks the index in key order, stopping when fn returns false.
func (ix *tableIndex) ascend(fn func(key Key, tup Tuple) bool) {
	ix.bt.Ascend(func(e indexEntry) bool {
		return fn(e.key, e.tup)
	})
}
