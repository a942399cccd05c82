// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb/comparer"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Record - one key/value pair from the table, prefix removed
type Record struct {
	Key   []byte
	Value []byte
}

func recordKey(r *Record) []byte {
	return r.Key
}

// Index - holds the tree and the nodes it links
type Index struct {
	log    *logger.L
	prefix byte
	tree   *avl.Tree[Record, []byte]
	pool   *avl.Pool[Record]
}

// New - create an empty index for the table with prefix
func New(log *logger.L, prefix byte) *Index {
	return &Index{
		log:    log,
		prefix: prefix,
		tree:   avl.New(recordKey, comparer.DefaultComparer.Compare),
		pool:   &avl.Pool[Record]{},
	}
}

// Prefix - the table prefix byte
func (ix *Index) Prefix() byte {
	return ix.prefix
}

// Count - number of records indexed
func (ix *Index) Count() int {
	return ix.tree.Count()
}

// Put - add a record or replace the value of an existing one
//
// returns true if the key was not already present
func (ix *Index) Put(key []byte, value []byte) bool {
	r := Record{
		Key:   clone(key),
		Value: clone(value),
	}
	node := ix.pool.Get(r)
	existing := ix.tree.Add(node)
	if existing == node {
		return true
	}

	// key cannot change, so only the value is replaced
	existing.Datum().Value = r.Value
	ix.pool.Put(node)
	return false
}

// Delete - remove a record, returns true if it was present
func (ix *Index) Delete(key []byte) bool {
	node := ix.tree.Remove(key)
	if nil == node {
		return false
	}
	ix.pool.Put(node)
	return true
}

// Get - the value stored for key
func (ix *Index) Get(key []byte) ([]byte, bool) {
	node := ix.tree.Find(key)
	if nil == node {
		return nil, false
	}
	return node.Datum().Value, true
}

// Floor - the record with key, or the highest key below it
func (ix *Index) Floor(key []byte) (Record, bool) {
	return record(ix.tree.FindEqualOrLesser(key))
}

// Ceiling - the record with key, or the lowest key above it
func (ix *Index) Ceiling(key []byte) (Record, bool) {
	return record(ix.tree.FindEqualOrGreater(key))
}

// First - the record with the lowest key
func (ix *Index) First() (Record, bool) {
	return record(ix.tree.FindLowest())
}

// Last - the record with the highest key
func (ix *Index) Last() (Record, bool) {
	return record(ix.tree.FindHighest())
}

// Each - call fn for every record in ascending key order
//
// fn must not modify the index
func (ix *Index) Each(fn func(Record)) {
	ix.tree.Apply(func(node *avl.Node[Record]) {
		fn(*node.Datum())
	})
}

// Check - audit the tree
func (ix *Index) Check() error {
	balanced, sorted := ix.tree.Validate()
	if !sorted {
		ix.log.Criticalf("table: %q  tree is not sorted", ix.prefix)
		return fault.ErrTreeUnsorted
	}
	if !balanced {
		ix.log.Criticalf("table: %q  tree is not balanced", ix.prefix)
		return fault.ErrTreeUnbalanced
	}
	ix.log.Debugf("table: %q  check: %d records ok", ix.prefix, ix.tree.Count())
	return nil
}

// Reset - drop every record, returning the nodes to the pool
func (ix *Index) Reset() {
	n := ix.tree.Count()
	ix.tree.Clear(ix.pool.Put)
	total, free := ix.pool.Stats()
	ix.log.Infof("table: %q  reset: %d records  nodes: %d  free: %d", ix.prefix, n, total, free)
}

// Print - draw the tree, returns its height
func (ix *Index) Print(w io.Writer) int {
	return ix.tree.Print(w, false)
}

// internal: copy of a node's record
func record(node *avl.Node[Record]) (Record, bool) {
	if nil == node {
		return Record{}, false
	}
	return *node.Datum(), true
}

// internal: leveldb reuses its buffers so keep a private copy
func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
