// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// MaxHeight - number of path entries held without allocation
//
// an AVL tree of height 36 holds tens of millions of nodes, taller
// trees are still handled but the path then grows on the heap
const MaxHeight = 36

// KeyFunc - extract the ordering key from a datum
type KeyFunc[D any, K any] func(*D) K

// CompareFunc - three-way comparison of two keys
//
// must return < 0, 0 or > 0 if a is less than, equal to or greater
// than b
type CompareFunc[K any] func(a K, b K) int

// Tree - type to hold the root node of a tree
type Tree[D any, K any] struct {
	root    *Node[D]
	count   int
	key     KeyFunc[D, K]
	compare CompareFunc[K]
}

// New - create an initially empty tree
func New[D any, K any](key func(*D) K, compare func(a K, b K) int) *Tree[D, K] {
	return &Tree[D, K]{
		root:    nil,
		count:   0,
		key:     key,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree[D, K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[D, K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[D, K]) Root() *Node[D] {
	return tree.root
}

// internal: key of a node
func (tree *Tree[D, K]) keyOf(p *Node[D]) K {
	return tree.key(&p.datum)
}

// internal: the direction to take from p to reach key, ok is false
// if p holds key
func (tree *Tree[D, K]) direction(key K, p *Node[D]) (int, bool) {
	c := tree.compare(key, tree.keyOf(p))
	switch {
	case c < 0:
		return left, true
	case c > 0:
		return right, true
	default:
		return left, false
	}
}
