// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item
func (tree *Tree[D, K]) Find(key K) *Node[D] {
	p := tree.root
	for nil != p {
		dir, ok := tree.direction(key, p)
		if !ok {
			return p
		}
		p = p.link[dir]
	}
	return nil
}

// FindEqualOrLesser - find the item with key, or failing that the
// item with the highest key below it
func (tree *Tree[D, K]) FindEqualOrLesser(key K) *Node[D] {
	var candidate *Node[D]
	p := tree.root
	for nil != p {
		dir, ok := tree.direction(key, p)
		if !ok {
			return p
		}
		if right == dir { // p.key < key
			candidate = p
		}
		p = p.link[dir]
	}
	return candidate
}

// FindEqualOrGreater - find the item with key, or failing that the
// item with the lowest key above it
func (tree *Tree[D, K]) FindEqualOrGreater(key K) *Node[D] {
	var candidate *Node[D]
	p := tree.root
	for nil != p {
		dir, ok := tree.direction(key, p)
		if !ok {
			return p
		}
		if left == dir { // p.key > key
			candidate = p
		}
		p = p.link[dir]
	}
	return candidate
}

// FindLowest - return the node with the lowest key value
func (tree *Tree[D, K]) FindLowest() *Node[D] {
	return tree.root.extreme(left)
}

// FindHighest - return the node with the highest key value
func (tree *Tree[D, K]) FindHighest() *Node[D] {
	return tree.root.extreme(right)
}

// internal: last node reached by following dir links in a sub-tree
func (p *Node[D]) extreme(dir int) *Node[D] {
	if nil == p {
		return nil
	}
	for nil != p.link[dir] {
		p = p.link[dir]
	}
	return p
}
