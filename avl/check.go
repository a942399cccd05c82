// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Validate - audit the whole tree
//
// balanced is true if every node's height difference is within one
// and matches its stored balance, sorted is true if every left
// sub-tree holds lower keys and every right sub-tree higher keys
func (tree *Tree[D, K]) Validate() (balanced bool, sorted bool) {
	balanced = true
	sorted = true
	tree.check(tree.root, nil, nil, &balanced, &sorted)
	return balanced, sorted
}

// internal: consistency checker, returns sub-tree height
//
// lower and upper are the nearest ancestors the sub-tree must lie
// between, nil if unbounded
func (tree *Tree[D, K]) check(p *Node[D], lower *Node[D], upper *Node[D], balanced *bool, sorted *bool) int {
	if nil == p {
		return 0
	}

	key := tree.keyOf(p)
	if nil != lower && tree.compare(tree.keyOf(lower), key) >= 0 {
		*sorted = false
	}
	if nil != upper && tree.compare(key, tree.keyOf(upper)) >= 0 {
		*sorted = false
	}

	lh := tree.check(p.link[left], lower, p, balanced, sorted)
	rh := tree.check(p.link[right], p, upper, balanced, sorted)

	d := lh - rh
	if d < -1 || d > 1 || d != p.balance {
		*balanced = false
	}

	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
