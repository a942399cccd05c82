// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Apply - call fn on every node in ascending key order
//
// the tree must not be modified by fn
func (tree *Tree[D, K]) Apply(fn func(*Node[D])) {
	apply(tree.root, fn)
}

func apply[D any](p *Node[D], fn func(*Node[D])) {
	if nil == p {
		return
	}
	apply(p.link[left], fn)
	fn(p)
	apply(p.link[right], fn)
}

// Clear - unlink every node, leaving the tree empty
//
// release, if not nil, is called once for each node after its links
// are cleared.  Nodes are released in ascending key order, this is
// guaranteed.  release must not access the tree.
func (tree *Tree[D, K]) Clear(release func(*Node[D])) {
	p := tree.root
	for nil != p {
		if nil != p.link[left] {
			p = p.single(right)
			continue
		}
		// lowest remaining node
		next := p.link[right]
		p.detach()
		if nil != release {
			release(p)
		}
		p = next
	}
	tree.root = nil
	tree.count = 0
}
