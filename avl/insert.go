// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - link a node into the tree
//
// returns node if it was linked, or the node already in the tree
// with an equal key, in which case the tree is unchanged and node is
// left unlinked
func (tree *Tree[D, K]) Add(node *Node[D]) *Node[D] {
	if nil == tree.root {
		node.detach()
		tree.root = node
		tree.count = 1
		return node
	}

	key := tree.keyOf(node)

	// s is the lowest node that may need rebalancing, t is its parent
	var t *Node[D]
	s := tree.root
	p := s
	for {
		dir, ok := tree.direction(key, p)
		if !ok {
			return p // duplicate key
		}
		q := p.link[dir]
		if nil == q {
			node.detach()
			p.link[dir] = node
			break
		}
		if 0 != q.balance {
			t = p
			s = q
		}
		p = q
	}

	// every node below s on the path had zero balance
	heavy := left
	for p = s; p != node; {
		dir, _ := tree.direction(key, p)
		if p == s {
			heavy = dir
		}
		p.balance += weight(dir)
		p = p.link[dir]
	}

	if s.balance > 1 || s.balance < -1 {
		n := s.adjustBalanceAdd(heavy)
		if nil == t {
			tree.root = n
		} else if t.link[right] == s {
			t.link[right] = n
		} else {
			t.link[left] = n
		}
	}

	tree.count += 1
	return node
}
