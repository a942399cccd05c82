// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// link directions
const (
	left  = 0
	right = 1
)

// Node - a node in the tree, embedding the caller's datum
//
// balance is height(left) - height(right)
type Node[D any] struct {
	link    [2]*Node[D] // left and right sub-trees
	balance int         // -1, 0, +1
	datum   D
}

// NewNode - create an unlinked node holding datum
func NewNode[D any](datum D) *Node[D] {
	return &Node[D]{
		datum: datum,
	}
}

// Datum - access the datum part of a node
func (p *Node[D]) Datum() *D {
	return &p.datum
}

// Balance - current balance factor of a node
func (p *Node[D]) Balance() int {
	return p.balance
}

// Left - the left sub-tree of a node
func (p *Node[D]) Left() *Node[D] {
	return p.link[left]
}

// Right - the right sub-tree of a node
func (p *Node[D]) Right() *Node[D] {
	return p.link[right]
}

// internal: clear the links of a node removed from a tree
func (p *Node[D]) detach() {
	p.link[left] = nil
	p.link[right] = nil
	p.balance = 0
}

// internal: change in balance when the dir side grows by one level
func weight(dir int) int {
	if left == dir {
		return +1
	}
	return -1
}

// internal: rotate towards dir, promoting the child on the opposite
// side, returns the new sub-tree root
func (p *Node[D]) single(dir int) *Node[D] {
	save := p.link[1-dir]
	p.link[1-dir] = save.link[dir]
	save.link[dir] = p
	return save
}

// internal: rotate the child opposite dir away from dir, then rotate
// p towards dir, promoting the grandchild
func (p *Node[D]) double(dir int) *Node[D] {
	p.link[1-dir] = p.link[1-dir].single(1 - dir)
	return p.single(dir)
}

// internal: p is heavy on side dir and its child on that side is heavy
// on the other side, set the balance of the three nodes as they will
// be after a double rotation away from dir
//
// sign is the balance p would have if only one level heavier on dir
func (p *Node[D]) adjustBalance(dir int, sign int) {
	n := p.link[dir]
	nn := n.link[1-dir]
	switch nn.balance {
	case 0:
		p.balance = 0
		n.balance = 0
	case sign:
		p.balance = -sign
		n.balance = 0
	default:
		p.balance = 0
		n.balance = sign
	}
	nn.balance = 0
}

// insert: tree balancer
//
// the dir side of p has grown to two levels higher than the other
// side, returns the new sub-tree root whose height is the same as
// before the insertion
func (p *Node[D]) adjustBalanceAdd(dir int) *Node[D] {
	n := p.link[dir]
	sign := weight(dir)
	if n.balance == sign {
		// single LL or RR rotation
		p.balance = 0
		n.balance = 0
		return p.single(1 - dir)
	}
	// double LR or RL rotation
	p.adjustBalance(dir, sign)
	return p.double(1 - dir)
}

// delete: tree balancer
//
// the dir side of p has shrunk leaving the other side two levels
// higher, returns the new sub-tree root and true if the height of the
// sub-tree is unchanged so no ancestor needs rebalancing
func (p *Node[D]) adjustBalanceRemove(dir int) (*Node[D], bool) {
	heavy := 1 - dir
	n := p.link[heavy]
	sign := weight(heavy)
	switch n.balance {
	case sign:
		// single rotation, sub-tree is one level lower
		p.balance = 0
		n.balance = 0
		return p.single(dir), false
	case -sign:
		// double rotation, sub-tree is one level lower
		p.adjustBalance(heavy, sign)
		return p.double(dir), false
	default:
		// single rotation, height unchanged
		p.balance = sign
		n.balance = -sign
		return p.single(dir), true
	}
}
