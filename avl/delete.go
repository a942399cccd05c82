// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - unlink the node with a specific key from the tree
//
// returns the unlinked node with cleared links, or nil if the key is
// not in the tree
func (tree *Tree[D, K]) Remove(key K) *Node[D] {

	// path from the root: up[i] was left by going dirs[i]
	var upArray [MaxHeight]*Node[D]
	var dirsArray [MaxHeight]int
	up := upArray[:0]
	dirs := dirsArray[:0]

	p := tree.root
	for nil != p {
		dir, ok := tree.direction(key, p)
		if !ok {
			break
		}
		up = append(up, p)
		dirs = append(dirs, dir)
		p = p.link[dir]
	}
	if nil == p { // key not in tree
		return nil
	}

	if nil == p.link[left] || nil == p.link[right] {
		child := p.link[left]
		if nil == child {
			child = p.link[right]
		}
		tree.relink(up, dirs, len(up), child)
	} else {
		// replace p by its inorder successor
		i := len(up)
		up = append(up, p)
		dirs = append(dirs, right)

		heir := p.link[right]
		for nil != heir.link[left] {
			up = append(up, heir)
			dirs = append(dirs, left)
			heir = heir.link[left]
		}

		parent := up[len(up)-1]
		if parent != p {
			parent.link[left] = heir.link[right]
			heir.link[right] = p.link[right]
		}
		heir.link[left] = p.link[left]
		heir.balance = p.balance

		// heir now occupies the slot p had on the path
		up[i] = heir
		tree.relink(up, dirs, i, heir)
	}

	// rebalance from the bottom of the path
rebalance:
	for k := len(up) - 1; k >= 0; k -= 1 {
		n := up[k]
		n.balance -= weight(dirs[k])
		switch n.balance {
		case -1, +1:
			break rebalance // height unchanged
		case 0:
			// height reduced, continue upwards
		default:
			n, done := n.adjustBalanceRemove(dirs[k])
			tree.relink(up, dirs, k, n)
			if done {
				break rebalance
			}
		}
	}

	p.detach()
	tree.count -= 1
	return p
}

// internal: make n the sub-tree at path position k
func (tree *Tree[D, K]) relink(up []*Node[D], dirs []int, k int, n *Node[D]) {
	if 0 == k {
		tree.root = n
	} else {
		up[k-1].link[dirs[k-1]] = n
	}
}
