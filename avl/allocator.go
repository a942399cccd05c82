// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Pool - caller side allocator that reuses released nodes
//
// a tree never calls the pool; nodes obtained from Get are given to
// Add, and nodes returned by Remove or Clear may be given to Put
type Pool[D any] struct {
	sync.Mutex
	free       *Node[D] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// Get - allocate a node, reuses reclaimed nodes if any are available
func (pool *Pool[D]) Get(datum D) *Node[D] {
	pool.Lock()
	defer pool.Unlock()

	if nil == pool.free {
		if 0 != pool.freeNodes {
			panic("pool corrupt")
		}
		pool.totalNodes += 1
		return NewNode(datum)
	}
	p := pool.free
	pool.free = p.link[right]
	p.detach() // ensure free list pointer is cleared
	p.datum = datum
	pool.freeNodes -= 1
	return p
}

// Put - reclaim an unlinked node and keep it in the pool
func (pool *Pool[D]) Put(node *Node[D]) {
	pool.Lock()
	defer pool.Unlock()

	var zero D
	node.datum = zero // drop references held by the datum
	node.link[left] = nil
	node.link[right] = pool.free // use as free list pointer
	node.balance = 0
	pool.freeNodes += 1

	pool.free = node
}

// Stats - total nodes ever created and number currently free
func (pool *Pool[D]) Stats() (total int, free int) {
	pool.Lock()
	defer pool.Unlock()
	return pool.totalNodes, pool.freeNodes
}
