// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an intrusive AVL balanced tree over caller owned nodes
//
// The tree never allocates or frees a node, it only rewrites the link
// fields of nodes handed to it by the caller.  Nodes carry no parent
// pointer, so insert and delete record the path from the root while
// descending and rebalance by walking that path back up.
//
// The key of a node is derived from its datum by a key function and
// ordered by a three-way compare function, both supplied to New.  The
// key of a linked node must not be changed.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// There is no iterator, the whole tree can be visited in key order
// with Apply, or destructively with Clear.
package avl
