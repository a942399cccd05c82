// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - an in-memory ordered index of one leveldb table
//
// A table is the set of records whose keys start with a single prefix
// byte.  Records are copied out of the database into AVL tree nodes
// keyed by the key with the prefix removed, and ordered with the same
// comparer leveldb uses so that the in-memory order matches the
// database order.
//
// An Index is not safe for concurrent use.
package index
