// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/avltree/index Source

// Source - anything that can iterate a key range
//
// satisfied by *leveldb.DB and *leveldb.Snapshot
type Source interface {
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

// Load - index every record of the table held in src
//
// returns the number of records added, records already indexed only
// have their values replaced
func (ix *Index) Load(src Source) (int, error) {

	maxRange := util.Range{
		Start: []byte{ix.prefix},     // Start of key range, included in the range
		Limit: []byte{ix.prefix + 1}, // Limit of key range, excluded from the range
	}
	if 0xff == ix.prefix {
		maxRange.Limit = nil // no upper limit
	}

	iter := src.NewIterator(&maxRange, nil)
	defer iter.Release()

	added := 0
	replaced := 0
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		if ix.Put(key[1:], value) {
			added += 1
		} else {
			replaced += 1
		}
	}

	if err := iter.Error(); nil != err {
		ix.log.Errorf("table: %q  iteration error: %s", ix.prefix, err)
		return added, fault.ErrIterationFailed
	}

	if replaced > 0 {
		ix.log.Warnf("table: %q  replaced: %d existing records", ix.prefix, replaced)
	}
	ix.log.Infof("table: %q  loaded: %d records  total: %d", ix.prefix, added, ix.tree.Count())
	return added, nil
}
