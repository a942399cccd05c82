// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/index"
)

// query command handler
//
// commands operate on an already loaded index and write their results
// to w, keys are given and shown in hex
func processCommand(w io.Writer, ix *index.Index, command string, arguments []string) error {

	switch command {
	case "count":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		fmt.Fprintf(w, "%d\n", ix.Count())

	case "get":
		key, err := keyArgument(arguments)
		if nil != err {
			return err
		}
		value, ok := ix.Get(key)
		if !ok {
			return fault.ErrNotFoundKey
		}
		printRecord(w, index.Record{Key: key, Value: value})

	case "floor", "lesser":
		key, err := keyArgument(arguments)
		if nil != err {
			return err
		}
		return printFound(w)(ix.Floor(key))

	case "ceiling", "greater":
		key, err := keyArgument(arguments)
		if nil != err {
			return err
		}
		return printFound(w)(ix.Ceiling(key))

	case "first", "lowest":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		return printFound(w)(ix.First())

	case "last", "highest":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		return printFound(w)(ix.Last())

	case "list":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		ix.Each(func(r index.Record) {
			printRecord(w, r)
		})

	case "check":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		if err := ix.Check(); nil != err {
			return err
		}
		fmt.Fprintf(w, "ok: %d records\n", ix.Count())

	case "print":
		if 0 != len(arguments) {
			return fault.ErrWrongNumberOfArgument
		}
		depth := ix.Print(w)
		fmt.Fprintf(w, "depth: %d\n", depth)

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

// the single hex key argument
func keyArgument(arguments []string) ([]byte, error) {
	if 1 != len(arguments) {
		return nil, fault.ErrWrongNumberOfArgument
	}
	key, err := hex.DecodeString(arguments[0])
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return key, nil
}

func printRecord(w io.Writer, r index.Record) {
	fmt.Fprintf(w, "%x → %x\n", r.Key, r.Value)
}

func printFound(w io.Writer) func(index.Record, bool) error {
	return func(r index.Record, ok bool) error {
		if !ok {
			return fault.ErrNotFoundKey
		}
		printRecord(w, r)
		return nil
	}
}
