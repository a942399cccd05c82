// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root      branch = iota
	leftHand  branch = iota
	rightHand branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// returns the height of the tree
func (tree *Tree[D, K]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[D, K]) printTree(w io.Writer, p *Node[D], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.link[right] {
		t := "       "
		if leftHand == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.link[right], prefix+t, rightHand, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftHand:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightHand:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %+v %+2d\n", tree.keyOf(p), p.datum, p.balance)
	} else {
		fmt.Fprintf(w, "%v %+2d\n", tree.keyOf(p), p.balance)
	}
	if nil != p.link[left] {
		t := "       "
		if rightHand == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.link[left], prefix+t, leftHand, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
