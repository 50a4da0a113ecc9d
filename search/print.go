// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/searchtree/binary"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Label - "root" or the parent key with the side the node hangs on
func Label[V any](a *binary.Arena[V], id binary.NodeID) string {
	up := a.Parent(id)
	if binary.None == up {
		return "root"
	}
	if a.IsLeftChild(up, id) {
		return a.Key(up) + "-L"
	}
	return a.Key(up) + "-R"
}

// Dump - one line per node in pre-order, indented by depth
//
//	[root] key=20, value=b, height=1, depth=0
//	 [20-L] key=10, value=a, height=0, depth=1
func Dump[V any](w io.Writer, tree SearchTree[V]) {
	a := tree.Arena()
	if binary.None == tree.Root() {
		return
	}
	stack := []binary.NodeID{tree.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		depth := a.Depth(id)
		fmt.Fprintf(w, "%s[%s] key=%s, value=%v, height=%d, depth=%d\n",
			strings.Repeat(" ", depth),
			Label(a, id),
			a.Key(id),
			a.Value(id).Get(),
			a.Height(id),
			depth,
		)

		if r := a.Right(id); binary.None != r {
			stack = append(stack, r)
		}
		if l := a.Left(id); binary.None != l {
			stack = append(stack, l)
		}
	}
}

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above left ones
//
// returns the number of levels printed
func Print[V any](w io.Writer, tree SearchTree[V], printData bool) int {
	return printTree(w, tree.Arena(), tree.Root(), "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[V any](w io.Writer, a *binary.Arena[V], id binary.NodeID, prefix string, br branch, printData bool) int {
	if binary.None == id {
		return 0
	}
	rd := 0
	ld := 0
	if r := a.Right(id); binary.None != r {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, a, r, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if p := a.Parent(id); binary.None != p {
		up = a.Key(p)
	}
	if printData {
		fmt.Fprintf(w, "%q → %v ^%s %+2d\n", a.Key(id), a.Value(id).Get(), up, a.BalanceFactor(id))
	} else {
		fmt.Fprintf(w, "%q ^%s\n", a.Key(id), up)
	}
	if l := a.Left(id); binary.None != l {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, a, l, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
