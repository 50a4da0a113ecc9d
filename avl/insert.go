// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/searchtree/binary"
)

// InsertNode - place an unattached node by ordered descent then
// rebalance every ancestor
//
// a key equal to the visited key goes to the left
func (tree *Tree[V]) InsertNode(id binary.NodeID) {
	a := tree.nodes
	if binary.None == tree.root {
		tree.root = id
		tree.Rebalance(id)
		return
	}

	key := a.Key(id)
	cur := tree.root
	for {
		if a.Key(cur) >= key {
			left := a.Left(cur)
			if binary.None == left {
				a.AttachLeft(cur, id)
				break
			}
			cur = left
		} else {
			right := a.Right(cur)
			if binary.None == right {
				a.AttachRight(cur, id)
				break
			}
			cur = right
		}
	}

	tree.Rebalance(id)
}

// Rebalance - examine id and then each of its ancestors up to the
// root, rotating where the heights differ by more than one
//
// returns the number of rotations done
func (tree *Tree[V]) Rebalance(id binary.NodeID) int {
	a := tree.nodes
	n := 0
	for cur := id; binary.None != cur; {
		// a rotation moves cur down so get the parent first
		up := a.Parent(cur)
		r := tree.classify(cur)
		if None != r {
			tree.rotate(cur, r)
			n += 1
		}
		cur = up
	}
	return n
}
