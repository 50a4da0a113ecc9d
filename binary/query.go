// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

// Depth - get the depth of a node, a root is at depth zero
func (a *Arena[V]) Depth(id NodeID) int {
	count := 0
	parent := a.Parent(id)
	for None != parent {
		count += 1
		parent = a.Parent(parent)
	}
	return count
}

// Height - longest path from a node down to a leaf
//
// an empty sub-tree has height -1 and a leaf has height 0.  Nothing is
// cached, every call walks the whole sub-tree.
func (a *Arena[V]) Height(id NodeID) int {
	if None == id {
		return -1
	}

	type pending struct {
		id    NodeID
		level int
	}

	height := 0
	stack := []pending{{id: id}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.level > height {
			height = top.level
		}
		s := a.view(top.id)
		if None != s.left {
			stack = append(stack, pending{id: s.left, level: top.level + 1})
		}
		if None != s.right {
			stack = append(stack, pending{id: s.right, level: top.level + 1})
		}
	}
	return height
}

// LeftHeight - height of the left sub-tree
func (a *Arena[V]) LeftHeight(id NodeID) int {
	return a.Height(a.Left(id))
}

// RightHeight - height of the right sub-tree
func (a *Arena[V]) RightHeight(id NodeID) int {
	return a.Height(a.Right(id))
}

// BalanceFactor - left height minus right height
func (a *Arena[V]) BalanceFactor(id NodeID) int {
	return a.LeftHeight(id) - a.RightHeight(id)
}
