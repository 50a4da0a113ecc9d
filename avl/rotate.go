// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/searchtree/binary"
	"github.com/bitmark-inc/searchtree/fault"
)

// Rotation - the restructuring needed at one node
type Rotation int

// the rotation kinds
const (
	None        Rotation = iota // balanced
	SingleRight Rotation = iota // left-left: lift the left child
	DoubleRight Rotation = iota // left-right: lift the left child's right child
	SingleLeft  Rotation = iota // right-right: lift the right child
	DoubleLeft  Rotation = iota // right-left: lift the right child's left child
)

func (r Rotation) String() string {
	switch r {
	case None:
		return "none"
	case SingleRight:
		return "single-right"
	case DoubleRight:
		return "double-right"
	case SingleLeft:
		return "single-left"
	case DoubleLeft:
		return "double-left"
	default:
		return "unknown"
	}
}

// Classify - the rotation that would be applied at a node
func (tree *Tree[V]) Classify(id binary.NodeID) Rotation {
	return classify(tree.nodes, id)
}

// internal: classify and count the check
func (tree *Tree[V]) classify(id binary.NodeID) Rotation {
	tree.stats.Checks += 1
	return classify(tree.nodes, id)
}

func classify[V any](a *binary.Arena[V], id binary.NodeID) Rotation {
	bf := a.BalanceFactor(id)
	switch {
	case bf > 1:
		left := a.Left(id)
		if a.LeftHeight(left) >= a.RightHeight(left) {
			return SingleRight
		}
		return DoubleRight
	case bf < -1:
		right := a.Right(id)
		if a.RightHeight(right) >= a.LeftHeight(right) {
			return SingleLeft
		}
		return DoubleLeft
	default:
		return None
	}
}

// internal: apply one rotation at k
func (tree *Tree[V]) rotate(k binary.NodeID, r Rotation) {
	if nil != tree.log {
		tree.log.Debugf("%s at key: %q", r, tree.nodes.Key(k))
	}
	switch r {
	case SingleRight:
		tree.singleRight(k)
		tree.stats.SingleRight += 1
	case DoubleRight:
		tree.doubleRight(k)
		tree.stats.DoubleRight += 1
	case SingleLeft:
		tree.singleLeft(k)
		tree.stats.SingleLeft += 1
	case DoubleLeft:
		tree.doubleLeft(k)
		tree.stats.DoubleLeft += 1
	}
}

// left-left: k2, the left child of k1, becomes the sub-tree root and
// its right sub-tree y moves across to k1
//
//	      k1          k2
//	     /  \        /  \
//	    k2   z  →   x    k1
//	   /  \             /  \
//	  x    y           y    z
func (tree *Tree[V]) singleRight(k1 binary.NodeID) {
	a := tree.nodes
	k2 := mustExist(a, a.AttachLeft(k1, binary.None), k1, "left child")
	y := a.AttachRight(k2, binary.None)
	up, wasLeft := tree.detach(k1)

	a.AttachLeft(k1, y)
	a.AttachRight(k2, k1)

	tree.relink(up, wasLeft, k2)
}

// right-right: mirror of singleRight
func (tree *Tree[V]) singleLeft(k1 binary.NodeID) {
	a := tree.nodes
	k2 := mustExist(a, a.AttachRight(k1, binary.None), k1, "right child")
	y := a.AttachLeft(k2, binary.None)
	up, wasLeft := tree.detach(k1)

	a.AttachRight(k1, y)
	a.AttachLeft(k2, k1)

	tree.relink(up, wasLeft, k2)
}

// left-right: k2, the right child of k1 which is the left child of
// k3, becomes the sub-tree root
//
//	      k3             k2
//	     /  \          /    \
//	    k1   d        k1     k3
//	   /  \     →    /  \   /  \
//	  a    k2       a    b c    d
//	      /  \
//	     b    c
func (tree *Tree[V]) doubleRight(k3 binary.NodeID) {
	a := tree.nodes
	k1 := mustExist(a, a.AttachLeft(k3, binary.None), k3, "left child")
	k2 := mustExist(a, a.AttachRight(k1, binary.None), k1, "right child")
	tree.lift(k1, k2, k3, k3)
}

// right-left: k2, the left child of k3 which is the right child of
// k1, becomes the sub-tree root
//
//	   k1                 k2
//	  /  \              /    \
//	 a    k3           k1     k3
//	     /  \    →    /  \   /  \
//	    k2   d       a    b c    d
//	   /  \
//	  b    c
func (tree *Tree[V]) doubleLeft(k1 binary.NodeID) {
	a := tree.nodes
	k3 := mustExist(a, a.AttachRight(k1, binary.None), k1, "right child")
	k2 := mustExist(a, a.AttachLeft(k3, binary.None), k3, "left child")
	tree.lift(k1, k2, k3, k1)
}

// internal: second half of a double rotation, k2 is already cut from
// its parent and top is the node that was the sub-tree root
func (tree *Tree[V]) lift(k1, k2, k3, top binary.NodeID) {
	a := tree.nodes
	b := a.AttachLeft(k2, binary.None)
	c := a.AttachRight(k2, binary.None)
	up, wasLeft := tree.detach(top)

	a.AttachRight(k1, b)
	a.AttachLeft(k3, c)
	a.AttachLeft(k2, k1)
	a.AttachRight(k2, k3)

	tree.relink(up, wasLeft, k2)
}

// internal: cut a sub-tree root from its parent remembering the side
func (tree *Tree[V]) detach(id binary.NodeID) (binary.NodeID, bool) {
	a := tree.nodes
	up := a.Parent(id)
	wasLeft := binary.None != up && a.IsLeftChild(up, id)
	a.DetachFromParent(id)
	return up, wasLeft
}

// internal: put a new sub-tree root where the old one was
func (tree *Tree[V]) relink(up binary.NodeID, wasLeft bool, id binary.NodeID) {
	a := tree.nodes
	switch {
	case binary.None == up:
		tree.root = id
	case wasLeft:
		a.AttachLeft(up, id)
	default:
		a.AttachRight(up, id)
	}
}

// internal: a rotation was chosen so the heavier side cannot be empty
func mustExist[V any](a *binary.Arena[V], id binary.NodeID, parent binary.NodeID, what string) binary.NodeID {
	if binary.None == id {
		fault.Panicf("avl: rotation at key: %q has no %s", a.Key(parent), what)
	}
	return id
}
