// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/binary"
	"github.com/bitmark-inc/searchtree/search"
)

// Tree - type to hold the root node of a tree
type Tree[V any] struct {
	nodes *binary.Arena[V]
	root  binary.NodeID
	log   *logger.L
	stats Stats
}

// Stats - work done by the rebalancing passes
type Stats struct {
	Checks      uint64 // nodes examined
	SingleRight uint64
	DoubleRight uint64
	SingleLeft  uint64
	DoubleLeft  uint64
}

// Rotations - total rotations of all kinds
func (s Stats) Rotations() uint64 {
	return s.SingleRight + s.DoubleRight + s.SingleLeft + s.DoubleLeft
}

// New - create an initially empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{
		nodes: binary.NewArena[V](),
		root:  binary.None,
	}
}

// SetLog - rotations are reported at debug level on this channel,
// nil disables logging
func (tree *Tree[V]) SetLog(log *logger.L) {
	tree.log = log
}

// Arena - the nodes of the tree
func (tree *Tree[V]) Arena() *binary.Arena[V] {
	return tree.nodes
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() binary.NodeID {
	return tree.root
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return binary.None == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.nodes.Len()
}

// Stats - counters accumulated since the tree was created
func (tree *Tree[V]) Stats() Stats {
	return tree.stats
}

// Add - insert a key/value pair and rebalance
func (tree *Tree[V]) Add(key string, value V) binary.NodeID {
	return search.Add[V](tree, key, value)
}

// Find - shared value cell for key
func (tree *Tree[V]) Find(key string) (*binary.Cell[V], bool) {
	return search.Find[V](tree, key)
}

// FindAndClone - copy of the value for key
func (tree *Tree[V]) FindAndClone(key string) (V, bool) {
	return search.FindAndClone[V](tree, key)
}

// Update - replace the value for an existing key
func (tree *Tree[V]) Update(key string, value V) error {
	return search.Update[V](tree, key, value)
}

// Height - -1 for an empty tree
func (tree *Tree[V]) Height() int {
	return search.Height[V](tree)
}

// Depth - same as height
func (tree *Tree[V]) Depth() int {
	return search.Depth[V](tree)
}

// MinVal - value of the smallest key
func (tree *Tree[V]) MinVal() (*binary.Cell[V], bool) {
	return search.MinVal[V](tree)
}

// MaxVal - value of the largest key
func (tree *Tree[V]) MaxVal() (*binary.Cell[V], bool) {
	return search.MaxVal[V](tree)
}

// MinValClone - copy of the value of the smallest key
func (tree *Tree[V]) MinValClone() (V, bool) {
	return cloneOf(tree.MinVal())
}

// MaxValClone - copy of the value of the largest key
func (tree *Tree[V]) MaxValClone() (V, bool) {
	return cloneOf(tree.MaxVal())
}

func cloneOf[V any](cell *binary.Cell[V], ok bool) (V, bool) {
	if !ok {
		var zero V
		return zero, false
	}
	return cell.Clone(), true
}
