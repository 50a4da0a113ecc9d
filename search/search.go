// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"github.com/cockroachdb/errors"

	"github.com/bitmark-inc/searchtree/binary"
	"github.com/bitmark-inc/searchtree/fault"
)

// SearchTree - the capabilities a tree variant must provide
type SearchTree[V any] interface {
	// arena holding the nodes of the tree
	Arena() *binary.Arena[V]

	// current root or binary.None
	Root() binary.NodeID

	// place a freshly created, unattached node
	InsertNode(id binary.NodeID)
}

// FindNode - descend from the root to the node holding key
func FindNode[V any](tree SearchTree[V], key string) (binary.NodeID, bool) {
	a := tree.Arena()
	cur := tree.Root()
	for binary.None != cur {
		k := a.Key(cur)
		switch {
		case k == key:
			return cur, true
		case k < key:
			cur = a.Right(cur)
		default:
			cur = a.Left(cur)
		}
	}
	return binary.None, false
}

// Find - the shared value cell stored under key
func Find[V any](tree SearchTree[V], key string) (*binary.Cell[V], bool) {
	id, ok := FindNode(tree, key)
	if !ok {
		return nil, false
	}
	return tree.Arena().Value(id), true
}

// FindAndClone - an independent copy of the value stored under key
func FindAndClone[V any](tree SearchTree[V], key string) (V, bool) {
	cell, ok := Find(tree, key)
	if !ok {
		var zero V
		return zero, false
	}
	return cell.Clone(), true
}

// Add - create a node and let the tree variant place it
func Add[V any](tree SearchTree[V], key string, value V) binary.NodeID {
	id := tree.Arena().New(key, value)
	tree.InsertNode(id)
	return id
}

// Update - give the node holding key a new value cell
//
// holders of the previous cell keep seeing the previous value, the
// tree shape is not changed
func Update[V any](tree SearchTree[V], key string, value V) error {
	id, ok := FindNode(tree, key)
	if !ok {
		return errors.Wrapf(fault.ErrKeyNotFound, "update key: %q", key)
	}
	tree.Arena().SetValue(id, binary.NewCell(value))
	return nil
}

// Height - height of the whole tree, -1 when empty
func Height[V any](tree SearchTree[V]) int {
	return tree.Arena().Height(tree.Root())
}

// Depth - deepest level of the tree, the same as its height
func Depth[V any](tree SearchTree[V]) int {
	return Height(tree)
}

// MinVal - value of the leftmost node
func MinVal[V any](tree SearchTree[V]) (*binary.Cell[V], bool) {
	a := tree.Arena()
	id := a.First(tree.Root())
	if binary.None == id {
		return nil, false
	}
	return a.Value(id), true
}

// MaxVal - value of the rightmost node
func MaxVal[V any](tree SearchTree[V]) (*binary.Cell[V], bool) {
	a := tree.Arena()
	id := a.Last(tree.Root())
	if binary.None == id {
		return nil, false
	}
	return a.Value(id), true
}

// Walk - visit every node in key order until f returns false
func Walk[V any](tree SearchTree[V], f func(id binary.NodeID) bool) {
	a := tree.Arena()
	for id := a.First(tree.Root()); binary.None != id; id = a.Next(id) {
		if !f(id) {
			return
		}
	}
}
