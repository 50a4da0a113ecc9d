// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/searchtree/binary"
	"github.com/bitmark-inc/searchtree/search"
)

// Tree - unbalanced search tree
type Tree[V any] struct {
	nodes *binary.Arena[V]
	root  binary.NodeID
}

// New - create an empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{
		nodes: binary.NewArena[V](),
		root:  binary.None,
	}
}

func (tree *Tree[V]) Arena() *binary.Arena[V] {
	return tree.nodes
}

func (tree *Tree[V]) Root() binary.NodeID {
	return tree.root
}

// InsertNode - attach at the leaf reached by ordered descent, equal
// keys go left
func (tree *Tree[V]) InsertNode(id binary.NodeID) {
	a := tree.nodes
	if binary.None == tree.root {
		tree.root = id
		return
	}
	cur := tree.root
	key := a.Key(id)
	for {
		var next binary.NodeID
		if a.Key(cur) >= key {
			next = a.Left(cur)
			if binary.None == next {
				a.AttachLeft(cur, id)
				return
			}
		} else {
			next = a.Right(cur)
			if binary.None == next {
				a.AttachRight(cur, id)
				return
			}
		}
		cur = next
	}
}

func (tree *Tree[V]) IsEmpty() bool {
	return binary.None == tree.root
}

func (tree *Tree[V]) Count() int {
	return tree.nodes.Len()
}

func (tree *Tree[V]) Add(key string, value V) binary.NodeID {
	return search.Add[V](tree, key, value)
}

func (tree *Tree[V]) Find(key string) (*binary.Cell[V], bool) {
	return search.Find[V](tree, key)
}

func (tree *Tree[V]) FindAndClone(key string) (V, bool) {
	return search.FindAndClone[V](tree, key)
}

func (tree *Tree[V]) Update(key string, value V) error {
	return search.Update[V](tree, key, value)
}

func (tree *Tree[V]) Height() int {
	return search.Height[V](tree)
}
