// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

import (
	"github.com/bitmark-inc/searchtree/fault"
)

// NodeID - handle of a node slot inside an arena
type NodeID int32

// None - the absent link
const None NodeID = -1

// a node in the tree
type slot[V any] struct {
	key   string   // key part for ordering
	value *Cell[V] // shared value cell
	up    NodeID   // back-reference to parent node
	left  NodeID   // left sub-tree
	right NodeID   // right sub-tree
	live  bool     // false while the slot sits in the free list
	busy  bool     // exclusively borrowed
}

// Arena - owns every node of one tree
type Arena[V any] struct {
	slots      []slot[V]
	pool       NodeID // linked list of reclaimed slots, chained through up
	totalNodes int    // total slots created
	freeNodes  int    // number of slots in the pool
}

// NewArena - create an empty arena
func NewArena[V any]() *Arena[V] {
	return &Arena[V]{
		pool: None,
	}
}

// New - allocate a new unattached node, reuses reclaimed slots if any
// are available
func (a *Arena[V]) New(key string, value V) NodeID {
	if None == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("arena: pool corrupt: %d free nodes but empty list", a.freeNodes)
		}
		a.slots = append(a.slots, slot[V]{
			key:   key,
			value: NewCell(value),
			up:    None,
			left:  None,
			right: None,
			live:  true,
		})
		a.totalNodes += 1
		return NodeID(len(a.slots) - 1)
	}

	id := a.pool
	s := &a.slots[id]
	a.pool = s.up
	s.key = key
	s.value = NewCell(value)
	s.up = None // ensure freelist pointer is cleared
	s.left = None
	s.right = None
	s.live = true
	a.freeNodes -= 1
	return id
}

// Release - reclaim an unattached leaf node and keep its slot in the pool
func (a *Arena[V]) Release(id NodeID) {
	s := a.borrow(id)
	if None != s.up || None != s.left || None != s.right {
		a.unborrow(id)
		fault.Panicf("arena: release of linked node: %d key: %q", id, s.key)
	}
	s.key = ""
	s.value = nil
	s.left = None
	s.right = None
	s.live = false
	s.busy = false
	s.up = a.pool // use as free list pointer
	a.pool = id
	a.freeNodes += 1
}

// Len - number of live nodes
func (a *Arena[V]) Len() int {
	return a.totalNodes - a.freeNodes
}

// Key - read the key from a node
func (a *Arena[V]) Key(id NodeID) string {
	return a.view(id).key
}

// Value - the shared value cell of a node
func (a *Arena[V]) Value(id NodeID) *Cell[V] {
	return a.view(id).value
}

// SetValue - replace the value cell of a node, holders of the old
// cell keep the old value
func (a *Arena[V]) SetValue(id NodeID, cell *Cell[V]) {
	s := a.borrow(id)
	defer a.unborrow(id)
	s.value = cell
}

// Parent - return parent node of a node, None for a root
func (a *Arena[V]) Parent(id NodeID) NodeID {
	return a.view(id).up
}

// Left - left child or None
func (a *Arena[V]) Left(id NodeID) NodeID {
	return a.view(id).left
}

// Right - right child or None
func (a *Arena[V]) Right(id NodeID) NodeID {
	return a.view(id).right
}

// internal: validate a handle
func (a *Arena[V]) valid(id NodeID) *slot[V] {
	if id < 0 || int(id) >= len(a.slots) {
		fault.Panicf("arena: node: %d out of range", id)
	}
	s := &a.slots[id]
	if !s.live {
		fault.Panicf("arena: node: %d was released", id)
	}
	return s
}

// internal: shared read access
func (a *Arena[V]) view(id NodeID) *slot[V] {
	s := a.valid(id)
	if s.busy {
		fault.Panicf("arena: node: %d read while borrowed", id)
	}
	return s
}

// internal: exclusive access, must be paired with unborrow
func (a *Arena[V]) borrow(id NodeID) *slot[V] {
	s := a.valid(id)
	if s.busy {
		fault.Panicf("arena: node: %d already borrowed", id)
	}
	s.busy = true
	return s
}

func (a *Arena[V]) unborrow(id NodeID) {
	a.slots[id].busy = false
}
