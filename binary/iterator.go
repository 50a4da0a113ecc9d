// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

// First - the leftmost node of a sub-tree, None for an empty sub-tree
func (a *Arena[V]) First(id NodeID) NodeID {
	if None == id {
		return None
	}
	for left := a.Left(id); None != left; left = a.Left(id) {
		id = left
	}
	return id
}

// Last - the rightmost node of a sub-tree, None for an empty sub-tree
func (a *Arena[V]) Last(id NodeID) NodeID {
	if None == id {
		return None
	}
	for right := a.Right(id); None != right; right = a.Right(id) {
		id = right
	}
	return id
}

// Next - given a node, return the following node in key order or
// None if no more nodes.
//
// climbs the up links until arriving from a left child, so equal keys
// are visited in tree order
func (a *Arena[V]) Next(id NodeID) NodeID {
	if right := a.Right(id); None != right {
		return a.First(right)
	}
	for {
		up := a.Parent(id)
		if None == up {
			return None
		}
		if a.IsLeftChild(up, id) {
			return up
		}
		id = up
	}
}

// Prev - given a node, return the preceding node in key order or None
// if no more nodes
func (a *Arena[V]) Prev(id NodeID) NodeID {
	if left := a.Left(id); None != left {
		return a.Last(left)
	}
	for {
		up := a.Parent(id)
		if None == up {
			return None
		}
		if !a.IsLeftChild(up, id) {
			return up
		}
		id = up
	}
}

// ChildrenByDepth - all nodes exactly depth levels below a node, left
// to right
func (a *Arena[V]) ChildrenByDepth(id NodeID, depth uint) []NodeID {
	if None == id {
		return nil
	}
	level := []NodeID{id}
	for ; depth > 0 && len(level) > 0; depth -= 1 {
		next := make([]NodeID, 0, 2*len(level))
		for _, n := range level {
			if left := a.Left(n); None != left {
				next = append(next, left)
			}
			if right := a.Right(n); None != right {
				next = append(next, right)
			}
		}
		level = next
	}
	return level
}
