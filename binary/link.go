// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

import (
	"github.com/bitmark-inc/searchtree/fault"
)

// AttachLeft - make child the left sub-tree of parent
//
// returns the previous left child, now detached, or None.  A child
// of None just clears the slot.
func (a *Arena[V]) AttachLeft(parent NodeID, child NodeID) NodeID {
	return a.attach(parent, child, true)
}

// AttachRight - make child the right sub-tree of parent
//
// returns the previous right child, now detached, or None.
func (a *Arena[V]) AttachRight(parent NodeID, child NodeID) NodeID {
	return a.attach(parent, child, false)
}

// IsLeftChild - true if candidate is the very node in parent's left slot
func (a *Arena[V]) IsLeftChild(parent NodeID, candidate NodeID) bool {
	return None != candidate && a.view(parent).left == candidate
}

// DetachFromParent - cut a node from its parent
//
// returns the former parent or None if the node was a root
func (a *Arena[V]) DetachFromParent(id NodeID) NodeID {
	up := a.view(id).up
	if None == up {
		return None
	}
	if a.IsLeftChild(up, id) {
		a.AttachLeft(up, None)
	} else {
		a.AttachRight(up, None)
	}
	return up
}

// internal: replace one child slot keeping the up links consistent
func (a *Arena[V]) attach(parent NodeID, child NodeID, left bool) NodeID {
	if parent == child {
		fault.Panicf("link: node: %d attached to itself", parent)
	}

	p := a.borrow(parent)
	if None != child {
		c := a.valid(child)
		if c.busy || None != c.up {
			a.unborrow(parent)
			fault.Panicf("link: node: %d busy or still attached to: %d", child, c.up)
		}
		c.up = parent
	}
	old := p.right
	if left {
		old = p.left
		p.left = child
	} else {
		p.right = child
	}
	a.unborrow(parent)

	if None != old {
		o := a.borrow(old)
		o.up = None
		a.unborrow(old)
	}
	return old
}
