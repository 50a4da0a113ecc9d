// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

import (
	"github.com/bitmark-inc/searchtree/fault"
)

// Cloner - values that need more than a plain copy to be duplicated
type Cloner[V any] interface {
	Clone() V
}

// Cell - a value that may be held by the tree and by any number of
// callers at once
//
// any number of readers or a single writer may be active at one time,
// a clash panics
type Cell[V any] struct {
	value   V
	readers int
	writing bool
}

// NewCell - wrap a value
func NewCell[V any](value V) *Cell[V] {
	return &Cell[V]{
		value: value,
	}
}

// Get - copy of the current value
func (c *Cell[V]) Get() V {
	if c.writing {
		fault.Panicf("cell: read during exclusive access")
	}
	return c.value
}

// Read - call f with the value while holding a shared borrow
func (c *Cell[V]) Read(f func(V)) {
	if c.writing {
		fault.Panicf("cell: read during exclusive access")
	}
	c.readers += 1
	defer func() { c.readers -= 1 }()
	f(c.value)
}

// Modify - call f with exclusive access to the value
func (c *Cell[V]) Modify(f func(*V)) {
	if c.writing {
		fault.Panicf("cell: already exclusively borrowed")
	}
	if 0 != c.readers {
		fault.Panicf("cell: exclusive access with %d readers active", c.readers)
	}
	c.writing = true
	defer func() { c.writing = false }()
	f(&c.value)
}

// Set - overwrite the value in place, visible to every holder of the cell
func (c *Cell[V]) Set(value V) {
	c.Modify(func(v *V) {
		*v = value
	})
}

// Clone - independent copy of the value
func (c *Cell[V]) Clone() V {
	v := c.Get()
	if cl, ok := any(v).(Cloner[V]); ok {
		return cl.Clone()
	}
	return v
}
