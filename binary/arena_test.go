// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// a slot that is borrowed cannot be borrowed again or even read
func TestBorrowIsExclusive(t *testing.T) {
	a := NewArena[int]()
	p := a.New("p", 1)
	c := a.New("c", 2)

	a.borrow(p)
	assert.Panics(t, func() { a.borrow(p) }, "second borrow")
	assert.Panics(t, func() { a.Key(p) }, "read while borrowed")
	assert.Panics(t, func() { a.AttachLeft(p, c) }, "link while borrowed")
	a.unborrow(p)

	// the failed attach must not have linked the child halfway
	assert.Equal(t, None, a.slots[p].left)
	assert.Equal(t, None, a.slots[c].up)

	assert.NotPanics(t, func() { a.AttachLeft(p, c) })
	assert.Equal(t, p, a.Parent(c))
	assert.False(t, a.slots[p].busy)
	assert.False(t, a.slots[c].busy)
}

func TestFreeList(t *testing.T) {
	a := NewArena[string]()
	n1 := a.New("1", "a")
	n2 := a.New("2", "b")
	a.Release(n1)
	a.Release(n2)

	assert.Equal(t, 2, a.freeNodes)
	assert.Equal(t, n2, a.pool, "last released is first reused")
	assert.Equal(t, n1, a.slots[n2].up)

	assert.Equal(t, n2, a.New("3", "c"))
	assert.Equal(t, n1, a.New("4", "d"))
	assert.Equal(t, None, a.pool)
	assert.Equal(t, 0, a.freeNodes)
	assert.Equal(t, 2, a.totalNodes)
}
