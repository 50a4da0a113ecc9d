// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package binary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/searchtree/binary"
)

func TestHeightAndDepth(t *testing.T) {
	a := binary.NewArena[string]()
	n28 := a.New("28", "Tony")
	n20 := a.New("20", "Guo")
	n19 := a.New("19", "Guo Tony")

	a.AttachLeft(n28, n20)
	a.AttachRight(n28, n19)

	assert.Equal(t, 0, a.Depth(n28), "root depth")
	assert.Equal(t, 1, a.Height(n28), "root height")
	assert.Equal(t, 1, a.Depth(n20), "left depth")
	assert.Equal(t, 0, a.Height(n20), "left height")
	assert.Equal(t, 1, a.Depth(n19), "right depth")
	assert.Equal(t, 0, a.Height(n19), "right height")

	assert.Equal(t, 0, a.LeftHeight(n28))
	assert.Equal(t, 0, a.RightHeight(n28))
	assert.Equal(t, -1, a.LeftHeight(n20))
	assert.Equal(t, -1, a.RightHeight(n20))
	assert.Equal(t, -1, a.LeftHeight(n19))
	assert.Equal(t, -1, a.RightHeight(n19))

	assert.Equal(t, -1, a.Height(binary.None), "empty sub-tree")
}

func TestAttachReturnsPreviousChild(t *testing.T) {
	a := binary.NewArena[string]()
	n28 := a.New("28", "Tony")
	n20 := a.New("20", "Guo")
	n19 := a.New("19", "Guo Tony")

	assert.Equal(t, binary.None, a.AttachRight(n28, n20))
	assert.Equal(t, n28, a.Parent(n20))
	assert.Equal(t, n20, a.Right(n28))

	assert.Equal(t, binary.None, a.AttachLeft(n28, n19))
	assert.Equal(t, n28, a.Parent(n19))
	assert.True(t, a.IsLeftChild(n28, n19))
	assert.False(t, a.IsLeftChild(n28, n20))

	// clearing a slot hands the old child back, detached
	assert.Equal(t, n20, a.AttachRight(n28, binary.None))
	assert.Equal(t, binary.None, a.Parent(n20))
	assert.Equal(t, binary.None, a.Right(n28))

	// clearing an empty slot is harmless
	assert.Equal(t, binary.None, a.AttachRight(n28, binary.None))

	assert.Equal(t, n19, a.AttachLeft(n28, binary.None))
	assert.Equal(t, binary.None, a.Parent(n19))
	assert.Equal(t, binary.None, a.Left(n28))
}

func TestDetachFromParent(t *testing.T) {
	a := binary.NewArena[int]()
	root := a.New("m", 1)
	left := a.New("f", 2)
	right := a.New("t", 3)
	a.AttachLeft(root, left)
	a.AttachRight(root, right)

	assert.Equal(t, binary.None, a.DetachFromParent(root), "root has no parent")

	assert.Equal(t, root, a.DetachFromParent(right))
	assert.Equal(t, binary.None, a.Right(root))
	assert.Equal(t, left, a.Left(root))
	assert.Equal(t, binary.None, a.Parent(right))

	assert.Equal(t, root, a.DetachFromParent(left))
	assert.Equal(t, binary.None, a.Left(root))
	assert.Equal(t, 0, a.Height(root))
}

func TestAttachStillLinkedChildPanics(t *testing.T) {
	a := binary.NewArena[int]()
	p1 := a.New("a", 1)
	p2 := a.New("b", 2)
	c := a.New("c", 3)
	a.AttachRight(p1, c)

	assert.Panics(t, func() { a.AttachRight(p2, c) }, "child has two parents")
	assert.Panics(t, func() { a.AttachLeft(p1, p1) }, "node under itself")

	// nothing changed
	assert.Equal(t, p1, a.Parent(c))
	assert.Equal(t, binary.None, a.Right(p2))
}

func TestArenaRecyclesReleasedNodes(t *testing.T) {
	a := binary.NewArena[string]()
	n1 := a.New("1", "one")
	n2 := a.New("2", "two")
	require.Equal(t, 2, a.Len())

	a.Release(n1)
	assert.Equal(t, 1, a.Len())
	assert.Panics(t, func() { a.Key(n1) }, "stale handle")

	n3 := a.New("3", "three")
	assert.Equal(t, n1, n3, "slot not reused")
	assert.Equal(t, "3", a.Key(n3))
	assert.Equal(t, "three", a.Value(n3).Get())
	assert.Equal(t, binary.None, a.Parent(n3))
	assert.Equal(t, 2, a.Len())

	a.AttachLeft(n2, n3)
	assert.Panics(t, func() { a.Release(n3) }, "release of linked node")
	assert.Panics(t, func() { a.Key(binary.NodeID(99)) }, "out of range")
}

func TestChildrenByDepth(t *testing.T) {
	a := binary.NewArena[int]()
	ids := make(map[string]binary.NodeID)
	for i, k := range []string{"4", "2", "6", "1", "3", "5", "7"} {
		ids[k] = a.New(k, i)
	}
	a.AttachLeft(ids["4"], ids["2"])
	a.AttachRight(ids["4"], ids["6"])
	a.AttachLeft(ids["2"], ids["1"])
	a.AttachRight(ids["2"], ids["3"])
	a.AttachLeft(ids["6"], ids["5"])
	a.AttachRight(ids["6"], ids["7"])

	assert.Equal(t, []binary.NodeID{ids["4"]}, a.ChildrenByDepth(ids["4"], 0))
	assert.Equal(t, []binary.NodeID{ids["2"], ids["6"]}, a.ChildrenByDepth(ids["4"], 1))
	assert.Len(t, a.ChildrenByDepth(ids["4"], 2), 4)
	assert.Empty(t, a.ChildrenByDepth(ids["4"], 3))
	assert.Nil(t, a.ChildrenByDepth(binary.None, 1))

	// in-order walk both ways over the up links
	expected := []string{"1", "2", "3", "4", "5", "6", "7"}
	actual := []string{}
	for n := a.First(ids["4"]); binary.None != n; n = a.Next(n) {
		actual = append(actual, a.Key(n))
	}
	assert.Equal(t, expected, actual)

	actual = actual[:0]
	for n := a.Last(ids["4"]); binary.None != n; n = a.Prev(n) {
		actual = append(actual, a.Key(n))
	}
	for i, j := 0, len(actual)-1; i < j; i, j = i+1, j-1 {
		actual[i], actual[j] = actual[j], actual[i]
	}
	assert.Equal(t, expected, actual)

	assert.Equal(t, 0, a.BalanceFactor(ids["1"]), "leaf balance")
	assert.Equal(t, 0, a.BalanceFactor(ids["4"]))
	assert.Equal(t, binary.None, a.First(binary.None))
	assert.Equal(t, binary.None, a.Last(binary.None))
}
