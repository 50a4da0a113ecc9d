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

// Check - verify the structure of a tree
//
// checks key ordering, that every up link names the node whose slot
// holds the child, that no node is reachable twice and, if balanced is
// set, that no sub-tree heights differ by more than one.
//
// an equal key may appear on either side of its twin: insertion puts
// it on the left but a later rotation can lift it above the twin.
func Check[V any](tree SearchTree[V], balanced bool) error {
	a := tree.Arena()
	root := tree.Root()
	if binary.None == root {
		return nil
	}
	if up := a.Parent(root); binary.None != up {
		return errors.Wrapf(fault.ErrTreeInconsistent, "root: %q has parent: %q", a.Key(root), a.Key(up))
	}

	type bounded struct {
		id     binary.NodeID
		lo, hi string
		hasLo  bool
		hasHi  bool
	}

	seen := make(map[binary.NodeID]struct{})
	stack := []bounded{{id: root}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[n.id]; ok {
			return errors.Wrapf(fault.ErrTreeInconsistent, "node: %q reached twice", a.Key(n.id))
		}
		seen[n.id] = struct{}{}

		key := a.Key(n.id)
		if n.hasLo && key < n.lo {
			return errors.Wrapf(fault.ErrTreeInconsistent, "node: %q is in right sub-tree of: %q", key, n.lo)
		}
		if n.hasHi && key > n.hi {
			return errors.Wrapf(fault.ErrTreeInconsistent, "node: %q is in left sub-tree of: %q", key, n.hi)
		}

		if balanced {
			if bf := a.BalanceFactor(n.id); bf > 1 || bf < -1 {
				return errors.Wrapf(fault.ErrTreeInconsistent, "node: %q balance factor: %d", key, bf)
			}
		}

		if left := a.Left(n.id); binary.None != left {
			if up := a.Parent(left); up != n.id {
				return errors.Wrapf(fault.ErrTreeInconsistent, "left child: %q of: %q points up to: %d", a.Key(left), key, up)
			}
			stack = append(stack, bounded{id: left, lo: n.lo, hasLo: n.hasLo, hi: key, hasHi: true})
		}
		if right := a.Right(n.id); binary.None != right {
			if up := a.Parent(right); up != n.id {
				return errors.Wrapf(fault.ErrTreeInconsistent, "right child: %q of: %q points up to: %d", a.Key(right), key, up)
			}
			stack = append(stack, bounded{id: right, lo: key, hasLo: true, hi: n.hi, hasHi: n.hasHi})
		}
	}
	return nil
}
