// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package binary - intrusive binary tree cells kept in an arena
//
// Nodes live in the slots of an Arena and refer to each other by
// NodeID instead of by pointer.  The left and right links own a child,
// the up link is only a back-reference used to walk towards the root
// and to relink a sub-tree after a rotation.
//
// Note: an arena is not thread safe, so either access only in a
//       single go routine or use mutex/rwmutex to restrict access.
//       Every mutation borrows its slot exclusively and a clashing
//       access panics instead of corrupting the tree.
package binary
