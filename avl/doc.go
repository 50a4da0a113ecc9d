// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent back-references
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// A new node is placed by ordered descent, an equal key going to the
// left, and then every ancestor up to the root is examined in turn.
// Any ancestor whose sub-tree heights differ by two is restored with
// one of four rotations.  The pass does not stop after the first
// rotation; the remaining ancestors are still balanced and so are left
// unchanged.
//
// The rotations follow Weiss, Data Structures and Algorithm Analysis
// in C, section 4.4.
package avl
