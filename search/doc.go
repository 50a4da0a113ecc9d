// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package search - operations shared by every binary search tree
//
// A tree variant only decides where a new node goes (InsertNode).
// Lookup, update, height and the diagnostics are written once here
// against the SearchTree interface.
//
// Keys are ordered as strings.  A key equal to an existing one is
// placed in the left sub-tree of the equal node, so FindNode returns
// the copy nearest the root.  That is the earliest one unless a
// rotation has lifted a later copy above it.
package search
