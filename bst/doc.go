// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain binary search tree with no rebalancing
//
// it shares every lookup with package avl through the search
// capability and exists mainly to compare shapes and heights
package bst
