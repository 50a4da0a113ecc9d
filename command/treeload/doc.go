// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treeload - load the key/value data set described by a Lua
// configuration file into a search tree and report on the result
//
//	treeload --config-file=treeload.conf [--print] [--verbose]
//
// see treeload.conf.sample for the file layout
package main
