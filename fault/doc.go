// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors may be
// wrapped with extra context and still be classified.
//
// Structural damage to a tree is never returned as an error: Panicf
// logs it and aborts the operation.
package fault
