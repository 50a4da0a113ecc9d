// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/cockroachdb/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingConfigFile     = NotFoundError("configuration file is required")
	ErrUnknownVariant        = InvalidError("unknown tree variant")
	ErrTreeInconsistent      = ProcessError("tree is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool { var x ExistsError; return errors.As(e, &x) }

// IsErrInvalid - determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool { var x InvalidError; return errors.As(e, &x) }

// IsErrNotFound - determine the class of an error, looking through any wrapping
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }

// IsErrProcess - determine the class of an error, looking through any wrapping
func IsErrProcess(e error) bool { var x ProcessError; return errors.As(e, &x) }
