// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
	"github.com/cockroachdb/errors"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log a formatted message then panic with an assertion
// failure carrying the same text
//
// used for aliasing violations and damaged tree structure, neither
// of which can be recovered by the caller
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, message)
	} else {
		internalCriticalf("%s", message)
	}
	panic(errors.AssertionFailedf("%s", message))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	panic(errors.NewAssertionErrorWithWrappedErrf(err, "%s", message))
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
