// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log channel to drain before panicking
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger system must already be initialised
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

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string prefixed by the caller's location
func Critical(message string) {
	internalCriticalf(2, "%s", message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic
//
// used for conditions that can only arise from a programming error,
// e.g. a tree whose structure no longer satisfies its invariants
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf(0, "%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicWithError - final panic including the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf(0, "%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal: prefix with caller location when depth > 0, and fall back
// to stdout if the logger channel was never set up
func internalCriticalf(depth int, format string, arguments ...interface{}) {
	if depth > 0 {
		if _, file, line, ok := runtime.Caller(depth); ok {
			a := make([]interface{}, 2, 2+len(arguments))
			a[0] = file
			a[1] = line
			arguments = append(a, arguments...)
			format = "(%q:%d) " + format
		}
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
