// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = InvalidError("already initialised")
	ErrBlackHeightMismatch    = ProcessError("black height differs between paths")
	ErrBrokenParentLink       = ProcessError("parent link does not match child link")
	ErrCountMismatch          = ProcessError("node count does not match tree contents")
	ErrEmptyTree              = NotFoundError("tree is empty")
	ErrFileNotFound           = NotFoundError("file not found")
	ErrHeightIncorrect        = ProcessError("stored height is incorrect")
	ErrHeightUnbalanced       = ProcessError("subtree heights differ by more than one")
	ErrInvalidBalancer        = InvalidError("balancer is not recognised")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrNilItem                = InvalidError("item is nil")
	ErrNoLeftChild            = NotFoundError("node has no left child")
	ErrNoParent               = NotFoundError("node has no parent")
	ErrNoRightChild           = NotFoundError("node has no right child")
	ErrOrderViolated          = ProcessError("items are out of order")
	ErrQueueEmpty             = NotFoundError("queue is empty")
	ErrRedWithRedChild        = ProcessError("red node has a red child")
	ErrRootNotBlack           = ProcessError("root is not black")
	ErrRotationNotSupported   = UnsupportedError("rotation is not supported on a self-balancing tree")
	ErrStackEmpty             = NotFoundError("stack is empty")
	ErrUncolouredNode         = ProcessError("node has no colour")
	ErrUnsupportedLanguageTag = InvalidError("language tag is not supported")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrUnsupported(e error) bool { _, ok := e.(UnsupportedError); return ok }
