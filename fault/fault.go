// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type KeyError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = InvalidError("already initialised")
	ErrBalanceMismatch      = ProcessError("stored balance differs from recomputed balance")
	ErrCountMismatch        = ProcessError("node count differs from reference")
	ErrInterrupted          = ProcessError("interrupted")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidKeyKind       = InvalidError("key kind is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPercentage    = InvalidError("percentage is invalid")
	ErrInvalidPolicy        = InvalidError("balancing policy is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = ProcessError("keys are not in ascending order")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrParentLinkBroken     = ProcessError("parent link is inconsistent")
	ErrTreeNotEmpty         = ProcessError("tree is not empty")
	ErrTreeUnbalanced       = ProcessError("tree is not height balanced")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrValueMismatch        = ProcessError("value differs from reference")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e KeyError) Error() string      { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrKey(e error) bool      { _, ok := e.(KeyError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
