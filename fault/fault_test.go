// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrKeyOne      = fault.KeyError("key one")
	ErrKeyTwo      = fault.KeyError("key two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes do not overlap
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		key      bool
		notFound bool
		process  bool
	}{
		{ErrInvalidOne, true, false, false, false},
		{ErrInvalidTwo, true, false, false, false},
		{ErrKeyOne, false, true, false, false},
		{ErrKeyTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrKeyNotFound, false, false, true, false},
		{fault.ErrTreeUnbalanced, false, false, false, true},
		{fault.ErrInvalidKeyKind, true, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrKey(err) != e.key {
			t.Errorf("%d: expected 'key' == %v for err = %v", i, e.key, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestInstancesCompareByIdentity(t *testing.T) {
	var err error = fault.ErrKeyNotFound
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong instance")
	assert.Equal(t, "key not found", err.Error(), "wrong message")
	assert.NotEqual(t, fault.ErrKeyNotFound, fault.NotFoundError("key missing"), "distinct messages compare equal")
}

func TestPanicfWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "end iterator: 3", func() {
		fault.Panicf("end iterator: %d", 3)
	}, "wrong panic value")
}
