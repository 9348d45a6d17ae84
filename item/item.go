// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// String - key ordered by byte-wise string comparison
type String string

// Integer - key ordered numerically
type Integer int64

// Bytes - key ordered lexicographically, printed as hex
type Bytes []byte

// the supported kinds of key
const (
	KindString  = "string"
	KindInteger = "integer"
	KindHex     = "hex"
)

// Compare - for avl.Item
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// Compare - for avl.Item
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// Compare - for avl.Item
func (b Bytes) Compare(x interface{}) int {
	return bytes.Compare(b, x.(Bytes))
}

// String - hex representation for printing
func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// ValidKind - true if kind names a supported key type
func ValidKind(kind string) bool {
	switch kind {
	case KindString, KindInteger, KindHex:
		return true
	default:
		return false
	}
}

// Parse - convert text to a key of the given kind
func Parse(kind string, text string) (avl.Item, error) {
	switch kind {
	case KindString:
		return String(text), nil

	case KindInteger:
		i, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, err
		}
		return Integer(i), nil

	case KindHex:
		b, err := hex.DecodeString(text)
		if nil != err {
			return nil, err
		}
		return Bytes(b), nil

	default:
		return nil, fault.ErrInvalidKeyKind
	}
}

// Generate - deterministic key of the given kind for a number, used by
// workloads so that the same number always maps to the same key
func Generate(kind string, n int) (avl.Item, error) {
	switch kind {
	case KindString:
		return String(strconv.Itoa(n)), nil
	case KindInteger:
		return Integer(n), nil
	case KindHex:
		return Bytes{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}, nil
	default:
		return nil, fault.ErrInvalidKeyKind
	}
}
