// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/item"
)

// default values applied by Validate to unset fields
const (
	defaultKeys       = 1000
	defaultOperations = 10000
	defaultAuditEvery = 100
)

// Configuration - parameters of a generated workload
type Configuration struct {
	Seed          int64  `gluamapper:"seed" json:"seed"`
	Keys          int    `gluamapper:"keys" json:"keys"`
	Operations    int    `gluamapper:"operations" json:"operations"`
	RemovePercent int    `gluamapper:"remove_percent" json:"remove_percent"`
	AuditEvery    int    `gluamapper:"audit_every" json:"audit_every"`
	Policy        string `gluamapper:"policy" json:"policy"`
	KeyKind       string `gluamapper:"key_kind" json:"key_kind"`
	Print         bool   `gluamapper:"print" json:"print"`
}

// Validate - check ranges and fill in defaults for zero values
func (conf *Configuration) Validate() error {
	if conf.Keys < 0 || conf.Operations < 0 || conf.AuditEvery < 0 {
		return fault.ErrInvalidCount
	}
	if 0 == conf.Keys {
		conf.Keys = defaultKeys
	}
	if 0 == conf.Operations {
		conf.Operations = defaultOperations
	}
	if 0 == conf.AuditEvery {
		conf.AuditEvery = defaultAuditEvery
	}

	if conf.RemovePercent < 0 || conf.RemovePercent > 100 {
		return fault.ErrInvalidPercentage
	}

	if _, err := avl.ParsePolicy(conf.Policy); nil != err {
		return err
	}

	if "" == conf.KeyKind {
		conf.KeyKind = item.KindInteger
	}
	if !item.ValidKind(conf.KeyKind) {
		return fault.ErrInvalidKeyKind
	}
	return nil
}
