// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Audit - check the structure of a tree: parent links, key order, node
// count and, for AVL trees, both height balance and stored balances
func Audit(tree *avl.Tree) error {
	if !tree.CheckUp() {
		return fault.ErrParentLinkBroken
	}

	n := 0
	var previous avl.Item
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		if nil != previous && previous.Compare(it.Key()) >= 0 {
			return fault.ErrKeyOrder
		}
		previous = it.Key()
		n += 1
	}
	if n != tree.Count() {
		return fault.ErrCountMismatch
	}

	if avl.AVL != tree.Policy() {
		return nil
	}
	if !tree.IsBalanced() {
		return fault.ErrTreeUnbalanced
	}
	if !tree.CheckBalances() {
		return fault.ErrBalanceMismatch
	}
	return nil
}
