// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Find - iterator at a specific item, or End() if it is not present
func (tree *Tree) Find(key Item) Iterator {
	return tree.iterator(tree.internalFind(key))
}

// At - the value stored under a key
func (tree *Tree) At(key Item) (interface{}, error) {
	n := tree.internalFind(key)
	if nilNode == n {
		return nil, fault.ErrKeyNotFound
	}
	return tree.node(n).value, nil
}

// Assign - replace the value stored under an existing key, unlike
// Insert it never adds a node
func (tree *Tree) Assign(key Item, value interface{}) error {
	n := tree.internalFind(key)
	if nilNode == n {
		return fault.ErrKeyNotFound
	}
	tree.node(n).value = value
	return nil
}

func (tree *Tree) internalFind(key Item) nodeIndex {
	p := tree.root
	for nilNode != p {
		pn := tree.node(p)
		switch c := pn.key.Compare(key); {
		case c > 0: // p.key > key
			p = pn.left
		case c < 0: // p.key < key
			p = pn.right
		default:
			return p
		}
	}
	return nilNode
}
