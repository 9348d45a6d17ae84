// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, an existing key has its
// value overwritten and the tree structure is unchanged
func (tree *Tree) Insert(key Item, value interface{}) {
	n, added := tree.insert(key, value)
	if !added {
		return
	}
	tree.count += 1
	tree.balancer().inserted(tree, n)
}

// internal routine for insert: attach a leaf or overwrite a value,
// returns the node holding the key and whether it is new
func (tree *Tree) insert(key Item, value interface{}) (nodeIndex, bool) {
	if nilNode == tree.root {
		tree.root = tree.newNode(key, value, nilNode)
		return tree.root, true
	}

	p := tree.root
	for {
		pn := tree.node(p)
		c := pn.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nilNode != pn.left {
				p = pn.left
				continue
			}
			n := tree.newNode(key, value, p)
			tree.node(p).left = n // arena may have moved
			return n, true

		case c < 0: // p.key < key
			if nilNode != pn.right {
				p = pn.right
				continue
			}
			n := tree.newNode(key, value, p)
			tree.node(p).right = n
			return n, true

		default:
			pn.value = value
			return p, false
		}
	}
}
