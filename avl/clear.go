// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - release every node, the tree remains usable
func (tree *Tree) Clear() {
	tree.release(tree.root)
	tree.root = nilNode
	tree.count = 0
	tree.reset()
}

// children are released before their parent
func (tree *Tree) release(n nodeIndex) {
	if nilNode == n {
		return
	}
	p := tree.node(n)
	l, r := p.left, p.right
	tree.release(l)
	tree.release(r)
	tree.freeNode(n)
}
