// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete the node holding key, an absent key leaves the
// tree unchanged
func (tree *Tree) Remove(key Item) {
	n := tree.internalFind(key)
	if nilNode == n {
		return
	}

	// two children: move the in-order predecessor into n's position
	// so that n has at most one child
	if p := tree.node(n); nilNode != p.left && nilNode != p.right {
		tree.nodeSwap(n, tree.last(p.left))
	}

	p := tree.node(n)
	child := p.left
	if nilNode == child {
		child = p.right
	}
	parent := p.up

	diff := int8(0)
	if nilNode == parent {
		tree.root = child
	} else if pn := tree.node(parent); pn.left == n {
		pn.left = child
		diff = +1
	} else {
		pn.right = child
		diff = -1
	}
	if nilNode != child {
		tree.node(child).up = parent
	}

	tree.freeNode(n)
	tree.count -= 1

	if nilNode != parent {
		tree.balancer().removed(tree, parent, diff)
	}
}
