// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	if nilNode != tree.root && nilNode != tree.node(tree.root).up {
		return false
	}
	return tree.checkUp(tree.root)
}

// internal: consistency checker
func (tree *Tree) checkUp(n nodeIndex) bool {
	if nilNode == n {
		return true
	}
	p := tree.node(n)
	if nilNode != p.left && tree.node(p.left).up != n {
		return false
	}
	if nilNode != p.right && tree.node(p.right).up != n {
		return false
	}
	return tree.checkUp(p.left) && tree.checkUp(p.right)
}

// IsBalanced - recompute every height from the leaves and confirm no
// node has sub-trees differing in height by more than one
//
// stored balance factors are not consulted
func (tree *Tree) IsBalanced() bool {
	_, ok := tree.heightOf(tree.root, false)
	return ok
}

// CheckBalances - confirm every stored balance factor matches the
// recomputed heights of its sub-trees
func (tree *Tree) CheckBalances() bool {
	_, ok := tree.heightOf(tree.root, true)
	return ok
}

// Height - number of nodes on the longest path from the root
func (tree *Tree) Height() int {
	h, _ := tree.heightOf(tree.root, false)
	return h
}

// returns height and whether the sub-tree passed the audit
func (tree *Tree) heightOf(n nodeIndex, stored bool) (int, bool) {
	if nilNode == n {
		return 0, true
	}
	p := tree.node(n)
	lh, lok := tree.heightOf(p.left, stored)
	rh, rok := tree.heightOf(p.right, stored)

	d := rh - lh
	ok := lok && rok && d >= -1 && d <= 1
	if stored && int(p.balance) != d {
		ok = false
	}

	if lh > rh {
		return 1 + lh, ok
	}
	return 1 + rh, ok
}
