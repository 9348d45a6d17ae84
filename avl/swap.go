// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// how two nodes to be swapped are related
type swapCase int

const (
	swapUnrelated     swapCase = iota // neither is the child of the other
	swapAdjacentLeft  swapCase = iota // lower is the left child of upper
	swapAdjacentRight swapCase = iota // lower is the right child of upper
)

// classify a pair of nodes, for adjacent nodes upper is the parent
func (tree *Tree) classifySwap(n1 nodeIndex, n2 nodeIndex) (c swapCase, upper nodeIndex, lower nodeIndex) {
	p1 := tree.node(n1)
	p2 := tree.node(n2)
	switch {
	case p1.left == n2:
		return swapAdjacentLeft, n1, n2
	case p1.right == n2:
		return swapAdjacentRight, n1, n2
	case p2.left == n1:
		return swapAdjacentLeft, n2, n1
	case p2.right == n1:
		return swapAdjacentRight, n2, n1
	}
	return swapUnrelated, n1, n2
}

// nodeSwap - exchange the structural positions of two nodes and let
// the balancing policy move its per-node data with them
func (tree *Tree) nodeSwap(n1 nodeIndex, n2 nodeIndex) {
	if n1 == n2 || nilNode == n1 || nilNode == n2 {
		return
	}
	tree.swapNodes(n1, n2)
	tree.balancer().swapped(tree, n1, n2)
}

// swapNodes - exchange parent, left and right of two nodes, keys and
// values stay with their nodes; the root is updated last
func (tree *Tree) swapNodes(n1 nodeIndex, n2 nodeIndex) {
	c, upper, lower := tree.classifySwap(n1, n2)

	u := tree.node(upper)
	l := tree.node(lower)

	// positions seen from the parents, fixed before any relinking
	uUp, lUp := u.up, l.up
	uLeftSide := nilNode != uUp && tree.node(uUp).left == upper
	lLeftSide := nilNode != lUp && tree.node(lUp).left == lower

	uLeft, uRight := u.left, u.right
	lLeft, lRight := l.left, l.right

	switch c {
	case swapAdjacentLeft:
		l.up = uUp
		l.left = upper
		l.right = uRight
		u.up = lower
		u.left = lLeft
		u.right = lRight
		tree.setUp(uRight, lower)
		tree.setUp(lLeft, upper)
		tree.setUp(lRight, upper)
		tree.setChild(uUp, uLeftSide, lower)

	case swapAdjacentRight:
		l.up = uUp
		l.left = uLeft
		l.right = upper
		u.up = lower
		u.left = lLeft
		u.right = lRight
		tree.setUp(uLeft, lower)
		tree.setUp(lLeft, upper)
		tree.setUp(lRight, upper)
		tree.setChild(uUp, uLeftSide, lower)

	default:
		u.up, l.up = lUp, uUp
		u.left, l.left = lLeft, uLeft
		u.right, l.right = lRight, uRight
		tree.setUp(uLeft, lower)
		tree.setUp(uRight, lower)
		tree.setUp(lLeft, upper)
		tree.setUp(lRight, upper)
		tree.setChild(uUp, uLeftSide, lower)
		tree.setChild(lUp, lLeftSide, upper)
	}

	switch tree.root {
	case upper:
		tree.root = lower
	case lower:
		tree.root = upper
	}
}

// set the parent link of n if it exists
func (tree *Tree) setUp(n nodeIndex, up nodeIndex) {
	if nilNode != n {
		tree.node(n).up = up
	}
}

// set a child link of parent if it exists
func (tree *Tree) setChild(parent nodeIndex, leftSide bool, child nodeIndex) {
	if nilNode == parent {
		return
	}
	if leftSide {
		tree.node(parent).left = child
	} else {
		tree.node(parent).right = child
	}
}
