// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft - promote the right child of n into n's position
//
//        n                c
//       / \              / \
//      a   c     →      n   z
//         / \          / \
//        g   z        a   g
//
// balance factors are not changed, the caller knows the right values
func (tree *Tree) rotateLeft(n nodeIndex) {
	p := tree.node(n)
	c := p.right
	cn := tree.node(c)
	up := p.up

	g := cn.left
	p.right = g
	if nilNode != g {
		tree.node(g).up = n
	}

	cn.left = n
	p.up = c
	cn.up = up

	tree.replaceChild(up, n, c)
}

// rotateRight - promote the left child of n into n's position
//
//          n            c
//         / \          / \
//        c   z   →    a   n
//       / \              / \
//      a   g            g   z
//
// balance factors are not changed, the caller knows the right values
func (tree *Tree) rotateRight(n nodeIndex) {
	p := tree.node(n)
	c := p.left
	cn := tree.node(c)
	up := p.up

	g := cn.right
	p.left = g
	if nilNode != g {
		tree.node(g).up = n
	}

	cn.right = n
	p.up = c
	cn.up = up

	tree.replaceChild(up, n, c)
}

// rotate so the child on side (-1 left, +1 right) moves up
func (tree *Tree) rotateUp(n nodeIndex, side int8) {
	if side < 0 {
		tree.rotateRight(n)
	} else {
		tree.rotateLeft(n)
	}
}

// zigZig - g→p→n leans the same way at both steps
func (tree *Tree) zigZig(g nodeIndex, p nodeIndex, n nodeIndex) bool {
	gn := tree.node(g)
	pn := tree.node(p)
	switch p {
	case gn.left:
		return n == pn.left
	case gn.right:
		return n == pn.right
	}
	return false
}

// zigZag - g→p→n changes direction at p
func (tree *Tree) zigZag(g nodeIndex, p nodeIndex, n nodeIndex) bool {
	gn := tree.node(g)
	pn := tree.node(p)
	switch p {
	case gn.left:
		return n == pn.right
	case gn.right:
		return n == pn.left
	}
	return false
}

// the side (-1 left, +1 right) of parent holding child
func (tree *Tree) sideOf(parent nodeIndex, child nodeIndex) int8 {
	if tree.node(parent).left == child {
		return -1
	}
	return +1
}

// the child of n on side (-1 left, +1 right)
func (tree *Tree) child(n nodeIndex, side int8) nodeIndex {
	if side < 0 {
		return tree.node(n).left
	}
	return tree.node(n).right
}
