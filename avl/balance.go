// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// balance factor convention: height(right) - height(left)
type avlBalancer struct{}

// inserted - retrace from a new leaf towards the root, at most one
// single or double rotation is needed
func (avlBalancer) inserted(tree *Tree, n nodeIndex) {
	p := tree.node(n).up
	if nilNode == p {
		return
	}

	pn := tree.node(p)
	pn.balance += tree.sideOf(p, n)
	if 0 == pn.balance {
		return
	}

	// p grew taller, walk up until a node absorbs the height change
	for g := pn.up; nilNode != g; g = tree.node(g).up {
		side := tree.sideOf(g, p)
		gn := tree.node(g)
		b := gn.balance + side

		switch b {
		case 0:
			gn.balance = 0
			return
		case -1, +1:
			gn.balance = b
			n, p = p, g
			continue
		}

		if tree.zigZig(g, p, n) {
			tree.rotateUp(g, side)
			tree.node(g).balance = 0
			tree.node(p).balance = 0
			return
		}

		// zig-zag: n rises above both p and g
		nb := tree.node(n).balance
		tree.rotateUp(p, -side)
		tree.rotateUp(g, side)
		switch nb {
		case side:
			tree.node(p).balance = 0
			tree.node(g).balance = -side
		case -side:
			tree.node(p).balance = side
			tree.node(g).balance = 0
		default:
			tree.node(p).balance = 0
			tree.node(g).balance = 0
		}
		tree.node(n).balance = 0
		return
	}
}

// removed - retrace from the parent of a spliced out node, continues
// while subtree height keeps shrinking
func (avlBalancer) removed(tree *Tree, n nodeIndex, diff int8) {
	for nilNode != n {
		nn := tree.node(n)

		// rotations below keep the slot in up, so fix the next step first
		up := nn.up
		next := int8(0)
		if nilNode != up {
			if tree.node(up).left == n {
				next = +1
			} else {
				next = -1
			}
		}

		b := nn.balance + diff
		switch b {
		case 0:
			nn.balance = 0

		case -1, +1:
			nn.balance = b
			return

		default:
			s := b / 2 // the heavy side
			c := tree.child(n, s)
			cb := tree.node(c).balance

			switch cb {
			case s:
				tree.rotateUp(n, s)
				tree.node(n).balance = 0
				tree.node(c).balance = 0

			case 0:
				tree.rotateUp(n, s)
				tree.node(n).balance = s
				tree.node(c).balance = -s
				return // height unchanged

			default:
				g := tree.child(c, -s)
				gb := tree.node(g).balance
				tree.rotateUp(c, -s)
				tree.rotateUp(n, s)
				switch gb {
				case s:
					tree.node(n).balance = -s
					tree.node(c).balance = 0
				case -s:
					tree.node(n).balance = 0
					tree.node(c).balance = s
				default:
					tree.node(n).balance = 0
					tree.node(c).balance = 0
				}
				tree.node(g).balance = 0
			}
		}

		n = up
		diff = next
	}
}

// swapped - balance factors belong to positions, not to keys
func (avlBalancer) swapped(tree *Tree, n1 nodeIndex, n2 nodeIndex) {
	p1 := tree.node(n1)
	p2 := tree.node(n2)
	p1.balance, p2.balance = p2.balance, p1.balance
}

// plain binary search tree, no restructuring
type unbalanced struct{}

func (unbalanced) inserted(tree *Tree, n nodeIndex) {}
func (unbalanced) removed(tree *Tree, parent nodeIndex, diff int8) {}
func (unbalanced) swapped(tree *Tree, n1 nodeIndex, n2 nodeIndex) {}
