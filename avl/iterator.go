// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - position of a node within a tree
//
// Two iterators are equal when they refer to the same node and all end
// iterators are equal, so == can be used for comparison.  An iterator
// is only valid until the next mutation of its tree.
type Iterator struct {
	tree *Tree
	at   nodeIndex
}

func (tree *Tree) iterator(n nodeIndex) Iterator {
	if nilNode == n {
		return Iterator{}
	}
	return Iterator{
		tree: tree,
		at:   n,
	}
}

// Begin - iterator at the lowest key, End() if the tree is empty
func (tree *Tree) Begin() Iterator {
	return tree.First()
}

// End - the position past the last node
func (tree *Tree) End() Iterator {
	return Iterator{}
}

// First - iterator at the node with the lowest key value
func (tree *Tree) First() Iterator {
	return tree.iterator(tree.first(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree) first(n nodeIndex) nodeIndex {
	if nilNode == n {
		return nilNode
	}
	for l := tree.node(n).left; nilNode != l; l = tree.node(n).left {
		n = l
	}
	return n
}

// Last - iterator at the node with the highest key value
func (tree *Tree) Last() Iterator {
	return tree.iterator(tree.last(tree.root))
}

// internal: highest node in a sub-tree
func (tree *Tree) last(n nodeIndex) nodeIndex {
	if nilNode == n {
		return nilNode
	}
	for r := tree.node(n).right; nilNode != r; r = tree.node(n).right {
		n = r
	}
	return n
}

// successor - the node with the next highest key, walks up while n is
// a right child
func (tree *Tree) successor(n nodeIndex) nodeIndex {
	if r := tree.node(n).right; nilNode != r {
		return tree.first(r)
	}
	up := tree.node(n).up
	for nilNode != up && tree.node(up).right == n {
		n = up
		up = tree.node(n).up
	}
	return up
}

// predecessor - the node with the next lowest key, walks up while n is
// a left child
func (tree *Tree) predecessor(n nodeIndex) nodeIndex {
	if l := tree.node(n).left; nilNode != l {
		return tree.last(l)
	}
	up := tree.node(n).up
	for nilNode != up && tree.node(up).left == n {
		n = up
		up = tree.node(n).up
	}
	return up
}

// IsEnd - true if past either end of the tree
func (it Iterator) IsEnd() bool {
	return nilNode == it.at
}

// Next - the iterator after this one, End() after the last node
func (it Iterator) Next() Iterator {
	it.mustNotBeEnd()
	return it.tree.iterator(it.tree.successor(it.at))
}

// Prev - the iterator before this one, End() before the first node
func (it Iterator) Prev() Iterator {
	it.mustNotBeEnd()
	return it.tree.iterator(it.tree.predecessor(it.at))
}

// Key - the key at this position
func (it Iterator) Key() Item {
	it.mustNotBeEnd()
	return it.tree.node(it.at).key
}

// Value - the value at this position
func (it Iterator) Value() interface{} {
	it.mustNotBeEnd()
	return it.tree.node(it.at).value
}

// SetValue - replace the value at this position
func (it Iterator) SetValue(value interface{}) {
	it.mustNotBeEnd()
	it.tree.node(it.at).value = value
}

// Depth - number of edges between this node and the root
func (it Iterator) Depth() int {
	it.mustNotBeEnd()
	depth := 0
	for up := it.tree.node(it.at).up; nilNode != up; up = it.tree.node(up).up {
		depth += 1
	}
	return depth
}

// the end position has no node
func (it Iterator) mustNotBeEnd() {
	if nilNode == it.at {
		fault.Panicf("avl: dereference of end iterator")
	}
}
